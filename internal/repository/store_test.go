package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openalabama/courtrecords/internal/records"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "cases.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreArchiveRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	in := &Archive{Cases: []records.RawCase{
		{Path: "a.txt", Text: "case one", Timestamp: 1700000000},
		{Path: "b.txt", Text: "case two", Timestamp: 1700000001},
	}}
	require.NoError(t, s.SaveArchive(ctx, in))

	out, err := s.LoadArchive(ctx)
	require.NoError(t, err)
	assert.Equal(t, in.Cases, out.Cases)
}

func TestStoreSaveTables(t *testing.T) {
	s := openTestStore(t)
	due := 300.00

	err := s.SaveTables(context.Background(),
		[]records.CaseRecord{{CaseNumber: "01-CC-2021-000123.00", Name: "JOHN Q PUBLIC"}},
		[]records.ChargeRecord{{CaseNumber: "01-CC-2021-000123.00", Num: "001", Code: "MURD"}},
		[]records.FeeRecord{{CaseNumber: "01-CC-2021-000123.00", Code: "D999", AmtDue: &due, Balance: 300.00}},
	)
	require.NoError(t, err)
}

func TestBind(t *testing.T) {
	s := &Store{postgres: true}
	assert.Equal(t, "INSERT INTO t (a, b) VALUES ($1, $2)",
		s.bind("INSERT INTO t (a, b) VALUES (?, ?)"))

	s = &Store{postgres: false}
	assert.Equal(t, "VALUES (?)", s.bind("VALUES (?)"))
}
