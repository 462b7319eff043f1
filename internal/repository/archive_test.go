package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openalabama/courtrecords/internal/records"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "second case")
	writeFile(t, dir, "a.txt", "first case")
	writeFile(t, dir, "notes.md", "ignored")

	a, err := FromDirectory(dir)
	require.NoError(t, err)

	require.Len(t, a.Cases, 2)
	assert.Equal(t, "first case", a.Cases[0].Text)
	assert.Equal(t, "second case", a.Cases[1].Text)
	assert.NotZero(t, a.Cases[0].Timestamp)
}

func TestFromDirectoryMissing(t *testing.T) {
	_, err := FromDirectory(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestArchiveDedupe(t *testing.T) {
	a := &Archive{Cases: []records.RawCase{
		{Path: "a.txt", Text: "same"},
		{Path: "b.txt", Text: "same"},
		{Path: "c.txt", Text: "different"},
	}}

	assert.Equal(t, 1, a.Dedupe())
	require.Len(t, a.Cases, 2)
	assert.Equal(t, "a.txt", a.Cases[0].Path)
	assert.Equal(t, "c.txt", a.Cases[1].Path)
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	a := &Archive{Cases: []records.RawCase{
		{Path: "a.txt", Text: "case one", Timestamp: 1700000000},
		{Path: "b.txt", Text: "case two", Timestamp: 1700000001},
	}}
	require.NoError(t, a.WriteJSON(path))

	got, err := ReadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, a.Cases, got.Cases)
}

func TestReadJSONRejectsMalformed(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err := ReadJSON(bad)
	assert.Error(t, err)

	// Valid JSON that fails the schema is rejected too.
	wrongShape := filepath.Join(dir, "shape.json")
	require.NoError(t, os.WriteFile(wrongShape, []byte(`{"rows": []}`), 0o644))
	_, err = ReadJSON(wrongShape)
	assert.Error(t, err)
}
