package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openalabama/courtrecords/internal/records"
)

func feeFrag(text string) records.FeeFragment {
	return records.FeeFragment{CaseNumber: "01-CC-2021-000123.00", Text: text}
}

func TestFeeColumnAlignment(t *testing.T) {
	// Runs of padding become empty tokens, which keeps the code in its
	// column whatever the surrounding widths.
	rec, ok := Fee(feeFrag(
		"123 D999 ACTIVE   D999       $500.00   $100.00             $400.00"))
	require.True(t, ok)

	assert.Equal(t, "D999", rec.Code)
	require.NotNil(t, rec.AmtDue)
	assert.Equal(t, 500.00, *rec.AmtDue)
	require.NotNil(t, rec.AmtPaid)
	assert.Equal(t, 100.00, *rec.AmtPaid)
	assert.Equal(t, 400.00, rec.Balance)
}

func TestFeeItemizedRow(t *testing.T) {
	rec, ok := Fee(feeFrag(
		"ACTIVE ACTIVE    D999 C001 JOHN $300.00 $0.00 $300.00 ACTIVE END"))
	require.True(t, ok)

	assert.False(t, rec.Total)
	assert.Equal(t, "ACTIVE", rec.AdminFee)
	assert.Equal(t, "ACTIVE", rec.FeeStatus)
	assert.Equal(t, "D999", rec.Code)
	assert.Equal(t, "C001", rec.Payor)
	assert.Equal(t, "JOHN", rec.Payee)
	require.NotNil(t, rec.AmtDue)
	assert.Equal(t, 300.00, *rec.AmtDue)
	require.NotNil(t, rec.AmtPaid)
	assert.Equal(t, 0.00, *rec.AmtPaid)
	assert.Equal(t, 300.00, rec.Balance)
}

func TestFeeTotalsRow(t *testing.T) {
	// The totals label does not survive the splitter's cleanup; any first
	// token other than ACTIVE marks the totals row.
	rec, ok := Fee(feeFrag("T      $500.00 $100.00 $400.00 $0.00"))
	require.True(t, ok)

	assert.True(t, rec.Total)
	assert.Empty(t, rec.AdminFee)
	assert.Empty(t, rec.FeeStatus)
	assert.Empty(t, rec.Code)
	assert.Empty(t, rec.Payor)
	assert.Empty(t, rec.Payee)
	require.NotNil(t, rec.AmtDue)
	assert.Equal(t, 500.00, *rec.AmtDue)
	require.NotNil(t, rec.AmtPaid)
	assert.Equal(t, 100.00, *rec.AmtPaid)
}

func TestFeeLienMarker(t *testing.T) {
	rec, ok := Fee(feeFrag(
		"ACTIVE ACTIVE    D999 C001 JOHN $300.00 $0.00 $300.00 L"))
	require.True(t, ok)

	assert.Equal(t, 300.00, rec.Balance)
	require.NotNil(t, rec.AmtHold)
	assert.Equal(t, 0.00, *rec.AmtHold)
}

func TestFeeDropsRowsWithoutAmounts(t *testing.T) {
	for _, text := range []string{
		"",
		"ACTIVE ACTIVE    D999 C001 JOHN",
		"garbage row with no currency",
	} {
		_, ok := Fee(feeFrag(text))
		assert.False(t, ok, "fragment %q should drop", text)
	}
}

// Every retained fee row has a balance; the other amounts may be nil but
// Balance never is.
func TestFeeBalanceAlwaysSet(t *testing.T) {
	frags := []records.FeeFragment{
		feeFrag("ACTIVE ACTIVE    D999 C001 JOHN $300.00 $0.00 $300.00 ACTIVE END"),
		feeFrag("T      $500.00 $100.00 $400.00 $0.00"),
		feeFrag("no currency here"),
	}
	recs := Fees(frags)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.GreaterOrEqual(t, rec.Balance, 0.00)
	}
}
