package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalRow(t *testing.T) {
	assert.Equal(t,
		[4]string{"500.00", "100.00", "400.00", "0.00"},
		TotalRow(sampleCaseText))

	// No totals row means four zero slots, not a failure.
	assert.Equal(t,
		[4]string{"0.00", "0.00", "0.00", "0.00"},
		TotalRow("no fee sheet at all"))
}

func TestTotals(t *testing.T) {
	assert.Equal(t, 500.00, TotalAmtDue(sampleCaseText))
	assert.Equal(t, 100.00, TotalAmtPaid(sampleCaseText))
	assert.Equal(t, 400.00, TotalBalance(sampleCaseText))
	assert.Equal(t, 0.00, TotalAmtHold(sampleCaseText))
}

func TestPaymentToRestore(t *testing.T) {
	// Restitution (D999) is excluded: 400 owed less 300 restitution.
	assert.Equal(t, 300.00, RestitutionBalance(sampleCaseText))
	assert.Equal(t, 100.00, PaymentToRestore(sampleCaseText))

	// Without a D999 row the full balance stands.
	noRestitution := "Total: $500.00 $100.00 $400.00 $0.00"
	assert.Equal(t, 0.00, RestitutionBalance(noRestitution))
	assert.Equal(t, 400.00, PaymentToRestore(noRestitution))

	assert.Equal(t, 0.00, PaymentToRestore("empty document"))
}
