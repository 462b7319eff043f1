package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openalabama/courtrecords/internal/records"
)

func frag(text string) records.ChargeFragment {
	return records.ChargeFragment{CaseNumber: "01-CC-2021-000123.00", Text: text}
}

func TestChargeDisposition(t *testing.T) {
	rec, ok := Charge(frag(
		"001 MURD 09/30/2021 GUILTY PLEA FELONY PERSONAL 13A-006-002 MURDER 1ST"))
	require.True(t, ok)

	assert.Equal(t, "01-CC-2021-000123.00", rec.CaseNumber)
	assert.Equal(t, "001", rec.Num)
	assert.Equal(t, "MURD", rec.Code)
	assert.True(t, rec.Disposition)
	assert.False(t, rec.Filing)
	assert.Equal(t, "09/30/2021", rec.CourtActionDate)
	assert.Equal(t, "GUILTY PLEA", rec.CourtAction)
	assert.Equal(t, "MURDER 1ST", rec.Description)
	assert.Equal(t, "FELONY", rec.TypeDescription)
	assert.Equal(t, "PERSONAL", rec.Category)
	assert.True(t, rec.Felony)
	assert.True(t, rec.Conviction)

	// MURD is a pardon-list code and the plea converts the charge.
	assert.True(t, rec.PardonDisqCharge)
	assert.True(t, rec.PardonDisqConviction)
	assert.False(t, rec.CERVDisqCharge)
	assert.False(t, rec.PermanentDisqCharge)
}

func TestChargeFiling(t *testing.T) {
	rec, ok := Charge(frag(
		"002 TPCS POSSESSION OF CONTROLLED SUBSTANCE 13A-012-212 FELONY DRUG"))
	require.True(t, ok)

	assert.True(t, rec.Filing)
	assert.False(t, rec.Disposition)
	assert.Equal(t, "TPCS", rec.Code)
	assert.Equal(t, "POSSESSION OF CONTROLLED SUBSTANCE", rec.Description)
	assert.Equal(t, "FELONY", rec.TypeDescription)
	assert.Equal(t, "DRUG", rec.Category)
	assert.Empty(t, rec.CourtActionDate)
	assert.False(t, rec.Conviction)

	// A CERV-list felony disqualifies as a charge, but with no conviction
	// the conviction-level flag stays down.
	assert.True(t, rec.CERVDisqCharge)
	assert.False(t, rec.CERVDisqConviction)
}

func TestChargeAttemptCancelsDisqualification(t *testing.T) {
	rec, ok := Charge(frag(
		"003 MURD 09/30/2021 GUILTY PLEA FELONY PERSONAL 13A-004-002 ATTEMPT - MURDER"))
	require.True(t, ok)

	assert.True(t, rec.Felony)
	assert.True(t, rec.Conviction)
	assert.False(t, rec.CERVDisqCharge)
	assert.False(t, rec.CERVDisqConviction)
	assert.False(t, rec.PardonDisqCharge)
	assert.False(t, rec.PardonDisqConviction)
	assert.False(t, rec.PermanentDisqCharge)
	assert.False(t, rec.PermanentDisqConviction)
}

func TestChargeDateDecidesDisposition(t *testing.T) {
	rec, ok := Charge(frag(
		"100 ABC1234 1/02/2020 CCC-123-456 SOME DESCRIPTION CONVICTED FELONY"))
	require.True(t, ok)

	assert.True(t, rec.Disposition)
	assert.False(t, rec.Filing)
	assert.True(t, rec.Conviction)
}

func TestChargePermanent(t *testing.T) {
	rec, ok := Charge(frag(
		"005 CMUR 09/30/2021 CONVICTED FELONY PERSONAL 13A-005-040 CAPITAL MURDER"))
	require.True(t, ok)

	assert.True(t, rec.PermanentDisqCharge)
	assert.True(t, rec.PermanentDisqConviction)
}

func TestChargeDropsMalformed(t *testing.T) {
	for _, text := range []string{
		"",
		"001",
		"004      09/30/2021 NO CODE HERE 13A-001-001 PADDING",
	} {
		_, ok := Charge(frag(text))
		assert.False(t, ok, "fragment %q should drop", text)
	}
}

// Conviction-level flags can never be set without their charge-level
// counterpart and a conviction.
func TestChargeFlagImplications(t *testing.T) {
	frags := []records.ChargeFragment{
		frag("001 MURD 09/30/2021 GUILTY PLEA FELONY PERSONAL 13A-006-002 MURDER 1ST"),
		frag("002 TPCS POSSESSION OF CONTROLLED SUBSTANCE 13A-012-212 FELONY DRUG"),
		frag("003 MURD 09/30/2021 GUILTY PLEA FELONY PERSONAL 13A-004-002 ATTEMPT - MURDER"),
		frag("005 CMUR 09/30/2021 CONVICTED FELONY PERSONAL 13A-005-040 CAPITAL MURDER"),
		frag("006 ROB1 11/01/2021 DISMISSED FELONY PROPERTY 13A-008-041 ROBBERY 1ST"),
	}
	for _, rec := range Charges(frags) {
		if rec.CERVDisqConviction {
			assert.True(t, rec.CERVDisqCharge)
			assert.True(t, rec.Conviction)
		}
		if rec.PardonDisqConviction {
			assert.True(t, rec.PardonDisqCharge)
			assert.True(t, rec.Conviction)
		}
		if rec.PermanentDisqConviction {
			assert.True(t, rec.PermanentDisqCharge)
			assert.True(t, rec.Conviction)
		}
	}
}

func TestCite(t *testing.T) {
	assert.Equal(t, "13A-006-002",
		Cite("001 MURD 09/30/2021 GUILTY PLEA FELONY PERSONAL 13A-006-002 MURDER"))
	assert.Equal(t, "13A-012-212(A).1",
		Cite("002 TPCS POSSESSION 13A-012-212(A).1 FELONY DRUG"))
}
