package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseNumber(t *testing.T) {
	assert.Equal(t, "CC-2021-000123.00", ShortCaseNumber(sampleCaseText))
	assert.Equal(t, "01", CountyNumber(sampleCaseText))
	assert.Equal(t, "01-CC-2021-000123.00", CaseNumber(sampleCaseText))
	assert.Equal(t, "01-CC199", County(sampleCaseText))
	assert.Equal(t, 2021, CaseYear(sampleCaseText))

	// Either half missing leaves the full number empty.
	assert.Equal(t, "", CaseNumber("County: 01 but no case number"))
	assert.Equal(t, "", CaseNumber("Case: CC-2021-000123.00 but no county"))
}

func TestRetrieved(t *testing.T) {
	assert.Equal(t, "06/01/2023", Retrieved(sampleCaseText))
	assert.Equal(t, "", Retrieved("never fetched"))
}

func TestRelatedCases(t *testing.T) {
	text := "Related Cases: CC202100012300 DC202200045600"
	assert.Equal(t, "CC202100012300/DC202200045600", RelatedCases(text))
	assert.Equal(t, "", RelatedCases("none"))
}

func TestDates(t *testing.T) {
	assert.Equal(t, "01/15/2021", FilingDate(sampleCaseText))
	assert.Equal(t, "09/30/2021", CourtActionDate(sampleCaseText))
	assert.Equal(t, "", ArrestDate(sampleCaseText))
	assert.Equal(t, "3/1/2021", OffenseDate("Offense Date: 3/1/2021"))
}

func TestCourtAction(t *testing.T) {
	assert.Equal(t, "GUILTY PLEA", CourtAction(sampleCaseText))
	assert.Equal(t, "", CourtAction("Court Action: UNKNOWN VALUE"))
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "MURDER", Description(sampleCaseText))
}

// Labels run together in the source layout, so values bleed into the
// first letter of the next label; the getters trim that letter back off.
func TestLabelBleedTrims(t *testing.T) {
	assert.Equal(t, "JOHN SMITH",
		Judge("Judge: JOHN SMITH Trial Type: BENCH"))
	assert.Equal(t, "JAIL",
		DefendantStatus("Defendant Status: JAIL Judge: SMITH"))
	assert.Equal(t, "BENCH", TrialType("Trial Type: BENCH"))
	assert.Equal(t, "WARRANT",
		CaseInitiationType("Case Initiation Type: WARRANT Judge:"))
}

func TestPlaceholdersBlanked(t *testing.T) {
	assert.Equal(t, "", ProbationOfficeNumber("Probation Office #: 0-000000-00"))
	assert.Equal(t, "1-234567-89", ProbationOfficeNumber("Probation Office #: 1-234567-89"))
	assert.Equal(t, "", DriverLicenseNo("Driver License N°: AL"))
	assert.Equal(t, "", StateID("AL000000000 State ID:"))
}

func TestCounts(t *testing.T) {
	assert.Equal(t, 2, PreviousDUIConvictions("Previous DUI Convictions: 002"))
	assert.Equal(t, 0, PreviousDUIConvictions("Previous DUI Convictions: none"))
}
