package fields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/openalabama/courtrecords/constants"
)

var (
	shortCaseNumberRE = regexp.MustCompile(`(\w{2}\-\d{4}-\d{6}\.\d{2})`)
	countyDigitsRE    = regexp.MustCompile(`(?:County: )(\d{2})`)
	countyFieldRE     = regexp.MustCompile(`Case Number: (\d\d-\w+) County:`)
	caseYearRE        = regexp.MustCompile(`\w{2}\-(\d{4})-\d{6}\.\d{2}`)
	retrievedRE       = regexp.MustCompile(`Alacourt\.com (\d\d?/\d\d?/\d\d\d\d)`)
	relatedCasesRE    = regexp.MustCompile(`(\w{2}\d{12})`)

	filingDateRE         = regexp.MustCompile(`Filing Date: (\d\d?/\d\d?/\d\d\d\d)`)
	caseInitiationDateRE = regexp.MustCompile(`Case Initiation Date: (\d\d?/\d\d?/\d\d\d\d)`)
	arrestDateRE         = regexp.MustCompile(`Arrest Date: (\d\d?/\d\d?/\d\d\d\d)`)
	offenseDateRE        = regexp.MustCompile(`Offense Date: (\d\d?/\d\d?/\d\d\d\d)`)
	indictmentDateRE     = regexp.MustCompile(`Indictment Date: (\d\d?/\d\d?/\d\d\d\d)`)
	youthfulDateRE       = regexp.MustCompile(`Youthful Date: (\d\d?/\d\d?/\d\d\d\d)`)

	courtActionRE     = regexp.MustCompile(`Court Action: ` + constants.CourtActionPattern)
	courtActionDateRE = regexp.MustCompile(`Court Action Date: (\d\d?/\d\d?/\d\d\d\d)`)
	descriptionRE     = regexp.MustCompile(`Charge: ([A-Z\.0-9\-\s]+)`)
	juryDemandRE      = regexp.MustCompile(`Jury Demand: ([A-Z]+)`)
	inpatientRE       = regexp.MustCompile(`Inpatient Treatment Ordered: ([YES|NO]?)`)
	trialTypeRE       = regexp.MustCompile(`Trial Type: ([A-Z]+)`)
	judgeRE           = regexp.MustCompile(`Judge: ([A-Z\-\.\s]+)`)
	probationOfcNoRE  = regexp.MustCompile(`Probation Office \#: ([0-9\-]+)`)
	defendantStatusRE = regexp.MustCompile(`Defendant Status: ([A-Z\s]+)`)
	arrestAgencyRE    = regexp.MustCompile(`([^0-9]+) Arresting Agency Type:`)
	arrestOfficerRE   = regexp.MustCompile(`Arresting Officer: ([A-Z\s]+)`)
	probationOfcRE    = regexp.MustCompile(`Probation Office Name: ([A-Z0-9]+)`)
	trafficCitationRE = regexp.MustCompile(`Traffic Citation \#: ([A-Z0-9]+)`)
	previousDUIRE     = regexp.MustCompile(`Previous DUI Convictions: (\d{3})`)
	caseInitTypeRE    = regexp.MustCompile(`Case Initiation Type: ([A-Z\s]+)`)
	domesticViolRE    = regexp.MustCompile(`Domestic Violence: ([YES|NO])`)
	agencyORIRE       = regexp.MustCompile(`Agency ORI: ([A-Z\s]+)`)
	driverLicenseRE   = regexp.MustCompile(`Driver License N°: ([A-Z0-9]+)`)
	stateIDRE         = regexp.MustCompile(`([A-Z0-9]{11}?) State ID:`)
)

// ShortCaseNumber returns the case number without the county prefix, for
// example "CC-2020-000123.00".
func ShortCaseNumber(text string) string {
	v, _ := search(shortCaseNumberRE, text, 1)
	return strings.TrimSpace(v)
}

// CountyNumber returns the two-digit county code.
func CountyNumber(text string) string {
	v, _ := search(countyDigitsRE, text, 1)
	return v
}

// CaseNumber returns the fully qualified case number: county code plus the
// short form. Empty when either half is missing.
func CaseNumber(text string) string {
	county := CountyNumber(text)
	short := ShortCaseNumber(text)
	if county == "" || short == "" {
		return ""
	}
	return county + "-" + short
}

// County returns the county name printed after the case number.
func County(text string) string {
	v, _ := search(countyFieldRE, text, 1)
	return strings.TrimSpace(v)
}

// CaseYear returns the four-digit filing year from the case number, 0 when
// absent.
func CaseYear(text string) int {
	v, ok := search(caseYearRE, text, 1)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// Retrieved returns the date the document was pulled from Alacourt.
func Retrieved(text string) string {
	v, _ := search(retrievedRE, text, 1)
	return strings.TrimSpace(v)
}

// RelatedCases returns every related case reference joined with "/".
func RelatedCases(text string) string {
	return strings.Join(searchAll(relatedCasesRE, text, 1), "/")
}

// FilingDate returns the filing date.
func FilingDate(text string) string {
	v, _ := search(filingDateRE, text, 1)
	return strings.TrimSpace(v)
}

// CaseInitiationDate returns the case initiation date.
func CaseInitiationDate(text string) string {
	v, _ := search(caseInitiationDateRE, text, 1)
	return strings.TrimSpace(v)
}

// ArrestDate returns the arrest date.
func ArrestDate(text string) string {
	v, _ := search(arrestDateRE, text, 1)
	return strings.TrimSpace(v)
}

// OffenseDate returns the offense date.
func OffenseDate(text string) string {
	v, _ := search(offenseDateRE, text, 1)
	return strings.TrimSpace(v)
}

// IndictmentDate returns the indictment date.
func IndictmentDate(text string) string {
	v, _ := search(indictmentDateRE, text, 1)
	return strings.TrimSpace(v)
}

// YouthfulDate returns the youthful-offender determination date.
func YouthfulDate(text string) string {
	v, _ := search(youthfulDateRE, text, 1)
	return strings.TrimSpace(v)
}

// CourtAction returns the case-level court action, constrained to the SJIS
// action vocabulary.
func CourtAction(text string) string {
	v, _ := search(courtActionRE, text, 1)
	return strings.TrimSpace(v)
}

// CourtActionDate returns the case-level court action date.
func CourtActionDate(text string) string {
	v, _ := search(courtActionDateRE, text, 1)
	return strings.TrimSpace(v)
}

// Description returns the lead charge description from the case header.
func Description(text string) string {
	v, _ := search(descriptionRE, text, 1)
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), "C"))
}

// JuryDemand reports whether a jury trial was demanded.
func JuryDemand(text string) string {
	v, _ := search(juryDemandRE, text, 1)
	return strings.TrimSpace(v)
}

// InpatientTreatmentOrdered reports whether inpatient treatment was
// ordered.
func InpatientTreatmentOrdered(text string) string {
	v, _ := search(inpatientRE, text, 1)
	return strings.TrimSpace(v)
}

// TrialType returns the trial type with the bleed from the following label
// trimmed.
func TrialType(text string) string {
	v, _ := search(trialTypeRE, text, 1)
	return strings.TrimSpace(strings.TrimRight(v, "SN"))
}

// Judge returns the assigned judge's name.
func Judge(text string) string {
	v, _ := search(judgeRE, text, 1)
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), "T"))
}

// ProbationOfficeNumber returns the probation office number, with the
// all-zero placeholder blanked.
func ProbationOfficeNumber(text string) string {
	v, _ := search(probationOfcNoRE, text, 1)
	v = strings.TrimSpace(v)
	if v == "0-000000-00" {
		return ""
	}
	return v
}

// DefendantStatus returns the defendant status code.
func DefendantStatus(text string) string {
	v, _ := search(defendantStatusRE, text, 1)
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), "J"))
}

// ArrestingAgencyType returns the arresting agency type, printed to the
// left of its label.
func ArrestingAgencyType(text string) string {
	v, _ := search(arrestAgencyRE, text, 1)
	return strings.TrimSpace(strings.ReplaceAll(v, "\n", ""))
}

// ArrestingOfficer returns the arresting officer's name.
func ArrestingOfficer(text string) string {
	v, _ := search(arrestOfficerRE, text, 1)
	v = strings.TrimSpace(v)
	v = strings.TrimRight(v, "S")
	return strings.TrimSpace(strings.TrimRight(v, "P"))
}

// ProbationOfficeName returns the probation office name.
func ProbationOfficeName(text string) string {
	v, _ := search(probationOfcRE, text, 1)
	return strings.TrimSpace(v)
}

// TrafficCitationNumber returns the traffic citation number.
func TrafficCitationNumber(text string) string {
	v, _ := search(trafficCitationRE, text, 1)
	return strings.TrimSpace(v)
}

// PreviousDUIConvictions returns the prior DUI conviction count, 0 when
// absent.
func PreviousDUIConvictions(text string) int {
	v, ok := search(previousDUIRE, text, 1)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// CaseInitiationType returns how the case was initiated.
func CaseInitiationType(text string) string {
	v, _ := search(caseInitTypeRE, text, 1)
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), "J"))
}

// DomesticViolence reports whether the case is flagged as domestic
// violence.
func DomesticViolence(text string) string {
	v, _ := search(domesticViolRE, text, 1)
	return strings.TrimSpace(v)
}

// AgencyORI returns the originating agency identifier.
func AgencyORI(text string) string {
	v, _ := search(agencyORIRE, text, 1)
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), "C"))
}

// DriverLicenseNo returns the driver license number, with the bare state
// prefix placeholder blanked.
func DriverLicenseNo(text string) string {
	v, _ := search(driverLicenseRE, text, 1)
	v = strings.TrimSpace(v)
	if v == "AL" {
		return ""
	}
	return v
}

// StateID returns the state identification number, with the all-zero
// placeholder blanked.
func StateID(text string) string {
	v, _ := search(stateIDRE, text, 1)
	v = strings.TrimSpace(v)
	if v == "AL000000000" {
		return ""
	}
	return v
}
