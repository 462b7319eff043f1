package fields

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	warrantIssuanceDateRE = regexp.MustCompile(`(\d\d?/\d\d?/\d\d\d\d) Warrant Issuance Date:`)
	warrantActionDateRE   = regexp.MustCompile(`Warrant Action Date: (\d\d?/\d\d?/\d\d\d\d)`)
	warrantIssuanceStatRE = regexp.MustCompile(`Warrant Issuance Status: (\w)`)
	warrantActionStatRE   = regexp.MustCompile(`Warrant Action Status: (\w)`)
	warrantLocationStatRE = regexp.MustCompile(`Warrant Location Status: (\w)`)
	numberOfWarrantsRE    = regexp.MustCompile(`Number Of Warrants: (\d{3}\s\d{3})`)

	bondTypeRE          = regexp.MustCompile(`Bond Type: (\w)`)
	bondTypeDescRE      = regexp.MustCompile(`Bond Type Desc: ([A-Z\s]+)`)
	bondAmtRE           = regexp.MustCompile(`([\d\.]+) Bond Amount:`)
	bondCompanyRE       = regexp.MustCompile(`Bond Company: ([A-Z0-9]+)`)
	suretyCodeRE        = regexp.MustCompile(`Surety Code: ([A-Z0-9]{4})`)
	bondReleaseDateRE   = regexp.MustCompile(`Release Date: (\d\d?/\d\d?/\d\d\d\d)`)
	failedToAppearRE    = regexp.MustCompile(`Failed to Appear Date: (\d\d?/\d\d?/\d\d\d\d)`)
	bondsmanIssuanceRE  = regexp.MustCompile(`Bondsman Process Issuance: ([^\n]*?) Bondsman Process Return:`)
	bondsmanReturnRE    = regexp.MustCompile(`Bondsman Process Return: (.*?) Number of Subponeas`)
	numberOfSubpoenasRE = regexp.MustCompile(`Number of Subponeas: (\d{3})`)

	appealDateRE        = regexp.MustCompile(`([\n\s/\d]*?) Appeal Court:`)
	appealCourtRE       = regexp.MustCompile(`([A-Z\-\s]+) Appeal Case Number`)
	originOfAppealRE    = regexp.MustCompile(`Orgin Of Appeal: ([A-Z\-\s]+)`)
	appealToDescRE      = regexp.MustCompile(`Appeal To Desc: ([A-Z\-\s]+)`)
	appealStatusRE      = regexp.MustCompile(`Appeal Status: ([A-Z\-\s]+)`)
	appealToRE          = regexp.MustCompile(`Appeal To: (\w?) Appeal`)
	lowerCourtAppealRE  = regexp.MustCompile(`LowerCourt Appeal Date: (\d\d?/\d\d?/\d\d\d\d)`)
	appealDispoDateRE   = regexp.MustCompile(`Disposition Date Of Appeal: (\d\d?/\d\d?/\d\d\d\d)`)
	appealDispoTypeRE   = regexp.MustCompile(`Disposition Type Of Appeal: ([^A-Za-z]+)`)
	whitespaceRemoverRE = regexp.MustCompile(`[\n\s]`)
	dateNoiseRemoverRE  = regexp.MustCompile(`[\n\s:\-]`)

	adminUpdatedByRE  = regexp.MustCompile(`Updated By: (\w{3})`)
	transferToAdminRE = regexp.MustCompile(`Transfer to Admin Doc Date: (\d\d?/\d\d?/\d\d\d\d)`)
	transferDescRE    = regexp.MustCompile(`Transfer Desc: ([A-Z\s]{0,15} \d\d?/\d\d?/\d\d\d\d)`)
	tbnv1RE           = regexp.MustCompile(`Date Trial Began but No Verdict \(TBNV1\): ([^\n]+)`)
	tbnv2RE           = regexp.MustCompile(`Date Trial Began but No Verdict \(TBNV2\): ([^\n]+)`)
)

// WarrantIssuanceDate returns the warrant issuance date, printed to the
// left of its label.
func WarrantIssuanceDate(text string) string {
	v, _ := search(warrantIssuanceDateRE, text, 1)
	return strings.TrimSpace(v)
}

// WarrantActionDate returns the warrant action date.
func WarrantActionDate(text string) string {
	v, _ := search(warrantActionDateRE, text, 1)
	return strings.TrimSpace(v)
}

// WarrantIssuanceStatus returns the single-letter issuance status code.
func WarrantIssuanceStatus(text string) string {
	v, _ := search(warrantIssuanceStatRE, text, 1)
	return v
}

// WarrantActionStatus returns the single-letter action status code.
func WarrantActionStatus(text string) string {
	v, _ := search(warrantActionStatRE, text, 1)
	return v
}

// WarrantLocationStatus returns the single-letter location status code.
func WarrantLocationStatus(text string) string {
	v, _ := search(warrantLocationStatRE, text, 1)
	return v
}

// NumberOfWarrants returns the two space-separated warrant counters as
// printed.
func NumberOfWarrants(text string) string {
	v, _ := search(numberOfWarrantsRE, text, 1)
	return strings.TrimSpace(v)
}

// BondType returns the single-letter bond type code.
func BondType(text string) string {
	v, _ := search(bondTypeRE, text, 1)
	return v
}

// BondTypeDesc returns the bond type description.
func BondTypeDesc(text string) string {
	v, _ := search(bondTypeDescRE, text, 1)
	return strings.TrimSpace(v)
}

// BondAmt returns the bond amount, printed to the left of its label. 0
// when absent.
func BondAmt(text string) float64 {
	v, ok := search(bondAmtRE, text, 1)
	if !ok {
		return 0
	}
	amt, ok := money(v)
	if !ok {
		return 0
	}
	return amt
}

// BondCompany returns the bonding company name.
func BondCompany(text string) string {
	v, _ := search(bondCompanyRE, text, 1)
	return strings.TrimSpace(strings.TrimRight(v, "S"))
}

// SuretyCode returns the four-character surety code.
func SuretyCode(text string) string {
	v, _ := search(suretyCodeRE, text, 1)
	return strings.TrimSpace(v)
}

// BondReleaseDate returns the bond release date.
func BondReleaseDate(text string) string {
	v, _ := search(bondReleaseDateRE, text, 1)
	return strings.TrimSpace(v)
}

// FailedToAppearDate returns the failure-to-appear date.
func FailedToAppearDate(text string) string {
	v, _ := search(failedToAppearRE, text, 1)
	return strings.TrimSpace(v)
}

// BondsmanProcessIssuance returns the bondsman process issuance entry.
func BondsmanProcessIssuance(text string) string {
	v, _ := search(bondsmanIssuanceRE, text, 1)
	return strings.TrimSpace(v)
}

// BondsmanProcessReturn returns the bondsman process return entry.
func BondsmanProcessReturn(text string) string {
	v, _ := search(bondsmanReturnRE, text, 1)
	return strings.TrimSpace(v)
}

// NumberOfSubpoenas returns the subpoena count, 0 when absent. The label
// is misspelled in the source documents.
func NumberOfSubpoenas(text string) int {
	v, ok := search(numberOfSubpoenasRE, text, 1)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

// AppealDate returns the appeal date, printed to the left of the appeal
// court label amid padding.
func AppealDate(text string) string {
	v, _ := search(appealDateRE, text, 1)
	return whitespaceRemoverRE.ReplaceAllString(v, "")
}

// AppealCourt returns the appellate court name.
func AppealCourt(text string) string {
	v, _ := search(appealCourtRE, text, 1)
	return strings.TrimSpace(v)
}

// OriginOfAppeal returns the origin of the appeal. The label is misspelled
// "Orgin" in the source documents.
func OriginOfAppeal(text string) string {
	v, _ := search(originOfAppealRE, text, 1)
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), "L"))
}

// AppealToDesc returns the appealed-to court description.
func AppealToDesc(text string) string {
	v, _ := search(appealToDescRE, text, 1)
	v = strings.TrimSpace(v)
	v = strings.TrimRight(v, "D")
	return strings.TrimSpace(strings.TrimRight(v, "T"))
}

// AppealStatus returns the appeal status.
func AppealStatus(text string) string {
	v, _ := search(appealStatusRE, text, 1)
	return strings.TrimSpace(strings.TrimRight(strings.TrimSpace(v), "A"))
}

// AppealTo returns the single-letter appealed-to court code.
func AppealTo(text string) string {
	v, _ := search(appealToRE, text, 1)
	return strings.TrimSpace(v)
}

// LowerCourtAppealDate returns the lower court appeal date.
func LowerCourtAppealDate(text string) string {
	v, _ := search(lowerCourtAppealRE, text, 1)
	return dateNoiseRemoverRE.ReplaceAllString(v, "")
}

// DispositionDateOfAppeal returns the appeal disposition date.
func DispositionDateOfAppeal(text string) string {
	v, _ := search(appealDispoDateRE, text, 1)
	return dateNoiseRemoverRE.ReplaceAllString(v, "")
}

// DispositionTypeOfAppeal returns the appeal disposition type code.
func DispositionTypeOfAppeal(text string) string {
	v, _ := search(appealDispoTypeRE, text, 1)
	return dateNoiseRemoverRE.ReplaceAllString(v, "")
}

// AdminUpdatedBy returns the initials of the last administrative updater.
func AdminUpdatedBy(text string) string {
	v, _ := search(adminUpdatedByRE, text, 1)
	return strings.TrimSpace(v)
}

// TransferToAdminDocDate returns the transfer-to-admin-docket date.
func TransferToAdminDocDate(text string) string {
	v, _ := search(transferToAdminRE, text, 1)
	return strings.TrimSpace(v)
}

// TransferDesc returns the transfer description with its date.
func TransferDesc(text string) string {
	v, _ := search(transferDescRE, text, 1)
	return strings.TrimSpace(v)
}

// TBNV1 returns the first trial-began-but-no-verdict date.
func TBNV1(text string) string {
	v, _ := search(tbnv1RE, text, 1)
	return strings.TrimSpace(v)
}

// TBNV2 returns the second trial-began-but-no-verdict date.
func TBNV2(text string) string {
	v, _ := search(tbnv2RE, text, 1)
	return strings.TrimSpace(v)
}
