// Package records defines the value objects produced by the case-text
// pipeline: one RawCase in, one CaseRecord plus zero-or-more ChargeRecords
// and FeeRecords out. All of them are plain batch-scoped values with no
// back-references; rows relate by case number only.
package records

// RawCase is one case-detail document's full extracted text plus
// provenance. Immutable once created.
type RawCase struct {
	Path      string
	Text      string
	Timestamp float64 // unix seconds at retrieval
}

// CaseRecord is the header row for one case. Every field is independently
// optional; a miss is an empty string (or zero for numerics), never an
// error.
type CaseRecord struct {
	Retrieved        string
	CaseNumber       string
	Name             string
	DOB              string
	Race             string
	Sex              string
	Description      string
	CourtAction      string
	CourtActionDate  string
	TotalAmtDue      float64
	TotalAmtPaid     float64
	TotalBalance     float64
	TotalAmtHold     float64
	PaymentToRestore float64
	Phone            string
	StreetAddress    string
	City             string
	State            string
	ZipCode          string
	County           string
	Country          string
	Alias            string
	SSN              string
	Weight           int
	Eyes             string
	Hair             string

	FilingDate         string
	CaseInitiationDate string
	ArrestDate         string
	OffenseDate        string
	IndictmentDate     string

	JuryDemand                string
	InpatientTreatmentOrdered string
	TrialType                 string
	Judge                     string
	DefendantStatus           string
	ArrestingAgencyType       string
	ArrestingOfficer          string
	ProbationOfficeName       string
	PreviousDUIConvictions    int
	CaseInitiationType        string
	DomesticViolence          string
	AgencyORI                 string

	WarrantIssuanceDate   string
	WarrantActionDate     string
	WarrantIssuanceStatus string
	WarrantActionStatus   string
	WarrantLocationStatus string
	NumberOfWarrants      string

	BondType                string
	BondTypeDesc            string
	BondAmt                 float64
	BondCompany             string
	SuretyCode              string
	BondReleaseDate         string
	FailedToAppearDate      string
	BondsmanProcessIssuance string

	AppealDate        string
	AppealCourt       string
	OriginOfAppeal    string
	AppealToDesc      string
	AppealStatus      string
	AppealTo          string
	NumberOfSubpoenas int
	AdminUpdatedBy    string
	TransferDesc      string
	TBNV1             string
	TBNV2             string
	DriverLicenseNo   string
	StateID           string

	// Charges and Fees are the case's fragments re-joined into single
	// convenience strings; the per-fragment rows are the primary output.
	Charges string
	Fees    string
}

// ChargeFragment is one raw charge line matched within a case's text,
// tagged with its owning case number.
type ChargeFragment struct {
	CaseNumber string
	Text       string
}

// FeeFragment is one raw fee-sheet line (ACTIVE row or totals row) matched
// within a case's text.
type FeeFragment struct {
	CaseNumber string
	Text       string
}

// ChargeRecord is the parsed form of a ChargeFragment.
type ChargeRecord struct {
	CaseNumber      string
	Num             string
	Code            string
	Description     string
	TypeDescription string
	Category        string
	CourtAction     string
	CourtActionDate string
	Disposition     bool // a court-action date is present
	Filing          bool
	Conviction      bool
	Felony          bool

	CERVDisqCharge          bool
	CERVDisqConviction      bool
	PardonDisqCharge        bool
	PardonDisqConviction    bool
	PermanentDisqCharge     bool
	PermanentDisqConviction bool
}

// FeeRecord is the parsed form of a FeeFragment. Balance is the one
// required field; rows without a parseable balance are dropped before they
// reach this type. The other amounts stay nil when unparseable.
type FeeRecord struct {
	CaseNumber string
	Total      bool // totals row, not an itemized fee
	AdminFee   string
	FeeStatus  string
	Code       string
	Payor      string
	Payee      string
	AmtDue     *float64
	AmtPaid    *float64
	Balance    float64
	AmtHold    *float64
}
