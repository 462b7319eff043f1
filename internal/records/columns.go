package records

// Column contracts for the three output tables. Writers rely on these
// slices for header naming and order; changing them breaks downstream
// spreadsheets.

// CaseColumns is the header row for the cases table.
var CaseColumns = []string{
	"Retrieved", "CaseNumber", "Name", "DOB", "Race", "Sex", "Description",
	"CourtAction", "CourtActionDate", "TotalAmtDue", "TotalAmtPaid",
	"TotalBalance", "TotalAmtHold", "PaymentToRestore", "Phone",
	"StreetAddress", "City", "State", "ZipCode", "County", "Country",
	"Alias", "SSN", "Weight", "Eyes", "Hair", "FilingDate",
	"CaseInitiationDate", "ArrestDate", "OffenseDate", "IndictmentDate",
	"JuryDemand", "InpatientTreatmentOrdered", "TrialType", "Judge",
	"DefendantStatus", "ArrestingAgencyType", "ArrestingOfficer",
	"ProbationOfficeName", "PreviousDUIConvictions", "CaseInitiationType",
	"DomesticViolence", "AgencyORI", "WarrantIssuanceDate",
	"WarrantActionDate", "WarrantIssuanceStatus", "WarrantActionStatus",
	"WarrantLocationStatus", "NumberOfWarrants", "BondType", "BondTypeDesc",
	"BondAmt", "BondCompany", "SuretyCode", "BondReleaseDate",
	"FailedToAppearDate", "BondsmanProcessIssuance", "AppealDate",
	"AppealCourt", "OriginOfAppeal", "AppealToDesc", "AppealStatus",
	"AppealTo", "NumberOfSubpoenas", "AdminUpdatedBy", "TransferDesc",
	"TBNV1", "TBNV2", "DriverLicenseNo", "StateID", "Charges", "Fees",
}

// ChargeColumns is the header row for the charges table.
var ChargeColumns = []string{
	"CaseNumber", "Num", "Code", "Description", "TypeDescription",
	"Category", "CourtAction", "CourtActionDate", "Conviction", "Felony",
	"CERVDisqCharge", "CERVDisqConviction", "PardonDisqCharge",
	"PardonDisqConviction", "PermanentDisqCharge", "PermanentDisqConviction",
}

// FilingChargeColumns is the charges header for the filing table variant,
// which drops the court-action columns.
var FilingChargeColumns = []string{
	"CaseNumber", "Num", "Code", "Description", "TypeDescription",
	"Category", "Conviction", "Felony",
	"CERVDisqCharge", "CERVDisqConviction", "PardonDisqCharge",
	"PardonDisqConviction", "PermanentDisqCharge", "PermanentDisqConviction",
}

// FeeColumns is the header row for the fees table.
var FeeColumns = []string{
	"CaseNumber", "Total", "AdminFee", "FeeStatus", "Code", "Payor",
	"Payee", "AmtDue", "AmtPaid", "Balance", "AmtHold",
}

// Row flattens a CaseRecord in CaseColumns order.
func (c CaseRecord) Row() []any {
	return []any{
		c.Retrieved, c.CaseNumber, c.Name, c.DOB, c.Race, c.Sex,
		c.Description, c.CourtAction, c.CourtActionDate, c.TotalAmtDue,
		c.TotalAmtPaid, c.TotalBalance, c.TotalAmtHold, c.PaymentToRestore,
		c.Phone, c.StreetAddress, c.City, c.State, c.ZipCode, c.County,
		c.Country, c.Alias, c.SSN, c.Weight, c.Eyes, c.Hair, c.FilingDate,
		c.CaseInitiationDate, c.ArrestDate, c.OffenseDate, c.IndictmentDate,
		c.JuryDemand, c.InpatientTreatmentOrdered, c.TrialType, c.Judge,
		c.DefendantStatus, c.ArrestingAgencyType, c.ArrestingOfficer,
		c.ProbationOfficeName, c.PreviousDUIConvictions,
		c.CaseInitiationType, c.DomesticViolence, c.AgencyORI,
		c.WarrantIssuanceDate, c.WarrantActionDate, c.WarrantIssuanceStatus,
		c.WarrantActionStatus, c.WarrantLocationStatus, c.NumberOfWarrants,
		c.BondType, c.BondTypeDesc, c.BondAmt, c.BondCompany, c.SuretyCode,
		c.BondReleaseDate, c.FailedToAppearDate, c.BondsmanProcessIssuance,
		c.AppealDate, c.AppealCourt, c.OriginOfAppeal, c.AppealToDesc,
		c.AppealStatus, c.AppealTo, c.NumberOfSubpoenas, c.AdminUpdatedBy,
		c.TransferDesc, c.TBNV1, c.TBNV2, c.DriverLicenseNo, c.StateID,
		c.Charges, c.Fees,
	}
}

// Row flattens a ChargeRecord in ChargeColumns order.
func (c ChargeRecord) Row() []any {
	return []any{
		c.CaseNumber, c.Num, c.Code, c.Description, c.TypeDescription,
		c.Category, c.CourtAction, c.CourtActionDate, c.Conviction,
		c.Felony, c.CERVDisqCharge, c.CERVDisqConviction,
		c.PardonDisqCharge, c.PardonDisqConviction, c.PermanentDisqCharge,
		c.PermanentDisqConviction,
	}
}

// FilingRow flattens a ChargeRecord in FilingChargeColumns order.
func (c ChargeRecord) FilingRow() []any {
	return []any{
		c.CaseNumber, c.Num, c.Code, c.Description, c.TypeDescription,
		c.Category, c.Conviction, c.Felony, c.CERVDisqCharge,
		c.CERVDisqConviction, c.PardonDisqCharge, c.PardonDisqConviction,
		c.PermanentDisqCharge, c.PermanentDisqConviction,
	}
}

// Row flattens a FeeRecord in FeeColumns order. Nil amounts flatten to
// empty strings so spreadsheet cells stay blank.
func (f FeeRecord) Row() []any {
	total := ""
	if f.Total {
		total = "TOTAL"
	}
	return []any{
		f.CaseNumber, total, f.AdminFee, f.FeeStatus, f.Code, f.Payor,
		f.Payee, optMoney(f.AmtDue), optMoney(f.AmtPaid), f.Balance,
		optMoney(f.AmtHold),
	}
}

func optMoney(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
