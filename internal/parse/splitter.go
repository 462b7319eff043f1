// Package parse turns raw case-detail text into structured records. The
// splitter fans one document out into a header record plus raw charge and
// fee fragments; the charge and fee parsers turn fragments into rows.
// Nothing in this package returns an error: unreadable fragments are
// dropped and missing fields collapse to their zero defaults.
package parse

import (
	"strings"

	"github.com/openalabama/courtrecords/internal/fields"
	"github.com/openalabama/courtrecords/internal/records"
)

// fragmentJoin separates fragments inside the convenience columns on the
// case row.
const fragmentJoin = "; "

// Case extracts the header record and raw fragments from one document.
// Fragments carry the case number so rows can be joined back to their
// case after parsing.
func Case(raw records.RawCase) (records.CaseRecord, []records.ChargeFragment, []records.FeeFragment) {
	text := raw.Text
	caseNumber := fields.CaseNumber(text)

	chargeRows := fields.ChargeRows(text)
	feeRows := fields.FeeRows(text)

	charges := make([]records.ChargeFragment, len(chargeRows))
	for i, row := range chargeRows {
		charges[i] = records.ChargeFragment{CaseNumber: caseNumber, Text: row}
	}
	fees := make([]records.FeeFragment, len(feeRows))
	for i, row := range feeRows {
		fees[i] = records.FeeFragment{CaseNumber: caseNumber, Text: row}
	}

	rec := records.CaseRecord{
		Retrieved:        fields.Retrieved(text),
		CaseNumber:       caseNumber,
		Name:             fields.Name(text),
		DOB:              fields.DOB(text),
		Race:             fields.Race(text),
		Sex:              fields.Sex(text),
		Description:      fields.Description(text),
		CourtAction:      fields.CourtAction(text),
		CourtActionDate:  fields.CourtActionDate(text),
		TotalAmtDue:      fields.TotalAmtDue(text),
		TotalAmtPaid:     fields.TotalAmtPaid(text),
		TotalBalance:     fields.TotalBalance(text),
		TotalAmtHold:     fields.TotalAmtHold(text),
		PaymentToRestore: fields.PaymentToRestore(text),
		Phone:            fields.Phone(text),
		StreetAddress:    fields.StreetAddress(text),
		City:             fields.City(text),
		State:            fields.State(text),
		ZipCode:          fields.ZipCode(text),
		County:           fields.County(text),
		Country:          fields.Country(text),
		Alias:            fields.Alias(text),
		SSN:              fields.SSN(text),
		Weight:           fields.Weight(text),
		Eyes:             fields.Eyes(text),
		Hair:             fields.Hair(text),

		FilingDate:         fields.FilingDate(text),
		CaseInitiationDate: fields.CaseInitiationDate(text),
		ArrestDate:         fields.ArrestDate(text),
		OffenseDate:        fields.OffenseDate(text),
		IndictmentDate:     fields.IndictmentDate(text),

		JuryDemand:                fields.JuryDemand(text),
		InpatientTreatmentOrdered: fields.InpatientTreatmentOrdered(text),
		TrialType:                 fields.TrialType(text),
		Judge:                     fields.Judge(text),
		DefendantStatus:           fields.DefendantStatus(text),
		ArrestingAgencyType:       fields.ArrestingAgencyType(text),
		ArrestingOfficer:          fields.ArrestingOfficer(text),
		ProbationOfficeName:       fields.ProbationOfficeName(text),
		PreviousDUIConvictions:    fields.PreviousDUIConvictions(text),
		CaseInitiationType:        fields.CaseInitiationType(text),
		DomesticViolence:          fields.DomesticViolence(text),
		AgencyORI:                 fields.AgencyORI(text),

		WarrantIssuanceDate:   fields.WarrantIssuanceDate(text),
		WarrantActionDate:     fields.WarrantActionDate(text),
		WarrantIssuanceStatus: fields.WarrantIssuanceStatus(text),
		WarrantActionStatus:   fields.WarrantActionStatus(text),
		WarrantLocationStatus: fields.WarrantLocationStatus(text),
		NumberOfWarrants:      fields.NumberOfWarrants(text),

		BondType:                fields.BondType(text),
		BondTypeDesc:            fields.BondTypeDesc(text),
		BondAmt:                 fields.BondAmt(text),
		BondCompany:             fields.BondCompany(text),
		SuretyCode:              fields.SuretyCode(text),
		BondReleaseDate:         fields.BondReleaseDate(text),
		FailedToAppearDate:      fields.FailedToAppearDate(text),
		BondsmanProcessIssuance: fields.BondsmanProcessIssuance(text),

		AppealDate:        fields.AppealDate(text),
		AppealCourt:       fields.AppealCourt(text),
		OriginOfAppeal:    fields.OriginOfAppeal(text),
		AppealToDesc:      fields.AppealToDesc(text),
		AppealStatus:      fields.AppealStatus(text),
		AppealTo:          fields.AppealTo(text),
		NumberOfSubpoenas: fields.NumberOfSubpoenas(text),
		AdminUpdatedBy:    fields.AdminUpdatedBy(text),
		TransferDesc:      fields.TransferDesc(text),
		TBNV1:             fields.TBNV1(text),
		TBNV2:             fields.TBNV2(text),
		DriverLicenseNo:   fields.DriverLicenseNo(text),
		StateID:           fields.StateID(text),

		Charges: strings.Join(chargeRows, fragmentJoin),
		Fees:    strings.Join(feeRows, fragmentJoin),
	}
	return rec, charges, fees
}

// Batch splits every document in order. The cases slice always has exactly
// one entry per input, in input order, however malformed the text; the
// fragment slices hold whatever the documents yielded.
func Batch(raws []records.RawCase) ([]records.CaseRecord, []records.ChargeFragment, []records.FeeFragment) {
	cases := make([]records.CaseRecord, 0, len(raws))
	var charges []records.ChargeFragment
	var fees []records.FeeFragment
	for _, raw := range raws {
		rec, ch, fe := Case(raw)
		cases = append(cases, rec)
		charges = append(charges, ch...)
		fees = append(fees, fe...)
	}
	return cases, charges, fees
}
