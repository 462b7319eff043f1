package parse

import (
	"regexp"
	"strings"

	"github.com/openalabama/courtrecords/constants"
	"github.com/openalabama/courtrecords/internal/records"
)

var (
	chargeDateRE = regexp.MustCompile(`(\d{1,2}/\d\d/\d\d\d\d)`)
	chargeActRE  = regexp.MustCompile(constants.CourtActionPattern)

	// The statutory cite splits a charge line into a leading segment
	// (number, code, date, description start) and a trailing segment
	// (type, category, remainder). Subsection suffixes like "(A).1" ride
	// along with the cite.
	citeRE      = regexp.MustCompile(`[A-Z0-9]{3}-[A-Z0-9]{3}-[A-Z0-9]{3}\(?[A-Z]?\)?\.?\d?`)
	citeSplitRE = regexp.MustCompile(`[A-Z0-9]{3}\s?-[A-Z0-9]{3}\s?-[A-Z0-9]{3}\(?[A-Z]?\)?\.?\d?`)

	typeDescRE  = regexp.MustCompile(constants.TypeDescriptionPattern)
	categoryRE  = regexp.MustCompile(constants.CategoryPattern)
	qualifierRE = regexp.MustCompile(constants.AttemptQualifierPattern)
	cervRE      = regexp.MustCompile(constants.CERVCodesPattern)
	pardonRE    = regexp.MustCompile(constants.PardonCodesPattern)
	permanentRE = regexp.MustCompile(constants.PermanentCodesPattern)
)

// Charge parses one charge fragment. The boolean is false when the
// fragment is too mangled to yield a row, which drops it silently; a
// charge line without a code is OCR noise, not data.
func Charge(frag records.ChargeFragment) (records.ChargeRecord, bool) {
	text := frag.Text
	if len(text) <= constants.ChargeSortIndex {
		return records.ChargeRecord{}, false
	}

	num := text[constants.ChargeNumStart:constants.ChargeNumEnd]
	code := strings.TrimSpace(text[constants.ChargeCodeStart:constants.ChargeCodeEnd])
	if code == "" {
		return records.ChargeRecord{}, false
	}

	// A court-action date marks a disposition row; filing rows have the
	// description where the date would start.
	date := chargeDateRE.FindString(text)
	disposition := date != ""

	rec := records.ChargeRecord{
		CaseNumber:      frag.CaseNumber,
		Num:             num,
		Code:            code,
		Disposition:     disposition,
		Filing:          !disposition,
		CourtActionDate: date,
		CourtAction:     chargeActRE.FindString(text),
	}

	// The cite divides the line; which side holds the description depends
	// on the row form.
	segments := citeSplitRE.Split(text, 2)
	var otherSeg string
	if disposition {
		if len(segments) > 1 {
			rec.Description = strings.TrimSpace(segments[1])
		}
		if len(segments[0]) > constants.DispositionDescOffset {
			otherSeg = segments[0][constants.DispositionDescOffset:]
		}
	} else {
		if len(segments[0]) > constants.FilingDescOffset {
			rec.Description = strings.TrimSpace(segments[0][constants.FilingDescOffset:])
		}
		if len(segments) > 1 {
			otherSeg = segments[1]
		}
	}

	if t := typeDescRE.FindString(otherSeg); t != "" {
		if t == "TRAFFIC MISDEMEANOR" {
			t = "MISDEMEANOR"
		}
		rec.TypeDescription = t
	}
	rec.Category = categoryRE.FindString(otherSeg)

	rec.Felony = strings.Contains(text, "FELONY")
	rec.Conviction = strings.Contains(text, "GUILTY PLEA") ||
		strings.Contains(text, "CONVICTED")

	// Attempt, solicitation, and conspiracy inchoates never disqualify,
	// whatever the underlying offense.
	if qualifierRE.MatchString(rec.Description) {
		return rec, true
	}

	cerv := cervRE.MatchString(code) && rec.Felony
	pardon := pardonRE.MatchString(code) && rec.Felony
	permanent := permanentRE.MatchString(text) && rec.Felony

	rec.CERVDisqCharge = cerv
	rec.CERVDisqConviction = cerv && rec.Conviction
	rec.PardonDisqCharge = pardon
	rec.PardonDisqConviction = pardon && rec.Conviction
	rec.PermanentDisqCharge = permanent
	rec.PermanentDisqConviction = permanent && rec.Conviction
	return rec, true
}

// Charges parses a batch of fragments, dropping the unparseable ones and
// preserving order.
func Charges(frags []records.ChargeFragment) []records.ChargeRecord {
	out := make([]records.ChargeRecord, 0, len(frags))
	for _, frag := range frags {
		if rec, ok := Charge(frag); ok {
			out = append(out, rec)
		}
	}
	return out
}

// Cite returns the statutory cite from a charge fragment, with any
// subsection suffix attached.
func Cite(text string) string {
	return citeRE.FindString(text)
}
