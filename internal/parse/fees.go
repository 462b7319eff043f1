package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/openalabama/courtrecords/constants"
	"github.com/openalabama/courtrecords/internal/records"
)

var (
	feeAmountRE = regexp.MustCompile(`\$\d+\.\d{2}`)
	payorRE     = regexp.MustCompile(constants.PayorPattern)
)

// Fee parses one fee-sheet fragment. Rows split on single spaces with
// empty tokens preserved, so padding keeps the columns positionally
// stable. The boolean is false when no balance can be recovered; a fee
// row without a balance is unusable and drops silently.
func Fee(frag records.FeeFragment) (records.FeeRecord, bool) {
	text := frag.Text
	tokens := strings.Split(text, " ")

	amounts := feeAmountRE.FindAllString(text, -1)
	if len(amounts) == 0 {
		return records.FeeRecord{}, false
	}

	rec := records.FeeRecord{CaseNumber: frag.CaseNumber}

	// Any first token other than ACTIVE marks the totals row; its label
	// does not survive the splitter's cleanup intact, so the test is on
	// what the token is not.
	rec.Total = token(tokens, constants.FeeTokenAdminFee) != constants.FeeStatusActive
	if !rec.Total {
		rec.AdminFee = constants.FeeStatusActive
	}

	if status := token(tokens, constants.FeeTokenFeeStatus); !strings.Contains(status, "$") {
		rec.FeeStatus = status
	}
	rec.Code = token(tokens, constants.FeeTokenCode)

	// The payor column is blank on some rows, shifting the payee into its
	// slot; a token that does not look like a payor code is the payee.
	payor := token(tokens, constants.FeeTokenPayor)
	payee := token(tokens, constants.FeeTokenPayee)
	if !payorRE.MatchString(payor) {
		payee = payor
		payor = ""
	}
	if rec.Total {
		payor = ""
	}
	if strings.ContainsAny(payee, "$.") {
		payee = ""
	}
	rec.Payor = payor
	rec.Payee = payee

	// A true totals line carries nothing but the four amounts. Rows that
	// merely lost their leading marker still carry an ACTIVE status
	// somewhere and keep their identity columns.
	if rec.Total && !strings.Contains(text, constants.FeeStatusActive) {
		rec.FeeStatus = ""
		rec.Code = ""
		rec.Payor = ""
		rec.Payee = ""
	}

	if v, ok := amount(amounts, 0); ok {
		rec.AmtDue = &v
	}
	if v, ok := amount(amounts, 1); ok {
		rec.AmtPaid = &v
	}
	balance, ok := amount(amounts, len(amounts)-1)
	if !ok {
		return records.FeeRecord{}, false
	}
	rec.Balance = balance

	// The hold slot shares the last column with the balance; a bare "L"
	// lien marker counts as a zero hold.
	if strings.HasSuffix(strings.TrimSpace(text), " L") {
		hold := 0.0
		rec.AmtHold = &hold
	} else {
		hold := balance
		rec.AmtHold = &hold
	}
	return rec, true
}

// Fees parses a batch of fragments, dropping the unparseable ones and
// preserving order.
func Fees(frags []records.FeeFragment) []records.FeeRecord {
	out := make([]records.FeeRecord, 0, len(frags))
	for _, frag := range frags {
		if rec, ok := Fee(frag); ok {
			out = append(out, rec)
		}
	}
	return out
}

func token(tokens []string, i int) string {
	if i >= len(tokens) {
		return ""
	}
	return strings.TrimSpace(tokens[i])
}

func amount(amounts []string, i int) (float64, bool) {
	if i < 0 || i >= len(amounts) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(amounts[i], "$"), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
