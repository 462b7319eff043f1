package fields

import (
	"regexp"

	"github.com/openalabama/courtrecords/constants"
)

var (
	totalRowRE      = regexp.MustCompile(`(Total:.+\$[^\n]*)`)
	totalRowNoiseRE = regexp.MustCompile(`[^0-9|.\s$]`)
	amountRE        = regexp.MustCompile(`\d+\.\d{2}`)
	currencyRE      = regexp.MustCompile(`\$\d+\.\d{2}`)
	restitutionRowRE = regexp.MustCompile(`(` + constants.FeeStatusActive +
		`[^\n]+` + constants.RestitutionCode + `[^\n]+)`)
)

// TotalRow returns the four totals-row amounts as strings, in the printed
// order: due, paid, balance, hold. Missing slots come back "0.00".
func TotalRow(text string) [4]string {
	row := [4]string{"0.00", "0.00", "0.00", "0.00"}
	v, ok := search(totalRowRE, text, 1)
	if !ok {
		return row
	}
	amounts := amountRE.FindAllString(totalRowNoiseRE.ReplaceAllString(v, ""), -1)
	for i := 0; i < len(amounts) && i < 4; i++ {
		row[i] = amounts[i]
	}
	return row
}

// TotalAmtDue returns the case's total amount due.
func TotalAmtDue(text string) float64 {
	v, _ := money(TotalRow(text)[0])
	return v
}

// TotalAmtPaid returns the case's total amount paid.
func TotalAmtPaid(text string) float64 {
	v, _ := money(TotalRow(text)[1])
	return v
}

// TotalBalance returns the case's total outstanding balance.
func TotalBalance(text string) float64 {
	v, _ := money(TotalRow(text)[2])
	return v
}

// TotalAmtHold returns the case's total amount on hold.
func TotalAmtHold(text string) float64 {
	v, _ := money(TotalRow(text)[3])
	return v
}

// RestitutionBalance returns the balance on the D999 restitution fee row,
// 0 when the case has none.
func RestitutionBalance(text string) float64 {
	row, ok := search(restitutionRowRE, text, 1)
	if !ok {
		return 0
	}
	amounts := currencyRE.FindAllString(row, -1)
	if len(amounts) == 0 {
		return 0
	}
	v, ok := money(amounts[len(amounts)-1])
	if !ok {
		return 0
	}
	return v
}

// PaymentToRestore is the amount owed before voting rights can be
// restored: the total balance less restitution, which is not counted
// toward restoration.
func PaymentToRestore(text string) float64 {
	return TotalBalance(text) - RestitutionBalance(text)
}
