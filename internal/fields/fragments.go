package fields

import (
	"regexp"
	"strings"
)

var (
	// A charge line: three-digit number, space, four-character code, free
	// text up to a XXX-XXX-XXX cite, then the remainder of the line.
	chargeRowRE = regexp.MustCompile(`(\d{3}\s[A-Z0-9]{4}.{1,200}?.{3}-.{3}-.{3}.{10,75})`)
	// Lowercase runs inside a charge match are page-footer bleed, never
	// charge content.
	chargeNoiseRE = regexp.MustCompile(`[A-Z][a-z][A-Za-z\s\$]+.+`)

	// A fee line: either an itemized ACTIVE row or the totals row.
	feeRowRE   = regexp.MustCompile(`(ACTIVE [^\(\n]+\$[^\(\n]+ACTIVE[^\(\n]+[^\n]|Total:.+\$[^\n]*)`)
	feeNoiseRE = regexp.MustCompile(`[^A-Z0-9|\.|\s|\$|\n]`)
)

// ChargeRows returns every raw charge line in the text, in document order,
// with footer bleed stripped. Empty results after cleanup are dropped.
func ChargeRows(text string) []string {
	var rows []string
	for _, m := range searchAll(chargeRowRE, text, 1) {
		row := strings.TrimSpace(chargeNoiseRE.ReplaceAllString(m, ""))
		if row != "" {
			rows = append(rows, row)
		}
	}
	return rows
}

// FeeRows returns every raw fee-sheet line in the text, in document order,
// including the totals row, with non-tabular characters blanked.
func FeeRows(text string) []string {
	var rows []string
	for _, m := range searchAll(feeRowRE, text, 1) {
		row := strings.TrimSpace(feeNoiseRE.ReplaceAllString(m, " "))
		if row != "" {
			rows = append(rows, row)
		}
	}
	return rows
}
