package export

import "github.com/openalabama/courtrecords/internal/records"

// ChargeVariant selects which charge rows and columns a charges export
// carries.
type ChargeVariant int

const (
	// AllCharges exports every charge row with the full column set.
	AllCharges ChargeVariant = iota
	// FilingCharges exports filing rows only, without the court-action
	// columns, which filings never carry.
	FilingCharges
	// DispositionCharges exports disposition rows only, with the full
	// column set.
	DispositionCharges
)

func (v ChargeVariant) table(charges []records.ChargeRecord) ([]string, [][]any) {
	switch v {
	case FilingCharges:
		var rows [][]any
		for _, c := range charges {
			if c.Filing {
				rows = append(rows, c.FilingRow())
			}
		}
		return records.FilingChargeColumns, rows
	case DispositionCharges:
		var rows [][]any
		for _, c := range charges {
			if c.Disposition {
				rows = append(rows, c.Row())
			}
		}
		return records.ChargeColumns, rows
	default:
		rows := make([][]any, len(charges))
		for i, c := range charges {
			rows[i] = c.Row()
		}
		return records.ChargeColumns, rows
	}
}

// String names the variant for logs and filenames.
func (v ChargeVariant) String() string {
	switch v {
	case FilingCharges:
		return "filing"
	case DispositionCharges:
		return "disposition"
	default:
		return "all"
	}
}
