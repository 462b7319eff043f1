package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/openalabama/courtrecords/internal/records"
)

// WriteCasesCSV writes the cases table to path with a header row.
func WriteCasesCSV(path string, cases []records.CaseRecord) error {
	rows := make([][]any, len(cases))
	for i, c := range cases {
		rows[i] = c.Row()
	}
	return writeCSV(path, records.CaseColumns, rows)
}

// WriteChargesCSV writes one charge-table variant to path.
func WriteChargesCSV(path string, charges []records.ChargeRecord, variant ChargeVariant) error {
	header, rows := variant.table(charges)
	return writeCSV(path, header, rows)
}

// WriteFeesCSV writes the fees table to path with a header row.
func WriteFeesCSV(path string, fees []records.FeeRecord) error {
	rows := make([][]any, len(fees))
	for i, f := range fees {
		rows[i] = f.Row()
	}
	return writeCSV(path, records.FeeColumns, rows)
}

func writeCSV(path string, header []string, rows [][]any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s header: %w", path, err)
	}
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		if err := w.Write(cells); err != nil {
			return fmt.Errorf("writing %s row %d: %w", path, i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func cellString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', 2, 64)
	default:
		return fmt.Sprint(t)
	}
}

// WriteJSON writes all three tables to path as one JSON document keyed
// cases/charges/fees.
func WriteJSON(path string, t Tables) error {
	doc := struct {
		Cases   []records.CaseRecord   `json:"cases"`
		Charges []records.ChargeRecord `json:"charges"`
		Fees    []records.FeeRecord    `json:"fees"`
	}{t.Cases, t.Charges, t.Fees}

	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tables: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
