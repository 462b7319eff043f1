// Package export writes the parsed tables to spreadsheet and text
// formats. Column order always follows the records package contracts.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/openalabama/courtrecords/internal/records"
)

// Tables is the full result set to export.
type Tables struct {
	Cases   []records.CaseRecord
	Charges []records.ChargeRecord
	Fees    []records.FeeRecord
}

const (
	sheetCases   = "cases"
	sheetFees    = "fees"
	sheetCharges = "charges"
)

// WriteXLSX writes a three-sheet workbook (cases, fees, charges) to path.
func WriteXLSX(path string, t Tables) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetCases)
	if _, err := f.NewSheet(sheetFees); err != nil {
		return fmt.Errorf("creating fees sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetCharges); err != nil {
		return fmt.Errorf("creating charges sheet: %w", err)
	}

	caseRows := make([][]any, len(t.Cases))
	for i, c := range t.Cases {
		caseRows[i] = c.Row()
	}
	if err := writeSheet(f, sheetCases, records.CaseColumns, caseRows); err != nil {
		return err
	}

	feeRows := make([][]any, len(t.Fees))
	for i, fee := range t.Fees {
		feeRows[i] = fee.Row()
	}
	if err := writeSheet(f, sheetFees, records.FeeColumns, feeRows); err != nil {
		return err
	}

	chargeRows := make([][]any, len(t.Charges))
	for i, c := range t.Charges {
		chargeRows[i] = c.Row()
	}
	if err := writeSheet(f, sheetCharges, records.ChargeColumns, chargeRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// WriteChargesXLSX writes a single-sheet workbook holding one charge-table
// variant: all charges, filings only, or dispositions only.
func WriteChargesXLSX(path string, charges []records.ChargeRecord, variant ChargeVariant) error {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetCharges)

	header, rows := variant.table(charges)
	if err := writeSheet(f, sheetCharges, header, rows); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("writing %s header: %w", sheet, err)
		}
		if err := f.SetCellValue(sheet, cell, name); err != nil {
			return fmt.Errorf("writing %s header: %w", sheet, err)
		}
	}
	for i, row := range rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing %s row %d: %w", sheet, i+1, err)
			}
		}
	}
	last, err := excelize.ColumnNumberToName(max(len(header), 1))
	if err != nil {
		return fmt.Errorf("sizing %s columns: %w", sheet, err)
	}
	if err := f.SetColWidth(sheet, "A", last, 16); err != nil {
		return fmt.Errorf("sizing %s columns: %w", sheet, err)
	}
	return nil
}
