package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/openalabama/courtrecords/internal/records"
)

func sampleTables() Tables {
	due := 300.00
	return Tables{
		Cases: []records.CaseRecord{{
			CaseNumber: "01-CC-2021-000123.00",
			Name:       "JOHN Q PUBLIC",
			Retrieved:  "06/01/2023",
		}},
		Charges: []records.ChargeRecord{
			{CaseNumber: "01-CC-2021-000123.00", Num: "001", Code: "MURD", Disposition: true},
			{CaseNumber: "01-CC-2021-000123.00", Num: "002", Code: "TPCS", Filing: true},
		},
		Fees: []records.FeeRecord{{
			CaseNumber: "01-CC-2021-000123.00",
			Code:       "D999",
			AmtDue:     &due,
			Balance:    300.00,
		}},
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteXLSX(path, sampleTables()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"cases", "fees", "charges"}, f.GetSheetList())

	header, err := f.GetCellValue("cases", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Retrieved", header)

	caseNum, err := f.GetCellValue("cases", "B2")
	require.NoError(t, err)
	assert.Equal(t, "01-CC-2021-000123.00", caseNum)

	rows, err := f.GetRows("charges")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestWriteChargesXLSXFilingVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filing.xlsx")
	require.NoError(t, WriteChargesXLSX(path, sampleTables().Charges, FilingCharges))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("charges")
	require.NoError(t, err)
	// Header plus the one filing row; the disposition row is excluded and
	// the court-action columns are gone.
	require.Len(t, rows, 2)
	assert.Len(t, rows[0], len(records.FilingChargeColumns))
	assert.NotContains(t, rows[0], "CourtAction")
	assert.Contains(t, rows[1], "TPCS")
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	tables := sampleTables()

	casesPath := filepath.Join(dir, "cases.csv")
	require.NoError(t, WriteCasesCSV(casesPath, tables.Cases))
	body, err := os.ReadFile(casesPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Retrieved,CaseNumber,Name"))
	assert.Contains(t, lines[1], "JOHN Q PUBLIC")

	feesPath := filepath.Join(dir, "fees.csv")
	require.NoError(t, WriteFeesCSV(feesPath, tables.Fees))
	body, err = os.ReadFile(feesPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "300.00")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.json")
	require.NoError(t, WriteJSON(path, sampleTables()))

	body, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Cases   []records.CaseRecord   `json:"cases"`
		Charges []records.ChargeRecord `json:"charges"`
		Fees    []records.FeeRecord    `json:"fees"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	require.Len(t, doc.Cases, 1)
	assert.Equal(t, "01-CC-2021-000123.00", doc.Cases[0].CaseNumber)
	assert.Len(t, doc.Charges, 2)
	assert.Len(t, doc.Fees, 1)
}

func TestChargeVariantNames(t *testing.T) {
	assert.Equal(t, "all", AllCharges.String())
	assert.Equal(t, "filing", FilingCharges.String())
	assert.Equal(t, "disposition", DispositionCharges.String())
}
