package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

func TestExtractSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Name")
	f.SetCellValue(sheetName, "B1", "Total")
	f.SetCellValue(sheetName, "A2", "widget")
	// Cached result before the formula: SetCellValue resets the cell.
	f.SetCellValue(sheetName, "B2", 14)
	f.SetCellFormula(sheetName, "B2", "=A3*2")
	f.SetCellValue(sheetName, "A3", 7)
	// Row 3 has no B cell: the grid must be padded rectangular.

	sheet, err := ExtractSheet(f, sheetName)
	if err != nil {
		t.Fatalf("ExtractSheet failed: %v", err)
	}

	rows, cols := sheet.Dims()
	if rows != 3 || cols != 2 {
		t.Fatalf("Expected 3x2 grid, got %dx%d", rows, cols)
	}

	if c := sheet.Cells[0][0]; c.Type != models.TypeValue || c.Value != "Name" || !c.Text {
		t.Errorf("Unexpected A1: %+v", c)
	}
	if c := sheet.Cells[1][1]; c.Type != models.TypeFormula || c.Formula != "=A3*2" || c.Value != "14" {
		t.Errorf("Unexpected B2: %+v", c)
	}
	if c := sheet.Cells[2][0]; c.Type != models.TypeValue || c.Value != "7" {
		t.Errorf("Unexpected A3: %+v", c)
	}
	if sheet.Cells[2][0].Text {
		t.Error("Expected A3 to be marked numeric, not text")
	}
	if c := sheet.Cells[2][1]; c.Type != models.TypeEmpty {
		t.Errorf("Expected padded empty cell at B3, got %+v", c)
	}
}

func TestExtractSheetNumberFormats(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "When")
	f.SetCellValue(sheetName, "A2", 45000)

	code := "yyyy-mm-dd"
	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &code})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	if err := f.SetCellStyle(sheetName, "A2", "A2", styleID); err != nil {
		t.Fatalf("SetCellStyle failed: %v", err)
	}

	sheet, err := ExtractSheet(f, sheetName)
	if err != nil {
		t.Fatalf("ExtractSheet failed: %v", err)
	}
	if got := sheet.Cells[1][0].NumFmt; got != code {
		t.Errorf("Expected number format %q, got %q", code, got)
	}
	if !IsDateFormat(sheet.Cells[1][0].NumFmt) {
		t.Error("Expected date format detection for yyyy-mm-dd")
	}
}

func TestIsDateFormat(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"yyyy-mm-dd", true},
		{"h:mm:ss", true},
		{"[h]:mm:ss", true},
		{"0.00", false},
		{"#,##0", false},
		{"General", false},
		{"", false},
		{"@", false},
	}
	for _, tt := range tests {
		if got := IsDateFormat(tt.code); got != tt.want {
			t.Errorf("IsDateFormat(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestExtractSheetEmpty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet, err := ExtractSheet(f, "Sheet1")
	if err != nil {
		t.Fatalf("ExtractSheet failed: %v", err)
	}
	if rows, cols := sheet.Dims(); rows != 0 || cols != 0 {
		t.Errorf("Expected 0x0 grid, got %dx%d", rows, cols)
	}
}
