package parser

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

// OpenOOXML opens a zip-based workbook from an in-memory buffer.
func OpenOOXML(data []byte) (*excelize.File, error) {
	return excelize.OpenReader(bytes.NewReader(data))
}

// ExtractSheet reads one sheet of an open OOXML workbook into the structural
// cell grid: raw cached values, formula source text, the stored cell type,
// and the number format code of every non-empty cell. Ragged rows are padded
// so the grid is rectangular.
func ExtractSheet(f *excelize.File, sheetName string) (models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Sheet{Name: sheetName}, err
	}

	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}

	styles := newStyleFormats(f)
	grid := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		grid[rowIdx] = make([]models.Cell, cols)
		for colIdx := 0; colIdx < cols; colIdx++ {
			raw := ""
			if colIdx < len(row) {
				raw = row[colIdx]
			}

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return models.Sheet{Name: sheetName}, err
			}
			formula, err := f.GetCellFormula(sheetName, cellName)
			if err != nil {
				return models.Sheet{Name: sheetName}, err
			}

			cell := models.Cell{}
			switch {
			case formula != "":
				cell.Type = models.TypeFormula
				cell.Formula = normalizeFormula(formula)
				cell.Value = raw
			case raw != "":
				cell.Type = models.TypeValue
				cell.Value = raw
			default:
				cell.Type = models.TypeEmpty
			}

			if cell.Type != models.TypeEmpty {
				if ct, err := f.GetCellType(sheetName, cellName); err == nil {
					cell.Text = ct == excelize.CellTypeSharedString ||
						ct == excelize.CellTypeInlineString ||
						(cell.Type == models.TypeFormula && ct == excelize.CellTypeFormula)
				}
				if styleID, err := f.GetCellStyle(sheetName, cellName); err == nil {
					cell.NumFmt = styles.code(styleID)
				}
			}
			grid[rowIdx][colIdx] = cell
		}
	}

	return models.Sheet{Name: sheetName, Cells: grid}, nil
}

// normalizeFormula ensures the stored formula text carries the leading "=",
// matching how users see it. OOXML stores formulas without it.
func normalizeFormula(formula string) string {
	if strings.HasPrefix(formula, "=") {
		return formula
	}
	return "=" + formula
}
