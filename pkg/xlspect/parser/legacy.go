package parser

import (
	"bytes"

	"github.com/shakinm/xlsReader/xls"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

// ParseLegacy reads a legacy BIFF .xls workbook from an in-memory buffer.
//
// The BIFF reader exposes the stored (cached) result of every cell but not
// formula source text, so all non-empty cells come back as literal values.
// Rows that cannot be read are recorded as empty instead of aborting the
// sheet, in line with the partial failure policy.
func ParseLegacy(data []byte) ([]models.Sheet, error) {
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	sheets := make([]models.Sheet, 0, wb.GetNumberSheets())
	for i := 0; i < wb.GetNumberSheets(); i++ {
		sh, err := wb.GetSheet(i)
		if err != nil || sh == nil {
			continue
		}
		sheet := models.Sheet{Name: sh.GetName()}

		var rows [][]string
		cols := 0
		for j := 0; j <= sh.GetNumberRows(); j++ {
			row, err := sh.GetRow(j)
			if err != nil || row == nil {
				rows = append(rows, nil)
				continue
			}
			var values []string
			for _, col := range row.GetCols() {
				values = append(values, col.GetString())
			}
			if len(values) > cols {
				cols = len(values)
			}
			rows = append(rows, values)
		}

		// Trim trailing all-empty rows so an unused sheet stays a 0x0 grid.
		for len(rows) > 0 && rowEmpty(rows[len(rows)-1]) {
			rows = rows[:len(rows)-1]
		}

		if cols > 0 {
			grid := make([][]models.Cell, len(rows))
			for rowIdx, values := range rows {
				grid[rowIdx] = make([]models.Cell, cols)
				for colIdx := 0; colIdx < cols; colIdx++ {
					v := ""
					if colIdx < len(values) {
						v = values[colIdx]
					}
					if v != "" {
						grid[rowIdx][colIdx] = models.Cell{Type: models.TypeValue, Value: v}
					}
				}
			}
			sheet.Cells = grid
		}
		sheets = append(sheets, sheet)
	}
	return sheets, nil
}

func rowEmpty(values []string) bool {
	for _, v := range values {
		if v != "" {
			return false
		}
	}
	return true
}
