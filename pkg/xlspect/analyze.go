package xlspect

import (
	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

// Analyze makes a single pass over the sheet grid, classifying every cell
// slot as empty, formula, or literal value, and computes the normalized
// complexity score.
//
// The score denominator is the TabularView's row × column count — the grid
// as displayed, with the header row consumed — not the sheet's raw cell
// count. The max(1, …) floor makes a 0×0 sheet score 0 instead of dividing
// by zero.
func Analyze(sheet *models.Sheet) models.ComplexityMetrics {
	var m models.ComplexityMetrics
	for _, row := range sheet.Cells {
		for _, cell := range row {
			switch cell.Type {
			case models.TypeFormula:
				m.FormulaCount++
			case models.TypeValue:
				m.LiteralCount++
			default:
				m.EmptyCount++
			}
		}
	}

	viewRows, viewCols := viewDims(sheet)
	slots := viewRows * viewCols
	if slots < 1 {
		slots = 1
	}
	if m.FormulaCount+m.LiteralCount > 0 {
		m.Score = float64(m.FormulaCount*2+m.LiteralCount) / float64(slots) * 100
	}
	return m
}

// viewDims returns the dimensions the sheet's TabularView would have: the
// header row is consumed as column names.
func viewDims(sheet *models.Sheet) (int, int) {
	rows, cols := sheet.Dims()
	if rows == 0 {
		return 0, 0
	}
	return rows - 1, cols
}
