package xlspect

import (
	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

// Report assembles the full inspection report for the session's workbook:
// per sheet the column schema, complexity census, formula records with
// summary statistics, and any load-time warning.
func (s *Session) Report() *models.InspectionReport {
	report := &models.InspectionReport{
		BookName:  s.wb.BookName,
		Format:    s.wb.Format,
		HasMacros: s.wb.HasMacros(),
		Sheets:    make([]models.SheetReport, 0, len(s.wb.Sheets)),
	}
	for i := range s.wb.Sheets {
		report.Sheets = append(report.Sheets, s.sheetReport(&s.wb.Sheets[i]))
	}
	return report
}

func (s *Session) sheetReport(sheet *models.Sheet) models.SheetReport {
	view := Normalize(sheet, s.opts)
	metrics := Analyze(sheet)
	formulas := CollectFormulas(sheet)

	var schema []models.ColumnSchema
	for _, col := range view.Columns {
		schema = append(schema, models.ColumnSchema{Name: col.Name, Type: col.Type})
	}

	return models.SheetReport{
		Name:          sheet.Name,
		RowCount:      view.RowCount,
		ColumnCount:   len(view.Columns),
		NonEmptyCells: metrics.FormulaCount + metrics.LiteralCount,
		Columns:       schema,
		Metrics:       metrics,
		Formulas:      formulas,
		FormulaStats:  ComputeFormulaStats(formulas, s.opts),
		Warning:       sheet.Warning,
	}
}
