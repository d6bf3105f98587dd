package xlspect

import (
	"iter"
	"strings"

	"github.com/xuri/efp"
	"github.com/xuri/excelize/v2"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

// ExtractFormulas walks the sheet in row-major order and yields one record
// per formula cell. The sequence is lazy and restartable: ranging over it
// twice on an unchanged sheet yields identical output.
//
// The cached value in each record is whatever the file stored at load time;
// a missing cached result (manual-calculation mode) yields an empty value,
// not an error.
func ExtractFormulas(sheet *models.Sheet) iter.Seq[models.FormulaRecord] {
	return func(yield func(models.FormulaRecord) bool) {
		for r, row := range sheet.Cells {
			for c, cell := range row {
				if cell.Type != models.TypeFormula {
					continue
				}
				loc, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					continue
				}
				record := models.FormulaRecord{
					Cell:    loc,
					Formula: cell.Formula,
					Value:   cell.Value,
				}
				if !yield(record) {
					return
				}
			}
		}
	}
}

// CollectFormulas materializes ExtractFormulas into a slice.
func CollectFormulas(sheet *models.Sheet) []models.FormulaRecord {
	var records []models.FormulaRecord
	for record := range ExtractFormulas(sheet) {
		records = append(records, record)
	}
	return records
}

// ComputeFormulaStats summarizes a formula record sequence. Distinct texts
// are compared by exact case-sensitive match; "complex" means the source
// text is longer than the configured threshold (a policy constant, see
// DefaultComplexityThreshold). Function calls are counted by tokenizing each
// formula.
func ComputeFormulaStats(records []models.FormulaRecord, opts Options) models.FormulaStats {
	stats := models.FormulaStats{Total: len(records)}
	distinct := make(map[string]struct{}, len(records))
	for _, record := range records {
		distinct[record.Formula] = struct{}{}
		if len(record.Formula) > opts.complexityThreshold() {
			stats.Complex++
		}
		stats.FunctionCalls += countFunctionCalls(record.Formula)
	}
	stats.Distinct = len(distinct)
	return stats
}

// countFunctionCalls tokenizes a formula and counts function-start tokens.
func countFunctionCalls(formula string) int {
	ps := efp.ExcelParser()
	calls := 0
	for _, token := range ps.Parse(strings.TrimPrefix(formula, "=")) {
		if token.TType == efp.TokenTypeFunction && token.TSubType == efp.TokenSubTypeStart {
			calls++
		}
	}
	return calls
}
