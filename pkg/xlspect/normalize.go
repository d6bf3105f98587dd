package xlspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tiendc/go-deepcopy"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
	"github.com/xlspect/xlspect/pkg/xlspect/parser"
)

// Normalize projects a sheet into a value-only TabularView.
//
// The first grid row supplies column names; blank headers get synthetic
// positional names, de-duplicated within the sheet. Column types are
// inferred from a bounded sample of non-empty cells; a column whose sample
// mixes numeric and textual values is coerced to a uniform textual
// representation. All of this is display-oriented and lossy: the
// authoritative Sheet is never mutated, and its empty cells stay distinct
// from the view's explicit "" placeholders.
func Normalize(sheet *models.Sheet, opts Options) models.TabularView {
	return NormalizeView(buildView(sheet, opts), opts)
}

// NormalizeView applies the mixed-type coercion pass to an existing view.
// It is idempotent: normalizing an already-normalized view is a no-op. The
// input view is deep-copied and never mutated.
func NormalizeView(view models.TabularView, opts Options) models.TabularView {
	out := models.TabularView{SheetName: view.SheetName, RowCount: view.RowCount}
	if err := deepcopy.Copy(&out.Columns, view.Columns); err != nil {
		// The coercion pass below mutates out.Columns, so the copy must not
		// share backing slices with the input.
		out.Columns = cloneColumns(view.Columns)
	}

	for i := range out.Columns {
		col := &out.Columns[i]
		for j, v := range col.Values {
			if v == nil {
				col.Values[j] = ""
			}
		}
		if mixedTypes(col.Values, opts.sampleSize()) {
			coerceToText(col)
		}
	}
	return out
}

// cloneColumns copies columns with fresh Values slices. Values themselves
// are scalars, so a slice copy is a full copy.
func cloneColumns(cols []models.Column) []models.Column {
	out := make([]models.Column, len(cols))
	for i, col := range cols {
		values := make([]any, len(col.Values))
		copy(values, col.Values)
		out[i] = models.Column{Name: col.Name, Type: col.Type, Values: values}
	}
	return out
}

// buildView derives names, raw values, and declared types from the sheet.
func buildView(sheet *models.Sheet, opts Options) models.TabularView {
	rows, cols := sheet.Dims()
	view := models.TabularView{SheetName: sheet.Name}
	if rows == 0 || cols == 0 {
		return view
	}
	view.RowCount = rows - 1

	seen := make(map[string]bool, cols)
	view.Columns = make([]models.Column, cols)
	for c := 0; c < cols; c++ {
		name := columnName(sheet.Cells[0][c], c, seen)

		values := make([]any, view.RowCount)
		for r := 1; r < rows; r++ {
			cell := sheet.Cells[r][c]
			if cell.Type == models.TypeEmpty || cell.Value == "" {
				values[r-1] = ""
				continue
			}
			values[r-1] = parseValue(cell.Value)
		}

		view.Columns[c] = models.Column{
			Name:   name,
			Type:   inferColumnType(sheet, c, opts.sampleSize()),
			Values: values,
		}
	}
	return view
}

// columnName returns the declared header name, or a synthetic positional
// name, guaranteed unique within the sheet.
func columnName(header models.Cell, col int, seen map[string]bool) string {
	name := strings.TrimSpace(header.Value)
	if header.Type == models.TypeEmpty || name == "" {
		name = fmt.Sprintf("Column_%d", col+1)
	}
	base := name
	for n := 2; seen[name]; n++ {
		name = fmt.Sprintf("%s_%d", base, n)
	}
	seen[name] = true
	return name
}

// inferColumnType samples the first sampleSize non-empty data cells of the
// column. Dates are numeric cells whose number format carries date tokens.
func inferColumnType(sheet *models.Sheet, col, sampleSize int) models.ColumnType {
	rows, _ := sheet.Dims()
	sampled, numeric, dated := 0, 0, 0
	for r := 1; r < rows && sampled < sampleSize; r++ {
		cell := sheet.Cells[r][col]
		if cell.Type == models.TypeEmpty || cell.Value == "" {
			continue
		}
		sampled++
		if _, isText := parseValue(cell.Value).(string); isText {
			continue
		}
		numeric++
		if parser.IsDateFormat(cell.NumFmt) {
			dated++
		}
	}
	switch {
	case sampled == 0 || numeric < sampled:
		return models.ColumnText
	case dated == sampled:
		return models.ColumnDate
	default:
		return models.ColumnNumber
	}
}

// mixedTypes reports whether the first sampleSize non-empty values contain
// both numeric and textual entries.
func mixedTypes(values []any, sampleSize int) bool {
	sampled, numeric := 0, 0
	for _, v := range values {
		if v == nil || v == "" {
			continue
		}
		if sampled == sampleSize {
			break
		}
		sampled++
		if _, isText := v.(string); !isText {
			numeric++
		}
	}
	return numeric > 0 && numeric < sampled
}

// coerceToText rewrites every non-empty value as its textual representation.
func coerceToText(col *models.Column) {
	for i, v := range col.Values {
		if s, ok := v.(string); ok {
			col.Values[i] = s
			continue
		}
		col.Values[i] = fmt.Sprint(v)
	}
	col.Type = models.ColumnText
}

// parseValue attempts to parse a raw cell string as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
