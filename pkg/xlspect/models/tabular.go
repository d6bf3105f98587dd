package models

// ColumnType is the declared type of a TabularView column, inferred from a
// bounded sample of its values.
type ColumnType string

const (
	// ColumnText holds textual values, including columns coerced to text
	// after mixed-type detection.
	ColumnText ColumnType = "text"
	// ColumnNumber holds numeric values only.
	ColumnNumber ColumnType = "number"
	// ColumnDate holds numeric values whose number format carries date or
	// time tokens.
	ColumnDate ColumnType = "date"
)

// Column is one named column of a TabularView.
type Column struct {
	// Name is the declared header name, or a synthetic positional name.
	Name string `json:"name"`
	// Type is the inferred column type.
	Type ColumnType `json:"type"`
	// Values holds one entry per view row: int64, float64 or string, with
	// "" as the explicit placeholder for empty cells.
	Values []any `json:"values"`
}

// TabularView is a value-only, display-oriented projection of a Sheet.
// It is derived and never authoritative: the Sheet retains the formula
// source of record and its distinct empty cells.
type TabularView struct {
	// SheetName is the name of the sheet the view was derived from.
	SheetName string `json:"sheet_name"`
	// Columns holds the named columns in sheet order.
	Columns []Column `json:"columns"`
	// RowCount is the number of view rows (header row excluded).
	RowCount int `json:"row_count"`
}
