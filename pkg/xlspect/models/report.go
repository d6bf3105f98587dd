package models

// ColumnSchema is the (name, type) pair of one TabularView column, without
// its values.
type ColumnSchema struct {
	// Name is the column name.
	Name string `json:"name"`
	// Type is the inferred column type.
	Type ColumnType `json:"type"`
}

// SheetReport aggregates the derived views of one sheet.
type SheetReport struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// RowCount is the TabularView row count.
	RowCount int `json:"row_count"`
	// ColumnCount is the TabularView column count.
	ColumnCount int `json:"column_count"`
	// NonEmptyCells is the number of literal and formula cells.
	NonEmptyCells int `json:"non_empty_cells"`
	// Columns is the inferred column schema.
	Columns []ColumnSchema `json:"columns,omitempty"`
	// Metrics is the sheet's complexity census.
	Metrics ComplexityMetrics `json:"metrics"`
	// Formulas lists the sheet's formula cells in row-major order.
	Formulas []FormulaRecord `json:"formulas,omitempty"`
	// FormulaStats summarizes Formulas.
	FormulaStats FormulaStats `json:"formula_stats"`
	// Warning is set when the sheet was recorded present-but-empty.
	Warning *ParseWarning `json:"warning,omitempty"`
}

// InspectionReport is the workbook-level inspection result handed to the
// presentation layer.
type InspectionReport struct {
	// BookName is the workbook file name, when known.
	BookName string `json:"book_name,omitempty"`
	// Format is the originating container format.
	Format ContainerFormat `json:"format"`
	// HasMacros reports whether the workbook carries a macro payload.
	HasMacros bool `json:"has_macros"`
	// Sheets holds one report per sheet, in file order.
	Sheets []SheetReport `json:"sheets"`
}
