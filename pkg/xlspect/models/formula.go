package models

// FormulaRecord is a derived (location, formula text, cached value) triple.
// Records are recomputed on each inspection request and never persisted.
type FormulaRecord struct {
	// Cell is the A1-style location of the formula cell.
	Cell string `json:"cell"`
	// Formula is the formula source text including the leading "=".
	Formula string `json:"formula"`
	// Value is the cached evaluation result stored in the file at load
	// time. Empty when the file stored none (manual-calculation mode).
	Value string `json:"value"`
}

// FormulaStats summarizes the formula cells of a sheet.
type FormulaStats struct {
	// Total is the number of formula cells.
	Total int `json:"total"`
	// Distinct is the number of distinct formula texts, compared by exact
	// case-sensitive string match.
	Distinct int `json:"distinct"`
	// Complex is the number of formulas whose source text exceeds the
	// configured length threshold.
	Complex int `json:"complex"`
	// FunctionCalls is the total number of function invocations across all
	// formula texts.
	FunctionCalls int `json:"function_calls"`
}
