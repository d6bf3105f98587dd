package models

// ComplexityMetrics is the derived per-sheet cell census and normalized
// complexity score. Recomputed on demand, never cached across sessions.
type ComplexityMetrics struct {
	// FormulaCount is the number of formula cells.
	FormulaCount int `json:"formula_count"`
	// LiteralCount is the number of literal value cells.
	LiteralCount int `json:"literal_count"`
	// EmptyCount is the number of empty cell slots in the grid.
	EmptyCount int `json:"empty_count"`
	// Score is (FormulaCount*2 + LiteralCount) / max(1, viewRows*viewCols) * 100,
	// where the denominator uses the TabularView's dimensions rather than
	// the raw grid, matching what is displayed to the user.
	Score float64 `json:"score"`
}
