// Package models defines data structures for workbook inspection.
package models

// CellType tags a cell as empty, a literal value, or a formula.
type CellType uint8

const (
	// TypeEmpty marks a cell slot with no stored content.
	TypeEmpty CellType = iota
	// TypeValue marks a cell holding a literal value.
	TypeValue
	// TypeFormula marks a cell holding a formula with an optional cached result.
	TypeFormula
)

// String returns the JSON/report name of the cell type.
func (t CellType) String() string {
	switch t {
	case TypeValue:
		return "value"
	case TypeFormula:
		return "formula"
	default:
		return "empty"
	}
}

// Cell is the smallest addressable unit of a Sheet.
type Cell struct {
	// Type is the tagged variant of the cell.
	Type CellType `json:"type"`
	// Value is the literal value, or the cached evaluation result for a
	// formula cell. Empty when the file stored no cached result.
	Value string `json:"value,omitempty"`
	// Formula is the formula source text including the leading "=".
	// Only set when Type is TypeFormula.
	Formula string `json:"formula,omitempty"`
	// Text marks Value as textual in the source file (a string cell or a
	// string formula result). Re-serialization must keep the source
	// representation, so a numeric-looking text like "007" stays text.
	Text bool `json:"-"`
	// NumFmt is the resolved number format code of the cell, used for
	// date-column detection. May be empty.
	NumFmt string `json:"-"`
}
