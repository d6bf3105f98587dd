package models

// Sheet is one named grid of cells within a Workbook.
// The grid is rectangular: ragged source rows are padded with empty cells.
type Sheet struct {
	// Name is the sheet name, unique within its Workbook.
	Name string `json:"name"`
	// Cells is the row-major cell grid.
	Cells [][]Cell `json:"cells,omitempty"`
	// Warning is set when the sheet could not be parsed and was recorded
	// present-but-empty.
	Warning *ParseWarning `json:"warning,omitempty"`
}

// Dims returns the grid dimensions as (rows, columns).
func (s *Sheet) Dims() (int, int) {
	if len(s.Cells) == 0 {
		return 0, 0
	}
	return len(s.Cells), len(s.Cells[0])
}
