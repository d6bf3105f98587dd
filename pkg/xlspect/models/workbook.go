package models

// ContainerFormat identifies the spreadsheet container the workbook came from.
type ContainerFormat string

const (
	// FormatXLSX is the modern zip-based container.
	FormatXLSX ContainerFormat = "xlsx"
	// FormatXLSM is the macro-enabled zip-based container.
	FormatXLSM ContainerFormat = "xlsm"
	// FormatXLS is the legacy BIFF binary container.
	FormatXLS ContainerFormat = "xls"
)

// Workbook is the full parsed spreadsheet document: an ordered sequence of
// sheets plus an optional opaque macro payload.
type Workbook struct {
	// BookName is the workbook file name (no path). May be empty when the
	// workbook was loaded from an anonymous buffer.
	BookName string `json:"book_name,omitempty"`
	// Format is the originating container format.
	Format ContainerFormat `json:"format"`
	// Sheets holds the sheets in file order.
	Sheets []Sheet `json:"sheets"`
	// MacroPayload is the raw vbaProject part, preserved byte-for-byte and
	// never decoded or executed. Nil for macro-free workbooks.
	MacroPayload []byte `json:"-"`
}

// SheetNames returns the sheet names in file order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i := range w.Sheets {
		names[i] = w.Sheets[i].Name
	}
	return names
}

// Sheet returns the named sheet, or nil when absent.
func (w *Workbook) Sheet(name string) *Sheet {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i]
		}
	}
	return nil
}

// HasMacros reports whether the workbook carries a macro payload.
func (w *Workbook) HasMacros() bool {
	return len(w.MacroPayload) > 0
}

// Warnings collects the per-sheet parse warnings.
func (w *Workbook) Warnings() []ParseWarning {
	var warnings []ParseWarning
	for i := range w.Sheets {
		if w.Sheets[i].Warning != nil {
			warnings = append(warnings, *w.Sheets[i].Warning)
		}
	}
	return warnings
}
