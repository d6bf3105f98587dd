package models

// WarnMalformedRange is the warning code for a sheet whose cell range could
// not be parsed. The sheet is recorded present-but-empty.
const WarnMalformedRange = "malformed_range"

// ParseWarning is a non-fatal, sheet-level parse failure attached to the
// affected sheet instead of aborting the whole workbook load.
type ParseWarning struct {
	// SheetName is the affected sheet.
	SheetName string `json:"sheet_name"`
	// Code is the warning code, e.g. WarnMalformedRange.
	Code string `json:"code"`
	// Detail is the underlying parser message.
	Detail string `json:"detail,omitempty"`
}
