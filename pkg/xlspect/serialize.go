package xlspect

import (
	"errors"

	"github.com/xuri/excelize/v2"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

// vbaCodeName is the workbook code name required for re-attached macro
// projects to resolve ThisWorkbook references.
const vbaCodeName = "ThisWorkbook"

// SerializeFull re-encodes the whole workbook as a modern zip-based
// container: every sheet in file order, formula cells with their source text
// and cached result, literal cells typed, and the macro payload re-attached
// byte-for-byte when present (the output is then the macro-enabled variant).
//
// The operation is all-or-nothing: a complete in-memory buffer is produced
// before returning, and a failure leaves the workbook untouched so the same
// download can be retried.
func SerializeFull(wb *models.Workbook) ([]byte, error) {
	if len(wb.Sheets) == 0 {
		return nil, &SerializeError{Err: errors.New("workbook has no sheets")}
	}

	f := excelize.NewFile()
	defer f.Close()

	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return nil, &SerializeError{Err: err}
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, &SerializeError{Err: err}
		}
		if err := writeSheet(f, sheet); err != nil {
			return nil, &SerializeError{Err: err}
		}
	}

	if wb.HasMacros() {
		// AddVBAProject requires a macro-enabled workbook path.
		f.Path = "workbook.xlsm"
		codeName := vbaCodeName
		if err := f.SetWorkbookProps(&excelize.WorkbookPropsOptions{CodeName: &codeName}); err != nil {
			return nil, &SerializeError{Err: err}
		}
		if err := f.AddVBAProject(wb.MacroPayload); err != nil {
			return nil, &SerializeError{Err: err}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &SerializeError{Err: err}
	}
	return buf.Bytes(), nil
}

// SerializeSheet builds a brand-new single-sheet .xlsx from a TabularView:
// header row from the column names, then values only. Formulas are discarded
// (the view never carried them) and no macro payload is ever attached. This
// is a deliberate lossy export path, distinct from SerializeFull.
func SerializeSheet(view models.TabularView, sheetName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, &SerializeError{Err: err}
	}

	for c, col := range view.Columns {
		header, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return nil, &SerializeError{Err: err}
		}
		if err := f.SetCellValue(sheetName, header, col.Name); err != nil {
			return nil, &SerializeError{Err: err}
		}
		for r, v := range col.Values {
			if v == nil || v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, &SerializeError{Err: err}
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, &SerializeError{Err: err}
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &SerializeError{Err: err}
	}
	return buf.Bytes(), nil
}

// writeSheet writes one sheet's cells into the output file. Formula cells
// get their cached result first, then the source text: SetCellValue resets
// the cell and would erase a formula written before it, while SetCellFormula
// leaves the stored value alone. Reloading the output then sees the same
// cached value without re-evaluation.
func writeSheet(f *excelize.File, sheet *models.Sheet) error {
	for r, row := range sheet.Cells {
		for c, cell := range row {
			if cell.Type == models.TypeEmpty {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			switch cell.Type {
			case models.TypeFormula:
				if cell.Value != "" {
					if err := writeCellValue(f, sheet.Name, name, cell); err != nil {
						return err
					}
				}
				if err := f.SetCellFormula(sheet.Name, name, cell.Formula); err != nil {
					return err
				}
			case models.TypeValue:
				if err := writeCellValue(f, sheet.Name, name, cell); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// writeCellValue stores a cell value keeping its source representation:
// text cells stay text even when their content looks numeric ("007", "1e3").
func writeCellValue(f *excelize.File, sheetName, cellName string, cell models.Cell) error {
	if cell.Text {
		return f.SetCellStr(sheetName, cellName, cell.Value)
	}
	return f.SetCellValue(sheetName, cellName, parseValue(cell.Value))
}
