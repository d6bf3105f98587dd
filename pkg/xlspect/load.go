package xlspect

import (
	"context"
	"errors"
	"fmt"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
	"github.com/xlspect/xlspect/pkg/xlspect/parser"
)

// Load parses an in-memory spreadsheet file into a Workbook.
//
// Supported containers: modern zip-based (.xlsx), macro-enabled zip-based
// (.xlsm, macro payload preserved byte-for-byte, never decoded), and legacy
// BIFF binary (.xls). A sheet that fails to parse does not abort the load:
// it is recorded present-but-empty with a ParseWarning attached.
//
// The context bounds wall-clock time; expiry between sheets reports a
// LoadError of kind LoadTimeout and discards all partial state.
func Load(ctx context.Context, data []byte, opts Options) (*models.Workbook, error) {
	if len(data) == 0 {
		return nil, newLoadError(LoadEmpty, errors.New("no input bytes"))
	}

	switch parser.Sniff(data) {
	case parser.ContainerZip:
		return loadOOXML(ctx, data, opts)
	case parser.ContainerOLE:
		return loadOLE(ctx, data, opts)
	default:
		return nil, newLoadError(LoadCorrupt, errors.New("unrecognized container signature"))
	}
}

func loadOOXML(ctx context.Context, data []byte, opts Options) (*models.Workbook, error) {
	f, err := parser.OpenOOXML(data)
	if err != nil {
		return nil, newLoadError(LoadCorrupt, err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, newLoadError(LoadEmpty, errors.New("workbook has no sheets"))
	}

	wb := &models.Workbook{
		BookName: opts.BookName,
		Format:   models.FormatXLSX,
		Sheets:   make([]models.Sheet, 0, len(sheetNames)),
	}

	for _, name := range sheetNames {
		if err := ctx.Err(); err != nil {
			return nil, newLoadError(LoadTimeout, err)
		}
		sheet, err := parser.ExtractSheet(f, name)
		if err != nil {
			// Per-sheet partial failure: keep the sheet present-but-empty.
			sheet = models.Sheet{
				Name: name,
				Warning: &models.ParseWarning{
					SheetName: name,
					Code:      models.WarnMalformedRange,
					Detail:    err.Error(),
				},
			}
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	payload, err := parser.ReadMacroPayload(data)
	if err != nil {
		return nil, newLoadError(LoadCorrupt, fmt.Errorf("read macro payload: %w", err))
	}
	if len(payload) > 0 {
		wb.MacroPayload = payload
		wb.Format = models.FormatXLSM
	}

	return wb, nil
}

func loadOLE(ctx context.Context, data []byte, opts Options) (*models.Workbook, error) {
	kind, err := parser.ClassifyOLE(data)
	if err != nil {
		return nil, newLoadError(LoadCorrupt, err)
	}

	switch kind {
	case parser.OLEEncryptedPackage:
		return nil, newLoadError(LoadUnsupported, errors.New("workbook is password-protected"))
	case parser.OLELegacyWorkbook:
		// Handled below.
	default:
		return nil, newLoadError(LoadUnsupported, errors.New("compound document carries no workbook stream"))
	}

	if err := ctx.Err(); err != nil {
		return nil, newLoadError(LoadTimeout, err)
	}

	sheets, err := parser.ParseLegacy(data)
	if err != nil {
		return nil, newLoadError(LoadCorrupt, err)
	}
	if len(sheets) == 0 {
		return nil, newLoadError(LoadEmpty, errors.New("workbook has no sheets"))
	}

	return &models.Workbook{
		BookName: opts.BookName,
		Format:   models.FormatXLS,
		Sheets:   sheets,
	}, nil
}
