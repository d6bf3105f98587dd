package xlspect

import (
	"context"
	"fmt"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

// Session is the per-upload inspection context handed to a presentation
// layer. It exclusively owns the loaded workbook for the duration of one
// user session and holds no process-wide state. All derived artifacts
// (views, formula records, metrics) are recomputed on each request.
type Session struct {
	opts Options
	wb   *models.Workbook
}

// NewSession loads the uploaded file bytes and wraps the workbook.
func NewSession(ctx context.Context, data []byte, opts Options) (*Session, error) {
	wb, err := Load(ctx, data, opts)
	if err != nil {
		return nil, err
	}
	return &Session{opts: opts, wb: wb}, nil
}

// Workbook exposes the authoritative structural model.
func (s *Session) Workbook() *models.Workbook {
	return s.wb
}

// SheetNames returns the sheet names in file order.
func (s *Session) SheetNames() []string {
	return s.wb.SheetNames()
}

// HasMacros reports whether the uploaded workbook carries a macro payload.
func (s *Session) HasMacros() bool {
	return s.wb.HasMacros()
}

// Warnings returns the per-sheet parse warnings accumulated at load time.
func (s *Session) Warnings() []models.ParseWarning {
	return s.wb.Warnings()
}

// View derives the named sheet's TabularView.
func (s *Session) View(sheetName string) (models.TabularView, error) {
	sheet := s.wb.Sheet(sheetName)
	if sheet == nil {
		return models.TabularView{}, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	return Normalize(sheet, s.opts), nil
}

// Formulas derives the named sheet's formula records in row-major order.
func (s *Session) Formulas(sheetName string) ([]models.FormulaRecord, error) {
	sheet := s.wb.Sheet(sheetName)
	if sheet == nil {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	return CollectFormulas(sheet), nil
}

// FormulaStats derives the named sheet's formula summary statistics.
func (s *Session) FormulaStats(sheetName string) (models.FormulaStats, error) {
	records, err := s.Formulas(sheetName)
	if err != nil {
		return models.FormulaStats{}, err
	}
	return ComputeFormulaStats(records, s.opts), nil
}

// Metrics derives the named sheet's complexity census.
func (s *Session) Metrics(sheetName string) (models.ComplexityMetrics, error) {
	sheet := s.wb.Sheet(sheetName)
	if sheet == nil {
		return models.ComplexityMetrics{}, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}
	return Analyze(sheet), nil
}

// SerializeFull re-encodes the whole workbook for download.
func (s *Session) SerializeFull() ([]byte, error) {
	return SerializeFull(s.wb)
}

// SerializeSheet exports the named sheet's values-only view for download.
func (s *Session) SerializeSheet(sheetName string) ([]byte, error) {
	view, err := s.View(sheetName)
	if err != nil {
		return nil, err
	}
	return SerializeSheet(view, sheetName)
}
