package xlspect

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

func TestSessionScenario(t *testing.T) {
	data := buildScenarioWorkbook(t)
	session, err := NewSession(context.Background(), data, Options{BookName: "scenario.xlsx"})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if names := session.SheetNames(); !reflect.DeepEqual(names, []string{"Data", "Empty"}) {
		t.Errorf("Expected [Data Empty], got %v", names)
	}
	if session.HasMacros() {
		t.Error("Expected no macros")
	}
	if warnings := session.Warnings(); len(warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", warnings)
	}

	records, err := session.Formulas("Data")
	if err != nil {
		t.Fatalf("Formulas failed: %v", err)
	}
	want := []models.FormulaRecord{{Cell: "B1", Formula: "=A1*2", Value: "10"}}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("Expected %v, got %v", want, records)
	}

	metrics, err := session.Metrics("Data")
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}
	if metrics.FormulaCount != 1 || metrics.LiteralCount != 1 || metrics.EmptyCount != 0 {
		t.Errorf("Unexpected metrics %+v", metrics)
	}

	emptyMetrics, err := session.Metrics("Empty")
	if err != nil {
		t.Fatalf("Metrics failed: %v", err)
	}
	if emptyMetrics != (models.ComplexityMetrics{}) {
		t.Errorf("Expected all-zero metrics, got %+v", emptyMetrics)
	}
}

func TestSessionSheetNotFound(t *testing.T) {
	session, err := NewSession(context.Background(), buildScenarioWorkbook(t), DefaultOptions())
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	if _, err := session.View("Missing"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound from View, got %v", err)
	}
	if _, err := session.Formulas("Missing"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound from Formulas, got %v", err)
	}
	if _, err := session.Metrics("Missing"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound from Metrics, got %v", err)
	}
	if _, err := session.SerializeSheet("Missing"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound from SerializeSheet, got %v", err)
	}
}

func TestSessionReport(t *testing.T) {
	session, err := NewSession(context.Background(), buildScenarioWorkbook(t), Options{BookName: "scenario.xlsx"})
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	report := session.Report()
	if report.BookName != "scenario.xlsx" {
		t.Errorf("Expected book name scenario.xlsx, got %q", report.BookName)
	}
	if report.Format != models.FormatXLSX || report.HasMacros {
		t.Errorf("Unexpected format/macros: %s %v", report.Format, report.HasMacros)
	}
	if len(report.Sheets) != 2 {
		t.Fatalf("Expected 2 sheet reports, got %d", len(report.Sheets))
	}

	dataReport := report.Sheets[0]
	if dataReport.Name != "Data" {
		t.Fatalf("Expected first report for Data, got %s", dataReport.Name)
	}
	if dataReport.NonEmptyCells != 2 {
		t.Errorf("Expected 2 non-empty cells, got %d", dataReport.NonEmptyCells)
	}
	if dataReport.FormulaStats.Total != 1 || dataReport.FormulaStats.Distinct != 1 {
		t.Errorf("Unexpected formula stats %+v", dataReport.FormulaStats)
	}
	if dataReport.ColumnCount != 2 {
		t.Errorf("Expected 2 columns, got %d", dataReport.ColumnCount)
	}

	emptyReport := report.Sheets[1]
	if emptyReport.Name != "Empty" || emptyReport.RowCount != 0 || emptyReport.ColumnCount != 0 {
		t.Errorf("Unexpected empty sheet report %+v", emptyReport)
	}
}
