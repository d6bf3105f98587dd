package xlspect

import (
	"context"
	"testing"

	"github.com/xlspect/xlspect/pkg/xlspect/models"
)

func TestAnalyzeScenario(t *testing.T) {
	data := buildScenarioWorkbook(t)
	wb, err := Load(context.Background(), data, DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	m := Analyze(wb.Sheet("Data"))
	if m.FormulaCount != 1 || m.LiteralCount != 1 || m.EmptyCount != 0 {
		t.Errorf("Expected counts {1 1 0}, got {%d %d %d}", m.FormulaCount, m.LiteralCount, m.EmptyCount)
	}

	empty := Analyze(wb.Sheet("Empty"))
	if empty != (models.ComplexityMetrics{}) {
		t.Errorf("Expected all-zero metrics for Empty, got %+v", empty)
	}
}

func TestAnalyzeZeroFormulaSheet(t *testing.T) {
	// 1 header row + 2 data rows, 2 columns, one empty slot.
	sheet := &models.Sheet{
		Name: "Plain",
		Cells: [][]models.Cell{
			{valueCell("A"), valueCell("B")},
			{valueCell("1"), valueCell("2")},
			{valueCell("3"), {}},
		},
	}

	m := Analyze(sheet)
	if m.FormulaCount != 0 {
		t.Fatalf("Expected no formulas, got %d", m.FormulaCount)
	}
	if m.LiteralCount != 5 || m.EmptyCount != 1 {
		t.Errorf("Expected 5 literals and 1 empty, got %d and %d", m.LiteralCount, m.EmptyCount)
	}
	// With zero formulas the score reduces to literalCount/slots*100,
	// slots being the view's 2x2.
	want := 5.0 / 4.0 * 100
	if m.Score != want {
		t.Errorf("Expected score %v, got %v", want, m.Score)
	}
}

func TestAnalyzeScoreWeighting(t *testing.T) {
	sheet := &models.Sheet{
		Name: "Weighted",
		Cells: [][]models.Cell{
			{valueCell("H")},
			{formulaCell("=1+1", "2")},
			{valueCell("3")},
		},
	}

	m := Analyze(sheet)
	// (1 formula * 2 + 1 literal header + 1 literal) over 2x1 view slots.
	want := float64(1*2+2) / 2.0 * 100
	if m.Score != want {
		t.Errorf("Expected score %v, got %v", want, m.Score)
	}
}

func TestAnalyzeEmptyGridNoDivisionError(t *testing.T) {
	m := Analyze(&models.Sheet{Name: "Nothing"})
	if m.Score != 0 {
		t.Errorf("Expected score 0 for a 0x0 sheet, got %v", m.Score)
	}
}
