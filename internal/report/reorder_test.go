package report

import (
	"testing"

	"inventory-analytics-service/internal/model"
)

func TestReorderSuggestions(t *testing.T) {
	products := []model.Product{
		// at the minimum: buy up to the reorder point
		{ID: 1, StockCurrent: 5, StockMinimum: 5, ReorderPoint: 20, UnitCost: 2},
		// healthy: skipped
		{ID: 2, StockCurrent: 50, StockMinimum: 5, ReorderPoint: 20, UnitCost: 2},
		// empty: biggest investment
		{ID: 3, StockCurrent: 0, StockMinimum: 5, ReorderPoint: 20, UnitCost: 10},
	}

	summary := ReorderSuggestions(products)
	if len(summary.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(summary.Rows))
	}

	// Product 3 first: 20 units * 10 = 200 beats 15 units * 2 = 30
	if summary.Rows[0].ProductID != 3 {
		t.Errorf("row 0 product = %d, want 3", summary.Rows[0].ProductID)
	}
	if summary.Rows[0].SuggestedQty != 20 {
		t.Errorf("row 0 qty = %d, want 20", summary.Rows[0].SuggestedQty)
	}
	if summary.Rows[0].Investment != 200 {
		t.Errorf("row 0 investment = %f, want 200", summary.Rows[0].Investment)
	}

	if summary.Rows[1].SuggestedQty != 15 {
		t.Errorf("row 1 qty = %d, want 15", summary.Rows[1].SuggestedQty)
	}
	if summary.TotalInvestment != 230 {
		t.Errorf("total investment = %f, want 230", summary.TotalInvestment)
	}
}

func TestReorderSkipsNonPositiveQuantities(t *testing.T) {
	// Stock at the minimum but already at the reorder point
	summary := ReorderSuggestions([]model.Product{
		{ID: 1, StockCurrent: 0, StockMinimum: 0, ReorderPoint: 0, UnitCost: 5},
	})
	if len(summary.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(summary.Rows))
	}
	if summary.TotalInvestment != 0 {
		t.Errorf("total investment = %f, want 0", summary.TotalInvestment)
	}
}

func TestReorderEmptyInput(t *testing.T) {
	summary := ReorderSuggestions(nil)
	if summary.Rows == nil {
		t.Error("rows should be an empty slice, not nil")
	}
	if len(summary.Rows) != 0 {
		t.Errorf("expected no rows, got %d", len(summary.Rows))
	}
}
