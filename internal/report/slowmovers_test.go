package report

import (
	"testing"
	"time"

	"inventory-analytics-service/internal/model"
)

func TestSlowMoversSelection(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	recent := now.AddDate(0, 0, -10)
	stale := now.AddDate(0, 0, -90)

	products := []model.Product{
		// low sales, enough stock: selected
		{ID: 1, StockCurrent: 20, SalesCurrentMonth: 1, UnitCost: 5, SalePrice: 10, LastSaleAt: &recent},
		// selling fine and fresh: not selected
		{ID: 2, StockCurrent: 20, SalesCurrentMonth: 15, UnitCost: 5, SalePrice: 10, LastSaleAt: &recent},
		// selling but stale: selected
		{ID: 3, StockCurrent: 8, SalesCurrentMonth: 10, UnitCost: 2, SalePrice: 4, LastSaleAt: &stale},
		// low sales but barely any stock: not selected
		{ID: 4, StockCurrent: 5, SalesCurrentMonth: 0, UnitCost: 5, SalePrice: 10},
		// never sold, big stock: selected
		{ID: 5, StockCurrent: 50, SalesCurrentMonth: 0, UnitCost: 3, SalePrice: 6},
	}

	rows := SlowMovers(products, now)
	got := make(map[uint]bool, len(rows))
	for _, row := range rows {
		got[row.ProductID] = true
	}
	for _, want := range []uint{1, 3, 5} {
		if !got[want] {
			t.Errorf("product %d should be a slow mover", want)
		}
	}
	for _, skip := range []uint{2, 4} {
		if got[skip] {
			t.Errorf("product %d should not be a slow mover", skip)
		}
	}
}

func TestSlowMoversSortedByImmobilizedCapital(t *testing.T) {
	now := time.Now()
	products := []model.Product{
		{ID: 1, StockCurrent: 10, UnitCost: 2},  // 20
		{ID: 2, StockCurrent: 10, UnitCost: 30}, // 300
		{ID: 3, StockCurrent: 10, UnitCost: 7},  // 70
	}

	rows := SlowMovers(products, now)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	wantOrder := []uint{2, 3, 1}
	for i, want := range wantOrder {
		if rows[i].ProductID != want {
			t.Errorf("row %d product = %d, want %d", i, rows[i].ProductID, want)
		}
	}
}

func TestSlowMoversLiquidationPrice(t *testing.T) {
	rows := SlowMovers([]model.Product{
		{ID: 1, StockCurrent: 10, SalesCurrentMonth: 0, UnitCost: 5, SalePrice: 100},
	}, time.Now())
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].LiquidationPrice != 70 {
		t.Errorf("liquidation price = %f, want 70 (70%% of 100)", rows[0].LiquidationPrice)
	}
	if rows[0].ImmobilizedCapital != 50 {
		t.Errorf("immobilized capital = %f, want 50", rows[0].ImmobilizedCapital)
	}
}

func TestSlowMoversStalenessBoundary(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	// High current sales so only staleness can select the product
	exactly60 := now.AddDate(0, 0, -60)
	over60 := now.AddDate(0, 0, -61)

	atBoundary := SlowMovers([]model.Product{
		{ID: 1, StockCurrent: 10, SalesCurrentMonth: 20, LastSaleAt: &exactly60},
	}, now)
	if len(atBoundary) != 0 {
		t.Error("a sale exactly 60 days ago is not yet stale")
	}

	past := SlowMovers([]model.Product{
		{ID: 1, StockCurrent: 10, SalesCurrentMonth: 20, LastSaleAt: &over60},
	}, now)
	if len(past) != 1 {
		t.Error("a sale older than 60 days should be stale")
	}
}
