package view

import (
	"testing"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/stock"
)

func TestCriticalityOrdering(t *testing.T) {
	products := []model.Product{
		{ID: 1, StockCurrent: 10, StockMinimum: 2, ReorderPoint: 5, SalesCurrentMonth: 3},
		{ID: 2, StockCurrent: 0, StockMinimum: 2, ReorderPoint: 5, SalesCurrentMonth: 8},
		{ID: 3, StockCurrent: 2, StockMinimum: 2, ReorderPoint: 5, SalesCurrentMonth: 1},
		// same stock as 3 but selling faster, so it comes first
		{ID: 4, StockCurrent: 2, StockMinimum: 2, ReorderPoint: 5, SalesCurrentMonth: 9},
	}

	rows := Criticality(products, "")
	wantOrder := []uint{2, 4, 3, 1}
	if len(rows) != len(wantOrder) {
		t.Fatalf("expected %d rows, got %d", len(wantOrder), len(rows))
	}
	for i, want := range wantOrder {
		if rows[i].ProductID != want {
			t.Errorf("row %d product = %d, want %d", i, rows[i].ProductID, want)
		}
	}

	if rows[0].Status != stock.StatusOut {
		t.Errorf("row 0 status = %s, want %s", rows[0].Status, stock.StatusOut)
	}
	if rows[3].Status != stock.StatusNormal {
		t.Errorf("row 3 status = %s, want %s", rows[3].Status, stock.StatusNormal)
	}
}

func TestCriticalityStatusFilter(t *testing.T) {
	products := []model.Product{
		{ID: 1, StockCurrent: 10, StockMinimum: 2, ReorderPoint: 5},
		{ID: 2, StockCurrent: 1, StockMinimum: 2, ReorderPoint: 5},
		{ID: 3, StockCurrent: 4, StockMinimum: 2, ReorderPoint: 5},
	}

	rows := Criticality(products, stock.StatusCritical)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].ProductID != 2 {
		t.Errorf("filtered row product = %d, want 2", rows[0].ProductID)
	}
}
