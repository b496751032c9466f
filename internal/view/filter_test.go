package view

import (
	"testing"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/stock"
)

func TestApplyStatus(t *testing.T) {
	products := []model.Product{
		{ID: 1, StockCurrent: 0, StockMinimum: 2, ReorderPoint: 5},  // SIN_STOCK
		{ID: 2, StockCurrent: 1, StockMinimum: 2, ReorderPoint: 5},  // CRITICO
		{ID: 3, StockCurrent: 4, StockMinimum: 2, ReorderPoint: 5},  // BAJO
		{ID: 4, StockCurrent: 10, StockMinimum: 2, ReorderPoint: 5}, // NORMAL
	}

	tests := []struct {
		status string
		want   []uint
	}{
		{"", []uint{1, 2, 3, 4}},
		{stock.StatusOut, []uint{1}},
		{stock.StatusCritical, []uint{2}},
		{stock.StatusLow, []uint{3}},
		{stock.StatusNormal, []uint{4}},
	}
	for _, tt := range tests {
		got := ApplyStatus(products, tt.status)
		if len(got) != len(tt.want) {
			t.Errorf("ApplyStatus(%q) returned %d products, want %d",
				tt.status, len(got), len(tt.want))
			continue
		}
		for i, want := range tt.want {
			if got[i].ID != want {
				t.Errorf("ApplyStatus(%q)[%d] = product %d, want %d",
					tt.status, i, got[i].ID, want)
			}
		}
	}
}

func TestApplyStatusNoMatches(t *testing.T) {
	products := []model.Product{
		{ID: 1, StockCurrent: 10, StockMinimum: 2, ReorderPoint: 5},
	}
	got := ApplyStatus(products, stock.StatusOut)
	if len(got) != 0 {
		t.Errorf("expected no products, got %d", len(got))
	}
}
