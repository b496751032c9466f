package view

import (
	"testing"

	"inventory-analytics-service/internal/model"
)

func TestProfitabilityMargins(t *testing.T) {
	rows := Profitability([]model.Product{
		{ID: 1, UnitCost: 60, SalePrice: 100, StockCurrent: 10, SalesCurrentMonth: 5},
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.UnitMargin != 40 {
		t.Errorf("unit margin = %f, want 40", row.UnitMargin)
	}
	if row.MarginPercent == nil || *row.MarginPercent != 40 {
		t.Errorf("margin percent = %v, want 40.00", row.MarginPercent)
	}
	if row.MonthlyProfit != 200 {
		t.Errorf("monthly profit = %f, want 200", row.MonthlyProfit)
	}
	if row.MonthsOfInventory == nil || *row.MonthsOfInventory != 2 {
		t.Errorf("months of inventory = %v, want 2", row.MonthsOfInventory)
	}
	if row.InventoryValue != 600 {
		t.Errorf("inventory value = %f, want 600", row.InventoryValue)
	}
}

func TestProfitabilityZeroPrice(t *testing.T) {
	rows := Profitability([]model.Product{
		{ID: 1, UnitCost: 10, SalePrice: 0, SalesCurrentMonth: 3},
	})
	row := rows[0]
	if row.MarginPercent != nil {
		t.Errorf("margin percent = %v, want nil when the price is zero", *row.MarginPercent)
	}
	if row.UnitMargin != -10 {
		t.Errorf("unit margin = %f, want -10", row.UnitMargin)
	}
}

func TestProfitabilityNoSales(t *testing.T) {
	rows := Profitability([]model.Product{
		{ID: 1, UnitCost: 10, SalePrice: 15, StockCurrent: 4, SalesCurrentMonth: 0},
	})
	row := rows[0]
	if row.MonthsOfInventory != nil {
		t.Errorf("months of inventory = %v, want nil without sales", *row.MonthsOfInventory)
	}
	if row.MonthlyProfit != 0 {
		t.Errorf("monthly profit = %f, want 0", row.MonthlyProfit)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.01},
		{2.675, 2.68},
		{33.333333, 33.33},
		{-1.005, -1.01},
		{0, 0},
	}
	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
