package view

import (
	"testing"

	"inventory-analytics-service/internal/model"
)

func TestTopProductsDenseRanks(t *testing.T) {
	products := []model.Product{
		{ID: 1, SalesCurrentMonth: 30, UnitCost: 5, SalePrice: 10}, // profit 150
		{ID: 2, SalesCurrentMonth: 30, UnitCost: 2, SalePrice: 12}, // profit 300
		{ID: 3, SalesCurrentMonth: 10, UnitCost: 1, SalePrice: 31}, // profit 300
		{ID: 4, SalesCurrentMonth: 5, UnitCost: 9, SalePrice: 10},  // profit 5
	}

	rows := TopProducts(products, 0)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}

	byID := make(map[uint]TopProductRow, len(rows))
	for _, row := range rows {
		byID[row.ProductID] = row
	}

	// Sales: 30, 30, 10, 5 gives dense ranks 1, 1, 2, 3
	if byID[1].SalesRank != 1 || byID[2].SalesRank != 1 {
		t.Errorf("tied sellers should share rank 1, got %d and %d",
			byID[1].SalesRank, byID[2].SalesRank)
	}
	if byID[3].SalesRank != 2 {
		t.Errorf("product 3 sales rank = %d, want 2 (dense)", byID[3].SalesRank)
	}
	if byID[4].SalesRank != 3 {
		t.Errorf("product 4 sales rank = %d, want 3", byID[4].SalesRank)
	}

	// Profit: 300, 300, 150, 5 gives dense ranks 1, 1, 2, 3
	if byID[2].ProfitRank != 1 || byID[3].ProfitRank != 1 {
		t.Errorf("tied profits should share rank 1, got %d and %d",
			byID[2].ProfitRank, byID[3].ProfitRank)
	}
	if byID[1].ProfitRank != 2 {
		t.Errorf("product 1 profit rank = %d, want 2", byID[1].ProfitRank)
	}
}

func TestTopProductsLimitAndOrder(t *testing.T) {
	products := []model.Product{
		{ID: 1, SalesCurrentMonth: 5, SalePrice: 10},
		{ID: 2, SalesCurrentMonth: 50, SalePrice: 10},
		{ID: 3, SalesCurrentMonth: 20, SalePrice: 10},
	}

	rows := TopProducts(products, 2)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ProductID != 2 || rows[1].ProductID != 3 {
		t.Errorf("order = %d, %d; want best sellers 2, 3", rows[0].ProductID, rows[1].ProductID)
	}
}

func TestTopProductsSkipsZeroSales(t *testing.T) {
	rows := TopProducts([]model.Product{
		{ID: 1, SalesCurrentMonth: 0, SalePrice: 10},
	}, 0)
	if len(rows) != 0 {
		t.Errorf("products without sales should be excluded, got %d rows", len(rows))
	}
}
