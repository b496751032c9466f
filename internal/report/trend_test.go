package report

import (
	"testing"

	"inventory-analytics-service/internal/model"
)

func TestDemandTrendGrowthAndProjection(t *testing.T) {
	rows := DemandTrend([]model.Product{
		{ID: 1, SalesCurrentMonth: 10, SalesPriorMonth: 5, StockCurrent: 50},
	})
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.GrowthPercent != 100 {
		t.Errorf("growth = %f, want 100", row.GrowthPercent)
	}
	if row.Projection != 20 {
		t.Errorf("projection = %d, want 20", row.Projection)
	}
	if row.SuggestedPurchase != 0 {
		t.Errorf("suggested purchase = %d, want 0 with ample stock", row.SuggestedPurchase)
	}
	if row.Flag != TrendSufficient {
		t.Errorf("flag = %s, want %s", row.Flag, TrendSufficient)
	}
}

func TestDemandTrendZeroPriorMonth(t *testing.T) {
	rows := DemandTrend([]model.Product{
		{ID: 1, SalesCurrentMonth: 8, SalesPriorMonth: 0, StockCurrent: 100},
	})
	row := rows[0]
	if row.GrowthPercent != 0 {
		t.Errorf("growth = %f, want 0 when the prior month had no sales", row.GrowthPercent)
	}
	if row.Projection != 8 {
		t.Errorf("projection = %d, want current sales carried forward", row.Projection)
	}
}

func TestDemandTrendDecline(t *testing.T) {
	rows := DemandTrend([]model.Product{
		{ID: 1, SalesCurrentMonth: 5, SalesPriorMonth: 10, StockCurrent: 100},
	})
	row := rows[0]
	if row.GrowthPercent != -50 {
		t.Errorf("growth = %f, want -50", row.GrowthPercent)
	}
	// Projection shrinks with the trend: 5 * 0.5 rounds to 3
	if row.Projection != 3 {
		t.Errorf("projection = %d, want 3", row.Projection)
	}
}

func TestDemandTrendFlags(t *testing.T) {
	tests := []struct {
		name  string
		stock int
		want  string
	}{
		{"below projection", 15, TrendRiskOfStockout},
		{"equal to projection", 20, TrendTight},
		{"inside tight window", 29, TrendTight},
		{"at sufficient boundary", 30, TrendSufficient},
		{"well covered", 60, TrendSufficient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// growth 100%, projection 20
			rows := DemandTrend([]model.Product{
				{ID: 1, SalesCurrentMonth: 10, SalesPriorMonth: 5, StockCurrent: tt.stock},
			})
			if rows[0].Flag != tt.want {
				t.Errorf("stock %d: flag = %s, want %s", tt.stock, rows[0].Flag, tt.want)
			}
		})
	}
}

func TestDemandTrendSuggestedPurchase(t *testing.T) {
	rows := DemandTrend([]model.Product{
		{ID: 1, SalesCurrentMonth: 10, SalesPriorMonth: 5, StockCurrent: 12},
	})
	// projection 20, stock 12
	if rows[0].SuggestedPurchase != 8 {
		t.Errorf("suggested purchase = %d, want 8", rows[0].SuggestedPurchase)
	}
}
