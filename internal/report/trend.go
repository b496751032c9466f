package report

import (
	"math"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/view"
)

// Stock-coverage flags for the projected demand
const (
	TrendRiskOfStockout = "RISK_OF_STOCKOUT"
	TrendTight          = "TIGHT"
	TrendSufficient     = "SUFFICIENT"
)

const tightCoverageFactor = 1.5

// TrendRow projects next-month demand from the month-over-month growth
type TrendRow struct {
	ProductID         uint    `json:"product_id"`
	Name              string  `json:"name"`
	MonthlySales      int     `json:"monthly_sales"`
	PriorMonthSales   int     `json:"prior_month_sales"`
	GrowthPercent     float64 `json:"growth_percent"`
	Projection        int     `json:"projection"`
	StockCurrent      int     `json:"stock_current"`
	SuggestedPurchase int     `json:"suggested_purchase"`
	Flag              string  `json:"flag"`
}

// DemandTrend computes growth percent against the prior month, a naive
// next-month projection, and flags products whose stock cannot cover
// the projection. Growth is zero when the prior month had no sales.
func DemandTrend(products []model.Product) []TrendRow {
	rows := make([]TrendRow, 0, len(products))
	for _, p := range products {
		var growth float64
		projection := p.SalesCurrentMonth
		if p.SalesPriorMonth > 0 {
			growth = float64(p.SalesCurrentMonth-p.SalesPriorMonth) / float64(p.SalesPriorMonth) * 100
			projection = int(math.Round(float64(p.SalesCurrentMonth) * (1 + growth/100)))
		}

		suggested := projection - p.StockCurrent
		if suggested < 0 {
			suggested = 0
		}

		flag := TrendSufficient
		switch {
		case float64(p.StockCurrent) < float64(projection):
			flag = TrendRiskOfStockout
		case float64(p.StockCurrent) < float64(projection)*tightCoverageFactor:
			flag = TrendTight
		}

		rows = append(rows, TrendRow{
			ProductID:         p.ID,
			Name:              p.Name,
			MonthlySales:      p.SalesCurrentMonth,
			PriorMonthSales:   p.SalesPriorMonth,
			GrowthPercent:     view.Round2(growth),
			Projection:        projection,
			StockCurrent:      p.StockCurrent,
			SuggestedPurchase: suggested,
			Flag:              flag,
		})
	}
	return rows
}
