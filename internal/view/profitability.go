package view

import (
	"inventory-analytics-service/internal/model"
)

// ProfitabilityRow carries the per-product margin figures
type ProfitabilityRow struct {
	ProductID  uint    `json:"product_id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	UnitCost   float64 `json:"unit_cost"`
	SalePrice  float64 `json:"sale_price"`
	UnitMargin float64 `json:"unit_margin"`
	// MarginPercent is nil when the sale price is zero
	MarginPercent *float64 `json:"margin_percent"`
	MonthlySales  int      `json:"monthly_sales"`
	MonthlyProfit float64  `json:"monthly_profit"`
	// MonthsOfInventory is nil when there are no monthly sales
	MonthsOfInventory *float64 `json:"months_of_inventory"`
	InventoryValue    float64  `json:"inventory_value"`
}

// Profitability computes unit margin, margin percent, monthly profit
// and months-of-inventory for every product. Ratios with a zero
// denominator come back nil rather than a fault.
func Profitability(products []model.Product) []ProfitabilityRow {
	rows := make([]ProfitabilityRow, 0, len(products))
	for _, p := range products {
		margin := p.SalePrice - p.UnitCost
		row := ProfitabilityRow{
			ProductID:      p.ID,
			Name:           p.Name,
			Category:       p.Category.Name,
			UnitCost:       Round2(p.UnitCost),
			SalePrice:      Round2(p.SalePrice),
			UnitMargin:     Round2(margin),
			MonthlySales:   p.SalesCurrentMonth,
			MonthlyProfit:  Round2(margin * float64(p.SalesCurrentMonth)),
			InventoryValue: Round2(float64(p.StockCurrent) * p.UnitCost),
		}
		if p.SalePrice != 0 {
			pct := Round2(margin / p.SalePrice * 100)
			row.MarginPercent = &pct
		}
		if p.SalesCurrentMonth > 0 {
			months := Round2(float64(p.StockCurrent) / float64(p.SalesCurrentMonth))
			row.MonthsOfInventory = &months
		}
		rows = append(rows, row)
	}
	return rows
}
