package report

import (
	"sort"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/view"
)

// CategoryProfitabilityRow aggregates margin and revenue per category
type CategoryProfitabilityRow struct {
	CategoryID   uint   `json:"category_id"`
	Category     string `json:"category"`
	ProductCount int    `json:"product_count"`
	TotalStock   int    `json:"total_stock"`
	// AverageMarginPercent averages over priced products only; nil
	// when the category has none
	AverageMarginPercent *float64 `json:"average_margin_percent"`
	InventoryValue       float64  `json:"inventory_value"`
	MonthlyProfit        float64  `json:"monthly_profit"`
	MonthlyRevenue       float64  `json:"monthly_revenue"`
}

// CategoryProfitability aggregates stock, margin and revenue per
// category, ordered by monthly profit descending.
func CategoryProfitability(categories []model.Category, products []model.Product) []CategoryProfitabilityRow {
	rows := make([]CategoryProfitabilityRow, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, CategoryProfitabilityRow{CategoryID: c.ID, Category: c.Name})
	}
	byID := make(map[uint]*CategoryProfitabilityRow, len(rows))
	for i := range rows {
		byID[rows[i].CategoryID] = &rows[i]
	}

	marginSums := make(map[uint]float64)
	pricedCounts := make(map[uint]int)
	for _, p := range products {
		row, ok := byID[p.CategoryID]
		if !ok {
			continue
		}
		row.ProductCount++
		row.TotalStock += p.StockCurrent
		row.InventoryValue += float64(p.StockCurrent) * p.UnitCost
		row.MonthlyProfit += (p.SalePrice - p.UnitCost) * float64(p.SalesCurrentMonth)
		row.MonthlyRevenue += float64(p.SalesCurrentMonth) * p.SalePrice
		if p.SalePrice != 0 {
			marginSums[p.CategoryID] += (p.SalePrice - p.UnitCost) / p.SalePrice * 100
			pricedCounts[p.CategoryID]++
		}
	}

	for i := range rows {
		row := &rows[i]
		row.InventoryValue = view.Round2(row.InventoryValue)
		row.MonthlyProfit = view.Round2(row.MonthlyProfit)
		row.MonthlyRevenue = view.Round2(row.MonthlyRevenue)
		if priced := pricedCounts[row.CategoryID]; priced > 0 {
			avg := view.Round2(marginSums[row.CategoryID] / float64(priced))
			row.AverageMarginPercent = &avg
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MonthlyProfit > rows[j].MonthlyProfit
	})
	return rows
}
