package view

import (
	"sort"

	"inventory-analytics-service/internal/model"
)

// TopProductRow ranks one product by units sold and by profit
type TopProductRow struct {
	ProductID     uint    `json:"product_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	MonthlySales  int     `json:"monthly_sales"`
	MonthlyProfit float64 `json:"monthly_profit"`
	SalesRank     int     `json:"sales_rank"`
	ProfitRank    int     `json:"profit_rank"`
}

// TopProducts dense-ranks products with positive monthly sales, once
// by units sold and once by monthly profit. The returned slice is
// ordered by sales rank; limit <= 0 means no limit.
func TopProducts(products []model.Product, limit int) []TopProductRow {
	rows := make([]TopProductRow, 0, len(products))
	for _, p := range products {
		if p.SalesCurrentMonth <= 0 {
			continue
		}
		rows = append(rows, TopProductRow{
			ProductID:     p.ID,
			Name:          p.Name,
			Category:      p.Category.Name,
			MonthlySales:  p.SalesCurrentMonth,
			MonthlyProfit: Round2((p.SalePrice - p.UnitCost) * float64(p.SalesCurrentMonth)),
		})
	}

	// Profit ranks first, then re-sort by sales for the final order
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MonthlyProfit > rows[j].MonthlyProfit
	})
	denseRank(rows, func(r *TopProductRow) float64 { return r.MonthlyProfit },
		func(r *TopProductRow, rank int) { r.ProfitRank = rank })

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MonthlySales > rows[j].MonthlySales
	})
	denseRank(rows, func(r *TopProductRow) float64 { return float64(r.MonthlySales) },
		func(r *TopProductRow, rank int) { r.SalesRank = rank })

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// denseRank assigns 1,1,2,... style ranks over rows already sorted
// descending by the keyed value
func denseRank(rows []TopProductRow, key func(*TopProductRow) float64, set func(*TopProductRow, int)) {
	rank := 0
	var prev float64
	for i := range rows {
		v := key(&rows[i])
		if rank == 0 || v != prev {
			rank++
			prev = v
		}
		set(&rows[i], rank)
	}
}
