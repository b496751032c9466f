// Package report implements the fixed catalog of inventory
// aggregations: ABC classification, rotation, slow movers, demand
// trend, reorder suggestions, supplier performance, category
// profitability and the KPI summary. Every report is a pure function
// of the rows it is handed — idempotent, no side effects.
package report

import (
	"sort"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/view"
)

// ABC cumulative-revenue cut points
const (
	abcCutA = 80.0
	abcCutB = 95.0
)

// ABCRow classifies one product by cumulative revenue contribution
type ABCRow struct {
	ProductID         uint    `json:"product_id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	MonthlySales      int     `json:"monthly_sales"`
	Revenue           float64 `json:"revenue"`
	CumulativePercent float64 `json:"cumulative_percent"`
	Class             string  `json:"class"`
}

// ABC ranks products with positive monthly sales by descending monthly
// revenue and labels them A while the cumulative revenue share stays
// within 80%, B within 95%, and C beyond.
func ABC(products []model.Product) []ABCRow {
	type ranked struct {
		row     ABCRow
		revenue float64
	}
	entries := make([]ranked, 0, len(products))
	var total float64
	for _, p := range products {
		if p.SalesCurrentMonth <= 0 {
			continue
		}
		revenue := float64(p.SalesCurrentMonth) * p.SalePrice
		total += revenue
		entries = append(entries, ranked{
			revenue: revenue,
			row: ABCRow{
				ProductID:    p.ID,
				Name:         p.Name,
				Category:     p.Category.Name,
				MonthlySales: p.SalesCurrentMonth,
				Revenue:      view.Round2(revenue),
			},
		})
	}
	rows := make([]ABCRow, 0, len(entries))
	if total == 0 {
		return rows
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].revenue > entries[j].revenue
	})

	var cumulative float64
	for _, e := range entries {
		rows = append(rows, e.row)
		i := len(rows) - 1
		cumulative += e.revenue
		pct := view.Round2(cumulative / total * 100)
		rows[i].CumulativePercent = pct
		switch {
		case pct <= abcCutA:
			rows[i].Class = "A"
		case pct <= abcCutB:
			rows[i].Class = "B"
		default:
			rows[i].Class = "C"
		}
	}
	return rows
}
