package report

import (
	"sort"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/view"
)

// ReorderRow is a replenishment suggestion for a product at or below
// its minimum stock
type ReorderRow struct {
	ProductID    uint    `json:"product_id"`
	Name         string  `json:"name"`
	Supplier     string  `json:"supplier"`
	SupplierID   uint    `json:"supplier_id"`
	StockCurrent int     `json:"stock_current"`
	StockMinimum int     `json:"stock_minimum"`
	ReorderPoint int     `json:"reorder_point"`
	SuggestedQty int     `json:"suggested_qty"`
	UnitCost     float64 `json:"unit_cost"`
	Investment   float64 `json:"investment"`
}

// ReorderSummary bundles the suggestions with the total required
// investment
type ReorderSummary struct {
	Rows            []ReorderRow `json:"rows"`
	TotalInvestment float64      `json:"total_investment"`
}

// ReorderSuggestions proposes buying back up to the reorder point for
// every product at or below its minimum, sorted by required investment
// descending.
func ReorderSuggestions(products []model.Product) ReorderSummary {
	rows := make([]ReorderRow, 0)
	var total float64
	for _, p := range products {
		if p.StockCurrent > p.StockMinimum {
			continue
		}
		qty := p.ReorderPoint - p.StockCurrent
		if qty <= 0 {
			continue
		}
		investment := float64(qty) * p.UnitCost
		total += investment
		rows = append(rows, ReorderRow{
			ProductID:    p.ID,
			Name:         p.Name,
			Supplier:     p.Supplier.Name,
			SupplierID:   p.SupplierID,
			StockCurrent: p.StockCurrent,
			StockMinimum: p.StockMinimum,
			ReorderPoint: p.ReorderPoint,
			SuggestedQty: qty,
			UnitCost:     view.Round2(p.UnitCost),
			Investment:   view.Round2(investment),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Investment > rows[j].Investment
	})
	return ReorderSummary{Rows: rows, TotalInvestment: view.Round2(total)}
}
