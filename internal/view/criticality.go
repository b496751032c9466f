package view

import (
	"sort"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/stock"
)

// CriticalityRow classifies one product into a stock-status band
type CriticalityRow struct {
	ProductID    uint   `json:"product_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Supplier     string `json:"supplier"`
	StockCurrent int    `json:"stock_current"`
	StockMinimum int    `json:"stock_minimum"`
	ReorderPoint int    `json:"reorder_point"`
	MonthlySales int    `json:"monthly_sales"`
	Status       string `json:"status"`
}

// Criticality classifies every product and orders the result by
// ascending stock, then descending current-month sales, so the most
// urgent and highest-velocity shortages surface first.
func Criticality(products []model.Product, statusFilter string) []CriticalityRow {
	rows := make([]CriticalityRow, 0, len(products))
	for _, p := range products {
		status := stock.Classify(p.StockCurrent, p.StockMinimum, p.ReorderPoint)
		if statusFilter != "" && status != statusFilter {
			continue
		}
		rows = append(rows, CriticalityRow{
			ProductID:    p.ID,
			Name:         p.Name,
			Category:     p.Category.Name,
			Supplier:     p.Supplier.Name,
			StockCurrent: p.StockCurrent,
			StockMinimum: p.StockMinimum,
			ReorderPoint: p.ReorderPoint,
			MonthlySales: p.SalesCurrentMonth,
			Status:       status,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].StockCurrent != rows[j].StockCurrent {
			return rows[i].StockCurrent < rows[j].StockCurrent
		}
		return rows[i].MonthlySales > rows[j].MonthlySales
	})
	return rows
}
