package report

import (
	"sort"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/stock"
	"inventory-analytics-service/internal/view"
)

// SupplierPerformanceRow aggregates the inventory held per supplier
type SupplierPerformanceRow struct {
	SupplierID   uint    `json:"supplier_id"`
	Supplier     string  `json:"supplier"`
	ProductCount int     `json:"product_count"`
	StockValue   float64 `json:"stock_value"`
	Revenue      float64 `json:"revenue"`
	// AverageMarginPercent averages over priced products only; nil
	// when the supplier has none
	AverageMarginPercent *float64 `json:"average_margin_percent"`
	CriticalCount        int      `json:"critical_count"`
	CriticalPercent      float64  `json:"critical_percent"`
}

// SupplierPerformance aggregates product count, stock value, revenue,
// average margin and critical-stock share per supplier. Suppliers
// passed in with no matching products come back with zero counts and
// a nil average. Ordered by revenue descending.
func SupplierPerformance(suppliers []model.Supplier, products []model.Product) []SupplierPerformanceRow {
	byID := make(map[uint]*SupplierPerformanceRow, len(suppliers))
	rows := make([]SupplierPerformanceRow, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, SupplierPerformanceRow{SupplierID: s.ID, Supplier: s.Name})
	}
	for i := range rows {
		byID[rows[i].SupplierID] = &rows[i]
	}

	marginSums := make(map[uint]float64)
	pricedCounts := make(map[uint]int)
	for _, p := range products {
		row, ok := byID[p.SupplierID]
		if !ok {
			continue
		}
		row.ProductCount++
		row.StockValue += float64(p.StockCurrent) * p.UnitCost
		row.Revenue += float64(p.SalesCurrentMonth) * p.SalePrice
		if p.SalePrice != 0 {
			marginSums[p.SupplierID] += (p.SalePrice - p.UnitCost) / p.SalePrice * 100
			pricedCounts[p.SupplierID]++
		}
		status := stock.Classify(p.StockCurrent, p.StockMinimum, p.ReorderPoint)
		if stock.IsCritical(status) {
			row.CriticalCount++
		}
	}

	for i := range rows {
		row := &rows[i]
		row.StockValue = view.Round2(row.StockValue)
		row.Revenue = view.Round2(row.Revenue)
		if priced := pricedCounts[row.SupplierID]; priced > 0 {
			avg := view.Round2(marginSums[row.SupplierID] / float64(priced))
			row.AverageMarginPercent = &avg
		}
		if row.ProductCount > 0 {
			row.CriticalPercent = view.Round2(float64(row.CriticalCount) / float64(row.ProductCount) * 100)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Revenue > rows[j].Revenue
	})
	return rows
}
