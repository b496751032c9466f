package report

import (
	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/view"
)

// Rotation classification bands
const (
	RotationExcellent  = "EXCELLENT"
	RotationGood       = "GOOD"
	RotationFair       = "FAIR"
	RotationSlow       = "SLOW"
	RotationNoMovement = "NO_MOVEMENT"
)

// RotationRow describes how fast a product's inventory turns over
type RotationRow struct {
	ProductID    uint   `json:"product_id"`
	Name         string `json:"name"`
	StockCurrent int    `json:"stock_current"`
	MonthlySales int    `json:"monthly_sales"`
	// MonthsOfInventory is nil when there are no monthly sales
	MonthsOfInventory *float64 `json:"months_of_inventory"`
	// AnnualTurnover is nil when months-of-inventory is nil or zero
	AnnualTurnover *float64 `json:"annual_turnover"`
	Class          string   `json:"class"`
	InventoryValue float64  `json:"inventory_value"`
}

// Rotation computes months-of-inventory and annual turnover per
// product and classifies the turnover into contiguous bands. Division
// by zero resolves to nil, never to an error or infinity.
func Rotation(products []model.Product) []RotationRow {
	rows := make([]RotationRow, 0, len(products))
	for _, p := range products {
		row := RotationRow{
			ProductID:      p.ID,
			Name:           p.Name,
			StockCurrent:   p.StockCurrent,
			MonthlySales:   p.SalesCurrentMonth,
			InventoryValue: view.Round2(float64(p.StockCurrent) * p.UnitCost),
		}
		if p.SalesCurrentMonth > 0 {
			months := float64(p.StockCurrent) / float64(p.SalesCurrentMonth)
			rounded := view.Round2(months)
			row.MonthsOfInventory = &rounded
			if months > 0 {
				turnover := view.Round2(12 / months)
				row.AnnualTurnover = &turnover
			}
		}
		row.Class = ClassifyTurnover(row.AnnualTurnover)
		rows = append(rows, row)
	}
	return rows
}

// ClassifyTurnover maps an annual turnover onto the rotation bands.
// The bands are contiguous and exhaustive over turnover >= 0 plus the
// undefined case.
func ClassifyTurnover(turnover *float64) string {
	if turnover == nil || *turnover == 0 {
		return RotationNoMovement
	}
	switch t := *turnover; {
	case t >= 12:
		return RotationExcellent
	case t >= 6:
		return RotationGood
	case t >= 3:
		return RotationFair
	default:
		return RotationSlow
	}
}
