package report

import (
	"sort"
	"time"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/view"
)

// Slow-mover thresholds
const (
	slowMoverMaxSales   = 2
	slowMoverStaleDays  = 60
	slowMoverMinStock   = 5
	liquidationFraction = 0.70
)

// SlowMoverRow is a liquidation candidate with its immobilized capital
type SlowMoverRow struct {
	ProductID          uint       `json:"product_id"`
	Name               string     `json:"name"`
	Category           string     `json:"category"`
	StockCurrent       int        `json:"stock_current"`
	MonthlySales       int        `json:"monthly_sales"`
	QuarterSales       int        `json:"quarter_sales"`
	LastSaleAt         *time.Time `json:"last_sale_at"`
	ImmobilizedCapital float64    `json:"immobilized_capital"`
	SalePrice          float64    `json:"sale_price"`
	LiquidationPrice   float64    `json:"liquidation_price"`
}

// SlowMovers selects products with little or stale movement but
// meaningful stock, sorted by immobilized capital descending, and
// suggests a liquidation price at 70% of the current sale price.
// The now parameter anchors the 60-day staleness window.
func SlowMovers(products []model.Product, now time.Time) []SlowMoverRow {
	staleBefore := now.AddDate(0, 0, -slowMoverStaleDays)

	rows := make([]SlowMoverRow, 0)
	for _, p := range products {
		if p.StockCurrent <= slowMoverMinStock {
			continue
		}
		stale := p.LastSaleAt != nil && p.LastSaleAt.Before(staleBefore)
		if p.SalesCurrentMonth > slowMoverMaxSales && !stale {
			continue
		}
		rows = append(rows, SlowMoverRow{
			ProductID:          p.ID,
			Name:               p.Name,
			Category:           p.Category.Name,
			StockCurrent:       p.StockCurrent,
			MonthlySales:       p.SalesCurrentMonth,
			QuarterSales:       p.SalesQuarter,
			LastSaleAt:         p.LastSaleAt,
			ImmobilizedCapital: view.Round2(float64(p.StockCurrent) * p.UnitCost),
			SalePrice:          view.Round2(p.SalePrice),
			LiquidationPrice:   view.Round2(p.SalePrice * liquidationFraction),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ImmobilizedCapital > rows[j].ImmobilizedCapital
	})
	return rows
}
