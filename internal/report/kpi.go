package report

import (
	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/stock"
	"inventory-analytics-service/internal/view"
)

// KPISummary is the executive snapshot over the whole inventory
type KPISummary struct {
	TotalProducts    int     `json:"total_products"`
	ProductsInStock  int     `json:"products_in_stock"`
	CriticalProducts int     `json:"critical_products"`
	CriticalPercent  float64 `json:"critical_percent"`
	InventoryValue   float64 `json:"inventory_value"`
	MonthlyRevenue   float64 `json:"monthly_revenue"`
	MonthlyCost      float64 `json:"monthly_cost"`
	MonthlyProfit    float64 `json:"monthly_profit"`
	// NetMarginPercent is nil when there is no revenue
	NetMarginPercent *float64 `json:"net_margin_percent"`
	// AverageMarginPercent is nil when there are no products with a price
	AverageMarginPercent *float64 `json:"average_margin_percent"`
	UnitsSold            int      `json:"units_sold"`
	WithoutMovement      int      `json:"without_movement"`
}

// KPIs computes the executive summary over the given products
func KPIs(products []model.Product) KPISummary {
	var s KPISummary
	var marginSum float64
	var priced int

	for _, p := range products {
		s.TotalProducts++
		if p.StockCurrent > 0 {
			s.ProductsInStock++
		}
		status := stock.Classify(p.StockCurrent, p.StockMinimum, p.ReorderPoint)
		if stock.IsCritical(status) {
			s.CriticalProducts++
		}
		s.InventoryValue += float64(p.StockCurrent) * p.UnitCost
		s.MonthlyRevenue += float64(p.SalesCurrentMonth) * p.SalePrice
		s.MonthlyCost += float64(p.SalesCurrentMonth) * p.UnitCost
		s.UnitsSold += p.SalesCurrentMonth
		if p.SalesCurrentMonth == 0 {
			s.WithoutMovement++
		}
		if p.SalePrice != 0 {
			marginSum += (p.SalePrice - p.UnitCost) / p.SalePrice * 100
			priced++
		}
	}

	s.MonthlyProfit = s.MonthlyRevenue - s.MonthlyCost
	if s.TotalProducts > 0 {
		s.CriticalPercent = view.Round2(float64(s.CriticalProducts) / float64(s.TotalProducts) * 100)
	}
	if s.MonthlyRevenue != 0 {
		net := view.Round2(s.MonthlyProfit / s.MonthlyRevenue * 100)
		s.NetMarginPercent = &net
	}
	if priced > 0 {
		avg := view.Round2(marginSum / float64(priced))
		s.AverageMarginPercent = &avg
	}

	s.InventoryValue = view.Round2(s.InventoryValue)
	s.MonthlyRevenue = view.Round2(s.MonthlyRevenue)
	s.MonthlyCost = view.Round2(s.MonthlyCost)
	s.MonthlyProfit = view.Round2(s.MonthlyProfit)
	return s
}
