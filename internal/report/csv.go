package report

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"
)

// Table is a report rendered as header plus string records, the shape
// used for CSV downloads
type Table struct {
	Header  []string
	Records [][]string
}

// WriteCSV writes the table in CSV form
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	for _, record := range t.Records {
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtInt(v int) string       { return strconv.Itoa(v) }
func fmtUint(v uint) string     { return strconv.FormatUint(uint64(v), 10) }
func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

// fmtFloatPtr renders undefined values as an empty cell
func fmtFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return fmtFloat(*v)
}

func fmtTimePtr(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}

// ABCTable renders the ABC classification for export
func ABCTable(rows []ABCRow) Table {
	t := Table{Header: []string{"product_id", "name", "category", "monthly_sales", "revenue", "cumulative_percent", "class"}}
	for _, r := range rows {
		t.Records = append(t.Records, []string{
			fmtUint(r.ProductID), r.Name, r.Category, fmtInt(r.MonthlySales),
			fmtFloat(r.Revenue), fmtFloat(r.CumulativePercent), r.Class,
		})
	}
	return t
}

// RotationTable renders the rotation analysis for export
func RotationTable(rows []RotationRow) Table {
	t := Table{Header: []string{"product_id", "name", "stock_current", "monthly_sales", "months_of_inventory", "annual_turnover", "class", "inventory_value"}}
	for _, r := range rows {
		t.Records = append(t.Records, []string{
			fmtUint(r.ProductID), r.Name, fmtInt(r.StockCurrent), fmtInt(r.MonthlySales),
			fmtFloatPtr(r.MonthsOfInventory), fmtFloatPtr(r.AnnualTurnover), r.Class, fmtFloat(r.InventoryValue),
		})
	}
	return t
}

// SlowMoverTable renders the slow-movement candidates for export
func SlowMoverTable(rows []SlowMoverRow) Table {
	t := Table{Header: []string{"product_id", "name", "category", "stock_current", "monthly_sales", "last_sale_at", "immobilized_capital", "liquidation_price"}}
	for _, r := range rows {
		t.Records = append(t.Records, []string{
			fmtUint(r.ProductID), r.Name, r.Category, fmtInt(r.StockCurrent), fmtInt(r.MonthlySales),
			fmtTimePtr(r.LastSaleAt), fmtFloat(r.ImmobilizedCapital), fmtFloat(r.LiquidationPrice),
		})
	}
	return t
}

// TrendTable renders the demand trend for export
func TrendTable(rows []TrendRow) Table {
	t := Table{Header: []string{"product_id", "name", "monthly_sales", "prior_month_sales", "growth_percent", "projection", "stock_current", "suggested_purchase", "flag"}}
	for _, r := range rows {
		t.Records = append(t.Records, []string{
			fmtUint(r.ProductID), r.Name, fmtInt(r.MonthlySales), fmtInt(r.PriorMonthSales),
			fmtFloat(r.GrowthPercent), fmtInt(r.Projection), fmtInt(r.StockCurrent),
			fmtInt(r.SuggestedPurchase), r.Flag,
		})
	}
	return t
}

// ReorderTable renders the reorder suggestions for export
func ReorderTable(summary ReorderSummary) Table {
	t := Table{Header: []string{"product_id", "name", "supplier", "stock_current", "stock_minimum", "reorder_point", "suggested_qty", "unit_cost", "investment"}}
	for _, r := range summary.Rows {
		t.Records = append(t.Records, []string{
			fmtUint(r.ProductID), r.Name, r.Supplier, fmtInt(r.StockCurrent), fmtInt(r.StockMinimum),
			fmtInt(r.ReorderPoint), fmtInt(r.SuggestedQty), fmtFloat(r.UnitCost), fmtFloat(r.Investment),
		})
	}
	return t
}

// SupplierTable renders the supplier performance for export
func SupplierTable(rows []SupplierPerformanceRow) Table {
	t := Table{Header: []string{"supplier_id", "supplier", "product_count", "stock_value", "revenue", "average_margin_percent", "critical_count", "critical_percent"}}
	for _, r := range rows {
		t.Records = append(t.Records, []string{
			fmtUint(r.SupplierID), r.Supplier, fmtInt(r.ProductCount), fmtFloat(r.StockValue),
			fmtFloat(r.Revenue), fmtFloatPtr(r.AverageMarginPercent), fmtInt(r.CriticalCount), fmtFloat(r.CriticalPercent),
		})
	}
	return t
}

// CategoryTable renders the category profitability for export
func CategoryTable(rows []CategoryProfitabilityRow) Table {
	t := Table{Header: []string{"category_id", "category", "product_count", "total_stock", "average_margin_percent", "inventory_value", "monthly_profit", "monthly_revenue"}}
	for _, r := range rows {
		t.Records = append(t.Records, []string{
			fmtUint(r.CategoryID), r.Category, fmtInt(r.ProductCount), fmtInt(r.TotalStock),
			fmtFloatPtr(r.AverageMarginPercent), fmtFloat(r.InventoryValue), fmtFloat(r.MonthlyProfit), fmtFloat(r.MonthlyRevenue),
		})
	}
	return t
}
