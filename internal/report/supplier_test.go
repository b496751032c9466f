package report

import (
	"testing"

	"inventory-analytics-service/internal/model"
)

func TestSupplierPerformanceAggregation(t *testing.T) {
	suppliers := []model.Supplier{
		{ID: 1, Name: "Distribuidora Norte"},
		{ID: 2, Name: "Mayorista Central"},
	}
	products := []model.Product{
		// margin 50%, revenue 200, critical (stock at minimum)
		{ID: 10, SupplierID: 1, StockCurrent: 5, StockMinimum: 5, ReorderPoint: 10,
			UnitCost: 5, SalePrice: 10, SalesCurrentMonth: 20},
		// margin 25%, revenue 800, healthy
		{ID: 11, SupplierID: 1, StockCurrent: 40, StockMinimum: 5, ReorderPoint: 10,
			UnitCost: 30, SalePrice: 40, SalesCurrentMonth: 20},
		// other supplier, revenue 30
		{ID: 12, SupplierID: 2, StockCurrent: 3, StockMinimum: 1, ReorderPoint: 2,
			UnitCost: 1, SalePrice: 3, SalesCurrentMonth: 10},
	}

	rows := SupplierPerformance(suppliers, products)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	// Ordered by revenue descending: supplier 1 (1000) first
	first := rows[0]
	if first.SupplierID != 1 {
		t.Fatalf("row 0 supplier = %d, want 1", first.SupplierID)
	}
	if first.ProductCount != 2 {
		t.Errorf("product count = %d, want 2", first.ProductCount)
	}
	if first.Revenue != 1000 {
		t.Errorf("revenue = %f, want 1000", first.Revenue)
	}
	if first.StockValue != 1225 {
		t.Errorf("stock value = %f, want 1225 (5*5 + 40*30)", first.StockValue)
	}
	if first.AverageMarginPercent == nil || *first.AverageMarginPercent != 37.5 {
		t.Errorf("average margin = %v, want 37.5", first.AverageMarginPercent)
	}
	if first.CriticalCount != 1 {
		t.Errorf("critical count = %d, want 1", first.CriticalCount)
	}
	if first.CriticalPercent != 50 {
		t.Errorf("critical percent = %f, want 50", first.CriticalPercent)
	}
}

func TestSupplierPerformanceEmptySupplier(t *testing.T) {
	suppliers := []model.Supplier{{ID: 9, Name: "Proveedor Nuevo"}}

	rows := SupplierPerformance(suppliers, nil)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.ProductCount != 0 || row.Revenue != 0 || row.StockValue != 0 {
		t.Errorf("empty supplier should aggregate to zeros, got %+v", row)
	}
	if row.AverageMarginPercent != nil {
		t.Errorf("average margin = %v, want nil for a supplier with no products",
			*row.AverageMarginPercent)
	}
}

func TestSupplierPerformanceUnpricedProducts(t *testing.T) {
	suppliers := []model.Supplier{
		{ID: 1, Name: "Distribuidora Norte"},
		{ID: 2, Name: "Mayorista Central"},
	}
	products := []model.Product{
		// margin 50%
		{ID: 1, SupplierID: 1, StockCurrent: 10, StockMinimum: 1, ReorderPoint: 2,
			UnitCost: 5, SalePrice: 10, SalesCurrentMonth: 5},
		// no sale price yet, must not drag the average down
		{ID: 2, SupplierID: 1, StockCurrent: 10, StockMinimum: 1, ReorderPoint: 2,
			UnitCost: 8, SalePrice: 0},
		// supplier with only unpriced products
		{ID: 3, SupplierID: 2, StockCurrent: 10, StockMinimum: 1, ReorderPoint: 2,
			UnitCost: 3, SalePrice: 0},
	}

	rows := SupplierPerformance(suppliers, products)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	first := rows[0]
	if first.SupplierID != 1 {
		t.Fatalf("row 0 supplier = %d, want 1", first.SupplierID)
	}
	if first.ProductCount != 2 {
		t.Errorf("product count = %d, want 2", first.ProductCount)
	}
	if first.AverageMarginPercent == nil || *first.AverageMarginPercent != 50 {
		t.Errorf("average margin = %v, want 50 over the priced product only",
			first.AverageMarginPercent)
	}
	second := rows[1]
	if second.ProductCount != 1 {
		t.Errorf("row 1 product count = %d, want 1", second.ProductCount)
	}
	if second.AverageMarginPercent != nil {
		t.Errorf("average margin = %v, want nil when no product is priced",
			*second.AverageMarginPercent)
	}
}

func TestCategoryProfitabilityAggregation(t *testing.T) {
	categories := []model.Category{
		{ID: 1, Name: "Lácteos"},
		{ID: 2, Name: "Bebidas"},
	}
	products := []model.Product{
		// profit (10-6)*30 = 120
		{ID: 1, CategoryID: 1, StockCurrent: 10, UnitCost: 6, SalePrice: 10, SalesCurrentMonth: 30},
		// profit (5-4)*10 = 10
		{ID: 2, CategoryID: 2, StockCurrent: 20, UnitCost: 4, SalePrice: 5, SalesCurrentMonth: 10},
	}

	rows := CategoryProfitability(categories, products)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].CategoryID != 1 {
		t.Errorf("row 0 category = %d, want the most profitable first", rows[0].CategoryID)
	}
	if rows[0].MonthlyProfit != 120 {
		t.Errorf("monthly profit = %f, want 120", rows[0].MonthlyProfit)
	}
	if rows[0].MonthlyRevenue != 300 {
		t.Errorf("monthly revenue = %f, want 300", rows[0].MonthlyRevenue)
	}
	if rows[0].AverageMarginPercent == nil || *rows[0].AverageMarginPercent != 40 {
		t.Errorf("average margin = %v, want 40", rows[0].AverageMarginPercent)
	}
	if rows[1].TotalStock != 20 {
		t.Errorf("row 1 total stock = %d, want 20", rows[1].TotalStock)
	}
}

func TestCategoryProfitabilityUnpricedProducts(t *testing.T) {
	categories := []model.Category{{ID: 1, Name: "Limpieza"}}
	products := []model.Product{
		// margin 20%
		{ID: 1, CategoryID: 1, StockCurrent: 5, UnitCost: 8, SalePrice: 10, SalesCurrentMonth: 4},
		{ID: 2, CategoryID: 1, StockCurrent: 5, UnitCost: 8, SalePrice: 0},
	}

	rows := CategoryProfitability(categories, products)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].ProductCount != 2 {
		t.Errorf("product count = %d, want 2", rows[0].ProductCount)
	}
	if rows[0].AverageMarginPercent == nil || *rows[0].AverageMarginPercent != 20 {
		t.Errorf("average margin = %v, want 20 over the priced product only",
			rows[0].AverageMarginPercent)
	}
}

func TestKPISummary(t *testing.T) {
	products := []model.Product{
		// critical, margin 40%
		{ID: 1, StockCurrent: 0, StockMinimum: 5, ReorderPoint: 10,
			UnitCost: 60, SalePrice: 100, SalesCurrentMonth: 2},
		// healthy, margin 50%
		{ID: 2, StockCurrent: 50, StockMinimum: 5, ReorderPoint: 10,
			UnitCost: 10, SalePrice: 20, SalesCurrentMonth: 0},
	}

	s := KPIs(products)
	if s.TotalProducts != 2 {
		t.Errorf("total products = %d, want 2", s.TotalProducts)
	}
	if s.ProductsInStock != 1 {
		t.Errorf("products in stock = %d, want 1", s.ProductsInStock)
	}
	if s.CriticalProducts != 1 {
		t.Errorf("critical products = %d, want 1", s.CriticalProducts)
	}
	if s.CriticalPercent != 50 {
		t.Errorf("critical percent = %f, want 50", s.CriticalPercent)
	}
	if s.InventoryValue != 500 {
		t.Errorf("inventory value = %f, want 500", s.InventoryValue)
	}
	if s.MonthlyRevenue != 200 {
		t.Errorf("monthly revenue = %f, want 200", s.MonthlyRevenue)
	}
	if s.MonthlyProfit != 80 {
		t.Errorf("monthly profit = %f, want 80", s.MonthlyProfit)
	}
	if s.NetMarginPercent == nil || *s.NetMarginPercent != 40 {
		t.Errorf("net margin = %v, want 40", s.NetMarginPercent)
	}
	if s.AverageMarginPercent == nil || *s.AverageMarginPercent != 45 {
		t.Errorf("average margin = %v, want 45", s.AverageMarginPercent)
	}
	if s.WithoutMovement != 1 {
		t.Errorf("without movement = %d, want 1", s.WithoutMovement)
	}
}

func TestKPISummaryEmptyInventory(t *testing.T) {
	s := KPIs(nil)
	if s.TotalProducts != 0 || s.CriticalPercent != 0 {
		t.Errorf("empty inventory should give zero counts, got %+v", s)
	}
	if s.NetMarginPercent != nil {
		t.Error("net margin should be nil without revenue")
	}
	if s.AverageMarginPercent != nil {
		t.Error("average margin should be nil without priced products")
	}
}
