// Package view implements the derived read projections over the
// inventory: stock criticality, profitability and top products. Each
// view is a pure function over fetched rows; FetchProducts is the
// shared query entry point.
package view

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"inventory-analytics-service/internal/model"
	"inventory-analytics-service/internal/stock"
)

// Filter narrows a view or report to a category, supplier or
// stock-status band. Zero values mean no filtering.
type Filter struct {
	CategoryID uint
	SupplierID uint
	Status     string
}

// FetchProducts loads active products with their category and supplier,
// applying the relational part of the filter. Status filtering happens
// after classification since the band is computed, not stored.
func FetchProducts(db *gorm.DB, f Filter) ([]model.Product, error) {
	query := db.Preload("Category").Preload("Supplier").Preload("Location").
		Where("is_active = ?", true)
	if f.CategoryID != 0 {
		query = query.Where("category_id = ?", f.CategoryID)
	}
	if f.SupplierID != 0 {
		query = query.Where("supplier_id = ?", f.SupplierID)
	}

	var products []model.Product
	if err := query.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ApplyStatus keeps only the products that classify into the given
// stock band. An empty status keeps everything. This runs after the
// fetch since the band is computed from the counters, not stored.
func ApplyStatus(products []model.Product, status string) []model.Product {
	if status == "" {
		return products
	}
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if stock.Classify(p.StockCurrent, p.StockMinimum, p.ReorderPoint) == status {
			out = append(out, p)
		}
	}
	return out
}

// Round2 rounds to two decimal places, the precision used for every
// monetary and percentage figure
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
