package model

import (
	"fmt"
	"time"
)

// Product represents the inventory master data
type Product struct {
	ID          uint   `json:"id" gorm:"primarykey"`
	Name        string `json:"name" gorm:"type:varchar(255);not null"`
	Description string `json:"description" gorm:"type:text"`
	Brand       string `json:"brand" gorm:"type:varchar(100)"`
	Unit        string `json:"unit" gorm:"type:varchar(20);default:'unidad'"`

	CategoryID uint  `json:"category_id" gorm:"index;not null"`
	SupplierID uint  `json:"supplier_id" gorm:"index;not null"`
	LocationID *uint `json:"location_id,omitempty" gorm:"index"`

	StockCurrent int `json:"stock_current" gorm:"not null;default:0"`
	StockMinimum int `json:"stock_minimum" gorm:"not null;default:0"`
	ReorderPoint int `json:"reorder_point" gorm:"not null;default:0"`
	StockMaximum int `json:"stock_maximum" gorm:"not null;default:0"`

	UnitCost  float64 `json:"unit_cost" gorm:"type:decimal(12,2);not null"`
	SalePrice float64 `json:"sale_price" gorm:"type:decimal(12,2);not null"`

	SalesCurrentMonth int `json:"sales_current_month" gorm:"default:0"`
	SalesPriorMonth   int `json:"sales_prior_month" gorm:"default:0"`
	SalesQuarter      int `json:"sales_quarter" gorm:"default:0"`
	SalesYear         int `json:"sales_year" gorm:"default:0"`

	LastPurchaseAt *time.Time `json:"last_purchase_at,omitempty"`
	LastSaleAt     *time.Time `json:"last_sale_at,omitempty"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Supplier Supplier  `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

// Validate checks the stock and pricing invariants before a write
func (p *Product) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Reason: "name is required"}
	}
	if p.StockCurrent < 0 {
		return &ValidationError{Field: "stock_current", Reason: "stock cannot be negative"}
	}
	if p.StockMinimum < 0 {
		return &ValidationError{Field: "stock_minimum", Reason: "minimum stock cannot be negative"}
	}
	if p.StockMinimum > p.ReorderPoint {
		return &ValidationError{
			Field:  "reorder_point",
			Reason: fmt.Sprintf("reorder point (%d) must be at least the minimum stock (%d)", p.ReorderPoint, p.StockMinimum),
		}
	}
	if p.ReorderPoint > p.StockMaximum {
		return &ValidationError{
			Field:  "stock_maximum",
			Reason: fmt.Sprintf("maximum stock (%d) must be at least the reorder point (%d)", p.StockMaximum, p.ReorderPoint),
		}
	}
	if p.UnitCost < 0 {
		return &ValidationError{Field: "unit_cost", Reason: "unit cost cannot be negative"}
	}
	if p.SalePrice < 0 {
		return &ValidationError{Field: "sale_price", Reason: "sale price cannot be negative"}
	}
	return nil
}
