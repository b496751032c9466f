package model

import "time"

// Purchase order states
const (
	OrderStatePending  = "PENDIENTE"
	OrderStatePartial  = "PARCIAL"
	OrderStateReceived = "RECIBIDA"
	OrderStateCanceled = "CANCELADA"
)

// PurchaseOrder is a supplier order header.
// Terminal when fully received or canceled.
type PurchaseOrder struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	SupplierID uint       `json:"supplier_id" gorm:"index;not null"`
	Status     string     `json:"status" gorm:"type:varchar(10);not null;default:'PENDIENTE';index"`
	OrderedAt  time.Time  `json:"ordered_at"`
	ExpectedAt *time.Time `json:"expected_at,omitempty"`
	Note       string     `json:"note" gorm:"type:text"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	Supplier Supplier            `json:"supplier,omitempty" gorm:"foreignKey:SupplierID"`
	Lines    []PurchaseOrderLine `json:"lines,omitempty" gorm:"foreignKey:OrderID"`
}

// Terminal reports whether the order can no longer change
func (o *PurchaseOrder) Terminal() bool {
	return o.Status == OrderStateReceived || o.Status == OrderStateCanceled
}

// PurchaseOrderLine is a single item of a purchase order
type PurchaseOrderLine struct {
	ID          uint    `json:"id" gorm:"primarykey"`
	OrderID     uint    `json:"order_id" gorm:"index;not null"`
	ProductID   uint    `json:"product_id" gorm:"index;not null"`
	QtyOrdered  int     `json:"qty_ordered" gorm:"not null"`
	QtyReceived int     `json:"qty_received" gorm:"not null;default:0"`
	UnitPrice   float64 `json:"unit_price" gorm:"type:decimal(12,2);not null"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
