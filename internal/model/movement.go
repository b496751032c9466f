package model

import "time"

// Movement types
const (
	MovementTypeIn         = "ENTRADA"
	MovementTypeOut        = "SALIDA"
	MovementTypeAdjustment = "AJUSTE"
	MovementTypeShrinkage  = "MERMA"
)

// Movement is an immutable append-only record of a stock change.
// Created once per mutation, never updated or deleted.
type Movement struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ProductID   uint      `json:"product_id" gorm:"index;not null"`
	Type        string    `json:"type" gorm:"type:varchar(20);not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	StockBefore int       `json:"stock_before" gorm:"not null"`
	StockAfter  int       `json:"stock_after" gorm:"not null"`
	Reference   string    `json:"reference" gorm:"type:varchar(100)"`
	Note        string    `json:"note" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName overrides GORM's default pluralization
func (Movement) TableName() string { return "inventory_movements" }

// ValidMovementType reports whether t is one of the known movement types
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjustment, MovementTypeShrinkage:
		return true
	}
	return false
}
