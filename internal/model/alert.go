package model

import "time"

// Alert priorities
const (
	AlertPriorityHigh   = "ALTA"
	AlertPriorityMedium = "MEDIA"
	AlertPriorityLow    = "BAJA"
)

// Alert states
const (
	AlertStateActive   = "ACTIVA"
	AlertStateResolved = "RESUELTA"
	AlertStateIgnored  = "IGNORADA"
)

// Alert types
const (
	AlertTypeLowStock = "STOCK_BAJO"
)

// Alert is generated when a product's stock crosses below its minimum.
// Mutated only by marking it resolved or ignored, never deleted.
type Alert struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	ProductID   uint       `json:"product_id" gorm:"index;not null"`
	Type        string     `json:"type" gorm:"type:varchar(30);not null;default:'STOCK_BAJO'"`
	Priority    string     `json:"priority" gorm:"type:varchar(10);not null"`
	Message     string     `json:"message" gorm:"type:text"`
	State       string     `json:"state" gorm:"type:varchar(10);not null;default:'ACTIVA';index"`
	GeneratedAt time.Time  `json:"generated_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
