package model

import "time"

// Supplier represents a product vendor with delivery and rating info
type Supplier struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"type:varchar(100);index;not null"`
	ContactPerson    string    `json:"contact_person" gorm:"type:varchar(100)"`
	Phone            string    `json:"phone" gorm:"type:varchar(20)"`
	Email            string    `json:"email" gorm:"type:varchar(100)"`
	City             string    `json:"city" gorm:"type:varchar(50)"`
	DeliveryLeadDays int       `json:"delivery_lead_days" gorm:"default:0"`
	Rating           float64   `json:"rating" gorm:"type:decimal(3,1);default:0"`
	IsActive         bool      `json:"is_active" gorm:"default:true"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
