package model

import "time"

// Category represents product grouping with an average-margin hint
type Category struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	Name          string    `json:"name" gorm:"type:varchar(100);not null;unique"`
	Description   string    `json:"description" gorm:"type:text"`
	AverageMargin float64   `json:"average_margin" gorm:"type:decimal(5,2);default:0"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
