package model

import "time"

// Location represents a physical storage slot with a capacity
type Location struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Section     string    `json:"section" gorm:"type:varchar(10);not null"`
	Aisle       string    `json:"aisle" gorm:"type:varchar(10)"`
	Shelf       string    `json:"shelf" gorm:"type:varchar(10)"`
	Level       int       `json:"level" gorm:"default:1"`
	MaxCapacity int       `json:"max_capacity" gorm:"default:0"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Code returns the section-aisle-shelf display code
func (l *Location) Code() string {
	return l.Section + "-" + l.Aisle + "-" + l.Shelf
}
