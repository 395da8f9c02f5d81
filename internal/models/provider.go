package models

import "time"

// Provider: an organization or individual donating surplus food
type Provider struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Type      string `gorm:"size:50"` // Restaurant, Grocery Store, ...
	Address   string `gorm:"size:255"`
	City      string `gorm:"size:100;index"`
	Contact   string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
