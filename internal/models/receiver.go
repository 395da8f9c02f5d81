package models

import "time"

// Receiver: an organization or individual claiming donated food
type Receiver struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null"`
	Type      string `gorm:"size:50"` // NGO, Individual, Shelter, ...
	City      string `gorm:"size:100;index"`
	Contact   string `gorm:"size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
