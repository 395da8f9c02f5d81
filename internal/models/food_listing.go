package models

import "time"

// FoodListing: one posted batch of available food.
// ProviderID is an advisory reference: it is not enforced at write time and
// may point at a since-deleted provider. Join-based reports simply skip
// such rows.
type FoodListing struct {
	ID           uint       `gorm:"primaryKey"`
	Name         string     `gorm:"size:100;not null"`
	Quantity     int        `gorm:"not null;check:quantity >= 0"`
	ExpiryDate   *time.Time `gorm:"index"`
	ProviderID   *uint      `gorm:"index"`
	ProviderType string     `gorm:"size:50"` // denormalized copy of the provider's type
	Location     string     `gorm:"size:100;index"`
	FoodType     string     `gorm:"size:50"` // Veg / Non-Veg / Vegan ...
	MealType     string     `gorm:"size:50"` // Breakfast / Lunch / Dinner / Snacks
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
