package listing

import (
	"strings"

	"foodshare-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Upsert saves l. ID 0 assigns the next identifier; a non-zero ID inserts
// or overwrites that row, replacing every non-key field. The provider
// reference is deliberately not checked against the providers table.
func Upsert(db *gorm.DB, l *models.FoodListing) error {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return &models.ValidationError{Field: "name", Reason: "is required"}
	}
	if l.Quantity < 0 {
		return &models.ValidationError{Field: "quantity", Reason: "must not be negative"}
	}

	if l.ID == 0 {
		return db.Create(l).Error
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(l).Error
}

// Delete removes the listing with the given id, a no-op when absent.
// Claims referencing it are left dangling.
func Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.FoodListing{}, id).Error
}

// List returns listings ordered by id, optionally filtered by a
// case-insensitive substring match on name, location, food type and meal
// type.
func List(db *gorm.DB, search string) ([]models.FoodListing, error) {
	q := db.Order("id asc")
	if s := strings.ToLower(strings.TrimSpace(search)); s != "" {
		like := "%" + s + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(location) LIKE ? OR LOWER(food_type) LIKE ? OR LOWER(meal_type) LIKE ?",
			like, like, like, like,
		)
	}

	var listings []models.FoodListing
	if err := q.Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}
