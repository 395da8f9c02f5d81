package provider

import (
	"strings"

	"foodshare-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Upsert saves p. ID 0 assigns the next identifier; a non-zero ID inserts
// or overwrites that row, replacing every non-key field.
func Upsert(db *gorm.DB, p *models.Provider) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return &models.ValidationError{Field: "name", Reason: "is required"}
	}

	if p.ID == 0 {
		return db.Create(p).Error
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(p).Error
}

// Delete removes the provider with the given id. Deleting an absent id is
// a no-op; dependent food listings keep their (now dangling) reference.
func Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.Provider{}, id).Error
}

// List returns providers ordered by id. A non-empty search does a
// case-insensitive substring match on name, city and type.
func List(db *gorm.DB, search string) ([]models.Provider, error) {
	q := db.Order("id asc")
	if s := strings.ToLower(strings.TrimSpace(search)); s != "" {
		like := "%" + s + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(type) LIKE ?", like, like, like)
	}

	var providers []models.Provider
	if err := q.Find(&providers).Error; err != nil {
		return nil, err
	}
	return providers, nil
}
