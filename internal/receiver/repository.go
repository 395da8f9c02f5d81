package receiver

import (
	"strings"

	"foodshare-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Upsert saves r. ID 0 assigns the next identifier; a non-zero ID inserts
// or overwrites that row.
func Upsert(db *gorm.DB, r *models.Receiver) error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return &models.ValidationError{Field: "name", Reason: "is required"}
	}

	if r.ID == 0 {
		return db.Create(r).Error
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(r).Error
}

// Delete removes the receiver with the given id, a no-op when absent.
// Claims referencing it are left untouched.
func Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.Receiver{}, id).Error
}

// List returns receivers ordered by id, optionally filtered by a
// case-insensitive substring match on name, city and type.
func List(db *gorm.DB, search string) ([]models.Receiver, error) {
	q := db.Order("id asc")
	if s := strings.ToLower(strings.TrimSpace(search)); s != "" {
		like := "%" + s + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(type) LIKE ?", like, like, like)
	}

	var receivers []models.Receiver
	if err := q.Find(&receivers).Error; err != nil {
		return nil, err
	}
	return receivers, nil
}
