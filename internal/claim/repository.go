package claim

import (
	"strings"
	"time"

	"foodshare-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TimestampLayout matches the original exports: ISO-8601 with seconds,
// no zone.
const TimestampLayout = "2006-01-02T15:04:05"

var timestampLayouts = []string{
	TimestampLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeTimestamp fills a blank timestamp with now and rejects values
// that are not ISO-8601-ish.
func NormalizeTimestamp(ts string, now time.Time) (string, error) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return now.Format(TimestampLayout), nil
	}
	for _, layout := range timestampLayouts {
		if _, err := time.Parse(layout, ts); err == nil {
			return ts, nil
		}
	}
	return "", &models.ValidationError{Field: "timestamp", Reason: "must be ISO-8601"}
}

// Upsert saves cl. ID 0 assigns the next identifier; a non-zero ID inserts
// or overwrites that row. Food and receiver references are advisory and
// not checked for existence.
func Upsert(db *gorm.DB, cl *models.Claim) error {
	if !cl.Status.Valid() {
		return &models.ValidationError{Field: "status", Reason: "must be Pending, Completed or Cancelled"}
	}

	ts, err := NormalizeTimestamp(cl.Timestamp, time.Now())
	if err != nil {
		return err
	}
	cl.Timestamp = ts

	if cl.ID == 0 {
		return db.Create(cl).Error
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(cl).Error
}

// Delete removes the claim with the given id, a no-op when absent.
func Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.Claim{}, id).Error
}

// List returns claims ordered by id. A non-empty search matches status and
// timestamp case-insensitively, and the three id columns as digit
// substrings, mirroring the claims search box.
func List(db *gorm.DB, search string) ([]models.Claim, error) {
	q := db.Order("id asc")
	if s := strings.ToLower(strings.TrimSpace(search)); s != "" {
		like := "%" + s + "%"
		q = q.Where(
			`LOWER(status) LIKE ? OR LOWER(timestamp) LIKE ?
				OR CAST(id AS TEXT) LIKE ? OR CAST(food_id AS TEXT) LIKE ? OR CAST(receiver_id AS TEXT) LIKE ?`,
			like, like, like, like, like,
		)
	}

	var claims []models.Claim
	if err := q.Find(&claims).Error; err != nil {
		return nil, err
	}
	return claims, nil
}
