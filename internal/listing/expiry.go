package listing

import (
	"sort"
	"time"

	"foodshare-backend/internal/models"

	"gorm.io/gorm"
)

// ExpiringSoonDays: listings this many calendar days (or fewer, including
// already expired ones) from expiry show up in the alert view.
const ExpiringSoonDays = 3

type ExpiringListing struct {
	models.FoodListing
	DaysToExpiry int
}

// DaysToExpiry returns the whole calendar days between today and expiry,
// negative once the date has passed. Clock times on either side are
// ignored.
func DaysToExpiry(expiry, today time.Time) int {
	e := time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

// ExpiringSoon returns listings with a known expiry date at most
// ExpiringSoonDays away, soonest first. Listings without an expiry date
// never appear.
func ExpiringSoon(db *gorm.DB, today time.Time) ([]ExpiringListing, error) {
	var listings []models.FoodListing
	if err := db.Where("expiry_date IS NOT NULL").Order("id asc").Find(&listings).Error; err != nil {
		return nil, err
	}

	alerts := make([]ExpiringListing, 0)
	for _, l := range listings {
		d := DaysToExpiry(*l.ExpiryDate, today)
		if d <= ExpiringSoonDays {
			alerts = append(alerts, ExpiringListing{FoodListing: l, DaysToExpiry: d})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysToExpiry < alerts[j].DaysToExpiry
	})
	return alerts, nil
}
