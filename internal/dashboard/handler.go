package dashboard

import (
	"foodshare-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

// Chart-data endpoints backing the dashboard visuals. Each one is a pure
// read shaped for a single chart.

type TypeCount struct {
	Type  string `json:"type" gorm:"column:type"`
	Count int64  `json:"count" gorm:"column:count"`
}

type StatusPercentage struct {
	Status     string  `json:"status" gorm:"column:status"`
	Percentage float64 `json:"percentage" gorm:"column:percentage"`
}

type CityListings struct {
	City     string `json:"city" gorm:"column:city"`
	Listings int64  `json:"listings" gorm:"column:listings"`
}

type TrendPoint struct {
	Day       string `json:"day" gorm:"column:day"`
	Completed int64  `json:"completed" gorm:"column:completed"`
}

// GET /api/dashboard/provider-types
func ProviderTypesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows := make([]TypeCount, 0)
		err := database.DB.Raw(`
			SELECT type, COUNT(*) AS count
			FROM providers
			GROUP BY type
			ORDER BY count DESC
		`).Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Provider type chart failed")
		}
		return c.JSON(rows)
	}
}

// GET /api/dashboard/claim-status
// Percentage share per status, 2 decimals. No rows when there are no
// claims (the divisor subquery groups over nothing).
func ClaimStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows := make([]StatusPercentage, 0)
		err := database.DB.Raw(`
			SELECT status,
			       ROUND(100.0 * COUNT(*) / (SELECT COUNT(*) FROM claims), 2) AS percentage
			FROM claims
			GROUP BY status
		`).Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Claim status chart failed")
		}
		return c.JSON(rows)
	}
}

// GET /api/dashboard/food-types
func FoodTypesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows := make([]TypeCount, 0)
		err := database.DB.Raw(`
			SELECT food_type AS type, COUNT(*) AS count
			FROM food_listings
			GROUP BY food_type
			ORDER BY count DESC
		`).Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Food type chart failed")
		}
		return c.JSON(rows)
	}
}

// GET /api/dashboard/top-cities
// Top 10 cities by listing count; the report catalog's top-5 variant is a
// separate query.
func TopCitiesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows := make([]CityListings, 0)
		err := database.DB.Raw(`
			SELECT location AS city, COUNT(*) AS listings
			FROM food_listings
			GROUP BY location
			ORDER BY listings DESC
			LIMIT 10
		`).Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "City chart failed")
		}
		return c.JSON(rows)
	}
}

// GET /api/dashboard/completed-claims-trend
// Completed claims per day, oldest first.
func CompletedClaimsTrendHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows := make([]TrendPoint, 0)
		err := database.DB.Raw(`
			SELECT date(timestamp) AS day, COUNT(*) AS completed
			FROM claims
			WHERE status = 'Completed' AND timestamp IS NOT NULL
			GROUP BY date(timestamp)
			ORDER BY day
		`).Scan(&rows).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Completed claims trend failed")
		}
		return c.JSON(rows)
	}
}
