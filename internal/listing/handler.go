package listing

import (
	"time"

	"foodshare-backend/internal/database"
	"foodshare-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

type FoodListingResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	ExpiryDate   string `json:"expiry_date,omitempty"` // "2006-01-02"
	ProviderID   *uint  `json:"provider_id"`
	ProviderType string `json:"provider_type"`
	Location     string `json:"location"`
	FoodType     string `json:"food_type"`
	MealType     string `json:"meal_type"`
	DaysToExpiry *int   `json:"days_to_expiry,omitempty"`
}

type SaveFoodListingRequest struct {
	ID           uint   `json:"id"` // 0 to auto-assign
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	ExpiryDate   string `json:"expiry_date"` // "2006-01-02", blank for none
	ProviderID   *uint  `json:"provider_id"`
	ProviderType string `json:"provider_type"`
	Location     string `json:"location"`
	FoodType     string `json:"food_type"`
	MealType     string `json:"meal_type"`
}

func toResponse(l models.FoodListing, today time.Time) FoodListingResponse {
	res := FoodListingResponse{
		ID:           l.ID,
		Name:         l.Name,
		Quantity:     l.Quantity,
		ProviderID:   l.ProviderID,
		ProviderType: l.ProviderType,
		Location:     l.Location,
		FoodType:     l.FoodType,
		MealType:     l.MealType,
	}
	if l.ExpiryDate != nil {
		res.ExpiryDate = l.ExpiryDate.Format(dateLayout)
		d := DaysToExpiry(*l.ExpiryDate, today)
		res.DaysToExpiry = &d
	}
	return res
}

// POST /api/food-listings
func SaveFoodListingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveFoodListingRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var expiry *time.Time
		if body.ExpiryDate != "" {
			t, err := time.Parse(dateLayout, body.ExpiryDate)
			if err != nil {
				return &models.ValidationError{Field: "expiry_date", Reason: "must be YYYY-MM-DD"}
			}
			expiry = &t
		}

		l := models.FoodListing{
			ID:           body.ID,
			Name:         body.Name,
			Quantity:     body.Quantity,
			ExpiryDate:   expiry,
			ProviderID:   body.ProviderID,
			ProviderType: body.ProviderType,
			Location:     body.Location,
			FoodType:     body.FoodType,
			MealType:     body.MealType,
		}
		if err := Upsert(database.DB, &l); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(l, time.Now()))
	}
}

// GET /api/food-listings?q=
func ListFoodListingsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		listings, err := List(database.DB, c.Query("q"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Food listings could not be listed")
		}

		today := time.Now()
		res := make([]FoodListingResponse, 0, len(listings))
		for _, l := range listings {
			res = append(res, toResponse(l, today))
		}
		return c.JSON(res)
	}
}

// GET /api/food-listings/expiring
// Listings expiring within 3 days (already expired included), soonest
// first.
func ExpiringSoonHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		today := time.Now()
		alerts, err := ExpiringSoon(database.DB, today)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Expiry alerts could not be computed")
		}

		res := make([]FoodListingResponse, 0, len(alerts))
		for _, a := range alerts {
			res = append(res, toResponse(a.FoodListing, today))
		}
		return c.JSON(res)
	}
}

// DELETE /api/food-listings/:id
func DeleteFoodListingHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid food listing id")
		}

		if err := Delete(database.DB, uint(id)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Food listing could not be deleted")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
