package claim

import (
	"foodshare-backend/internal/database"
	"foodshare-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ClaimResponse struct {
	ID         uint   `json:"id"`
	FoodID     *uint  `json:"food_id"`
	ReceiverID *uint  `json:"receiver_id"`
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
}

type SaveClaimRequest struct {
	ID         uint   `json:"id"` // 0 to auto-assign
	FoodID     *uint  `json:"food_id"`
	ReceiverID *uint  `json:"receiver_id"`
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"` // blank for "now"
}

func toResponse(cl models.Claim) ClaimResponse {
	return ClaimResponse{
		ID:         cl.ID,
		FoodID:     cl.FoodID,
		ReceiverID: cl.ReceiverID,
		Status:     string(cl.Status),
		Timestamp:  cl.Timestamp,
	}
}

// POST /api/claims
func SaveClaimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveClaimRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		cl := models.Claim{
			ID:         body.ID,
			FoodID:     body.FoodID,
			ReceiverID: body.ReceiverID,
			Status:     models.ClaimStatus(body.Status),
			Timestamp:  body.Timestamp,
		}
		if err := Upsert(database.DB, &cl); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(cl))
	}
}

// GET /api/claims?q=
func ListClaimsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := List(database.DB, c.Query("q"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Claims could not be listed")
		}

		res := make([]ClaimResponse, 0, len(claims))
		for _, cl := range claims {
			res = append(res, toResponse(cl))
		}
		return c.JSON(res)
	}
}

// DELETE /api/claims/:id
func DeleteClaimHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid claim id")
		}

		if err := Delete(database.DB, uint(id)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Claim could not be deleted")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
