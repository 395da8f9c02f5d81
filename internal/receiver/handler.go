package receiver

import (
	"foodshare-backend/internal/database"
	"foodshare-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ReceiverResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	City    string `json:"city"`
	Contact string `json:"contact"`
}

type SaveReceiverRequest struct {
	ID      uint   `json:"id"` // 0 to auto-assign
	Name    string `json:"name"`
	Type    string `json:"type"`
	City    string `json:"city"`
	Contact string `json:"contact"`
}

func toResponse(r models.Receiver) ReceiverResponse {
	return ReceiverResponse{
		ID:      r.ID,
		Name:    r.Name,
		Type:    r.Type,
		City:    r.City,
		Contact: r.Contact,
	}
}

// POST /api/receivers
func SaveReceiverHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveReceiverRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		r := models.Receiver{
			ID:      body.ID,
			Name:    body.Name,
			Type:    body.Type,
			City:    body.City,
			Contact: body.Contact,
		}
		if err := Upsert(database.DB, &r); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(r))
	}
}

// GET /api/receivers?q=
func ListReceiversHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		receivers, err := List(database.DB, c.Query("q"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Receivers could not be listed")
		}

		res := make([]ReceiverResponse, 0, len(receivers))
		for _, r := range receivers {
			res = append(res, toResponse(r))
		}
		return c.JSON(res)
	}
}

// DELETE /api/receivers/:id
func DeleteReceiverHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid receiver id")
		}

		if err := Delete(database.DB, uint(id)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Receiver could not be deleted")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
