package provider

import (
	"foodshare-backend/internal/database"
	"foodshare-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProviderResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
	City    string `json:"city"`
	Contact string `json:"contact"`
}

type SaveProviderRequest struct {
	ID      uint   `json:"id"` // 0 to auto-assign
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
	City    string `json:"city"`
	Contact string `json:"contact"`
}

func toResponse(p models.Provider) ProviderResponse {
	return ProviderResponse{
		ID:      p.ID,
		Name:    p.Name,
		Type:    p.Type,
		Address: p.Address,
		City:    p.City,
		Contact: p.Contact,
	}
}

// POST /api/providers
func SaveProviderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveProviderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		p := models.Provider{
			ID:      body.ID,
			Name:    body.Name,
			Type:    body.Type,
			Address: body.Address,
			City:    body.City,
			Contact: body.Contact,
		}
		if err := Upsert(database.DB, &p); err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toResponse(p))
	}
}

// GET /api/providers?q=
func ListProvidersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		providers, err := List(database.DB, c.Query("q"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Providers could not be listed")
		}

		res := make([]ProviderResponse, 0, len(providers))
		for _, p := range providers {
			res = append(res, toResponse(p))
		}
		return c.JSON(res)
	}
}

// DELETE /api/providers/:id
func DeleteProviderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid provider id")
		}

		if err := Delete(database.DB, uint(id)); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Provider could not be deleted")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
