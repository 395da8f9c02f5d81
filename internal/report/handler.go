package report

import (
	"foodshare-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type CatalogEntry struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Param string `json:"param,omitempty"`
}

// GET /api/reports
// Enumerates the catalog so the frontend can render the list and knows
// which report needs a city parameter.
func ListReportsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries := make([]CatalogEntry, 0, len(Catalog))
		for i, r := range Catalog {
			entries = append(entries, CatalogEntry{Index: i, Name: r.Name, Param: r.Param})
		}
		return c.JSON(entries)
	}
}

// GET /api/reports/:index?city=
func RunReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idx, err := c.ParamsInt("index")
		if err != nil || idx < 0 || idx >= len(Catalog) {
			return fiber.NewError(fiber.StatusNotFound, "Unknown report")
		}
		r := Catalog[idx]

		param := ""
		if r.Param != "" {
			param = c.Query(r.Param)
			if param == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Report requires a "+r.Param+" parameter")
			}
		}

		result, err := Run(database.DB, r, param)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Report could not be executed")
		}
		return c.JSON(result)
	}
}
