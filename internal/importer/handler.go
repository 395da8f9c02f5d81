package importer

import (
	"foodshare-backend/internal/database"

	"github.com/gofiber/fiber/v2"
)

type ImportResult struct {
	Table string `json:"table"`
	Rows  int    `json:"rows"`
	Error string `json:"error,omitempty"`
}

// POST /api/import
// Multipart form with up to four files keyed providers, receivers,
// food_listings and claims. Each supplied file replaces its table's
// contents wholesale. Tables load independently: a failure in one is
// reported in its result entry and never rolls back tables already
// replaced.
func ImportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		results := make([]ImportResult, 0, len(Tables))

		for _, table := range Tables {
			fh, err := c.FormFile(string(table))
			if err != nil {
				continue // table not part of this upload
			}

			f, err := fh.Open()
			if err != nil {
				results = append(results, ImportResult{Table: string(table), Error: "file could not be opened"})
				continue
			}
			rows, err := ReadRows(fh.Filename, f)
			f.Close()
			if err != nil {
				results = append(results, ImportResult{Table: string(table), Error: err.Error()})
				continue
			}

			n, err := Load(database.DB, table, rows)
			if err != nil {
				results = append(results, ImportResult{Table: string(table), Error: err.Error()})
				continue
			}
			results = append(results, ImportResult{Table: string(table), Rows: n})
		}

		if len(results) == 0 {
			return fiber.NewError(fiber.StatusBadRequest,
				"No import files supplied (expected providers, receivers, food_listings and/or claims)")
		}
		return c.JSON(results)
	}
}
