package main

import (
	"log"
	"strings"

	"foodshare-backend/internal/claim"
	"foodshare-backend/internal/config"
	"foodshare-backend/internal/dashboard"
	"foodshare-backend/internal/database"
	"foodshare-backend/internal/importer"
	"foodshare-backend/internal/listing"
	"foodshare-backend/internal/models"
	"foodshare-backend/internal/provider"
	"foodshare-backend/internal/receiver"
	"foodshare-backend/internal/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			if models.IsValidation(err) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Providers
	api.Post("/providers", provider.SaveProviderHandler())
	api.Get("/providers", provider.ListProvidersHandler())
	api.Delete("/providers/:id", provider.DeleteProviderHandler())

	// Receivers
	api.Post("/receivers", receiver.SaveReceiverHandler())
	api.Get("/receivers", receiver.ListReceiversHandler())
	api.Delete("/receivers/:id", receiver.DeleteReceiverHandler())

	// Food listings & expiry alerts
	api.Post("/food-listings", listing.SaveFoodListingHandler())
	api.Get("/food-listings", listing.ListFoodListingsHandler())
	api.Get("/food-listings/expiring", listing.ExpiringSoonHandler())
	api.Delete("/food-listings/:id", listing.DeleteFoodListingHandler())

	// Claims
	api.Post("/claims", claim.SaveClaimHandler())
	api.Get("/claims", claim.ListClaimsHandler())
	api.Delete("/claims/:id", claim.DeleteClaimHandler())

	// Bulk CSV/XLSX import
	api.Post("/import", importer.ImportHandler())

	// Report catalog
	api.Get("/reports", report.ListReportsHandler())
	api.Get("/reports/:index", report.RunReportHandler())

	// Dashboard charts
	api.Get("/dashboard/provider-types", dashboard.ProviderTypesHandler())
	api.Get("/dashboard/claim-status", dashboard.ClaimStatusHandler())
	api.Get("/dashboard/food-types", dashboard.FoodTypesHandler())
	api.Get("/dashboard/top-cities", dashboard.TopCitiesHandler())
	api.Get("/dashboard/completed-claims-trend", dashboard.CompletedClaimsTrendHandler())

	log.Println("Server listening on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
