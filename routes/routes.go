package routes

import (
	"github.com/gofiber/fiber/v2"

	"sales-dashboard/handlers"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	sales := api.Group("/sales")
	sales.Get("/", h.GetSales)
	sales.Get("/filter-options", h.GetFilterOptions)

	app.Get("/health", h.Health)
}
