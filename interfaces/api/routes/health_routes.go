package routes

import (
	"github.com/gofiber/fiber/v2"

	"school-cms/interfaces/api/handlers"
)

func SetupHealthRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/health", h.Health.Health)
	app.Get("/health/detailed", h.Health.DetailedHealth)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to School CMS API",
			"version": "1.0.0",
			"docs":    "/docs",
			"health":  "/health",
		})
	})
}
