package routes

import (
	"github.com/gofiber/fiber/v2"

	"school-cms/interfaces/api/handlers"
	"school-cms/interfaces/api/middleware"
)

// SetupLogRoutes sets up log-related routes under an authenticated group
func SetupLogRoutes(admin fiber.Router, h *handlers.Handlers) {
	logs := admin.Group("/logs", middleware.AdminOnly())

	logs.Get("/", h.Log.GetLogs)
	logs.Get("/files", h.Log.GetLogFiles)
	logs.Get("/stats", h.Log.GetLogStats)
}
