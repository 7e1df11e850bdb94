package routes

import (
	"github.com/gofiber/fiber/v2"

	"school-cms/interfaces/api/handlers"
	"school-cms/pkg/config"
)

// SetupRoutes registers every route. limiterStorage may be nil, in which
// case rate limits are counted per process.
func SetupRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.Config, limiterStorage fiber.Storage) {
	// Setup health and root routes
	SetupHealthRoutes(app, h)

	// The view counter predates the versioned API and keeps its path
	SetupTrackViewRoutes(app, h, &cfg.RateLimit, limiterStorage)

	// API version group
	api := app.Group("/api/v1")

	SetupPublicRoutes(api, h, &cfg.RateLimit, limiterStorage)
	SetupAuthRoutes(api, h, cfg, limiterStorage)
	SetupAdminRoutes(api, h, cfg)

	// Setup WebSocket routes (needs app, not api group)
	SetupWebSocketRoutes(app, cfg.JWT.Secret)
}
