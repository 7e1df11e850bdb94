package routes

import (
	"github.com/gofiber/fiber/v2"

	"school-cms/interfaces/api/handlers"
	"school-cms/interfaces/api/middleware"
	"school-cms/pkg/config"
)

func SetupTrackViewRoutes(app *fiber.App, h *handlers.Handlers, cfg *config.RateLimitConfig, storage fiber.Storage) {
	app.Post("/api/track-view", middleware.TrackViewRateLimiter(cfg, storage), h.TrackView.TrackView)
	app.Get("/api/track-view", h.TrackView.Health)
}
