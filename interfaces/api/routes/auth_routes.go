package routes

import (
	"github.com/gofiber/fiber/v2"

	"school-cms/interfaces/api/handlers"
	"school-cms/interfaces/api/middleware"
	"school-cms/pkg/config"
)

func SetupAuthRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config, storage fiber.Storage) {
	auth := api.Group("/auth")

	auth.Post("/login", middleware.AuthRateLimiter(&cfg.RateLimit, storage), h.Auth.Login)

	// Protected routes
	auth.Get("/me", middleware.Protected(cfg.JWT.Secret), h.Auth.GetCurrentUser)
}
