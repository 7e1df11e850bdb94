package routes

import (
	"github.com/gofiber/fiber/v2"

	"school-cms/interfaces/api/handlers"
	"school-cms/interfaces/api/middleware"
	"school-cms/pkg/config"
)

// SetupPublicRoutes registers the read-only site API and the contact form
func SetupPublicRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.RateLimitConfig, storage fiber.Storage) {
	public := api.Group("", middleware.RateLimiter(cfg, storage))

	public.Get("/home", h.Home.GetHome)

	news := public.Group("/news")
	news.Get("/", h.News.List)
	news.Get("/categories", h.News.Categories)
	news.Get("/:slug", h.News.GetBySlug)

	announcements := public.Group("/announcements")
	announcements.Get("/", h.Announcement.List)
	announcements.Get("/notifications", h.Announcement.Notifications)
	announcements.Get("/priorities", h.Announcement.Priorities)
	announcements.Get("/:slug", h.Announcement.GetBySlug)

	public.Get("/categories", h.Category.List)
	public.Get("/slider", h.Slider.ListActive)

	// Contact shares the stricter auth budget to slow down spam
	public.Post("/contact", middleware.AuthRateLimiter(cfg, storage), h.Notification.SubmitContact)
}
