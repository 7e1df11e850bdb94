package routes

import (
	"github.com/gofiber/fiber/v2"

	"school-cms/domain/models"
	"school-cms/interfaces/api/handlers"
	"school-cms/interfaces/api/middleware"
	"school-cms/pkg/config"
)

// SetupAdminRoutes registers the back-office API. Editors manage content;
// users and logs need the admin role.
func SetupAdminRoutes(api fiber.Router, h *handlers.Handlers, cfg *config.Config) {
	admin := api.Group("/admin",
		middleware.Protected(cfg.JWT.Secret),
		middleware.RequireRole(string(models.RoleAdmin), string(models.RoleEditor)),
	)

	news := admin.Group("/news")
	news.Get("/", h.News.AdminList)
	news.Post("/", h.News.Create)
	news.Get("/:id", h.News.AdminGet)
	news.Patch("/:id", h.News.Update)
	news.Delete("/:id", h.News.Delete)

	announcements := admin.Group("/announcements")
	announcements.Get("/", h.Announcement.AdminList)
	announcements.Post("/", h.Announcement.Create)
	announcements.Get("/:id", h.Announcement.AdminGet)
	announcements.Patch("/:id", h.Announcement.Update)
	announcements.Delete("/:id", h.Announcement.Delete)

	categories := admin.Group("/categories")
	categories.Get("/", h.Category.List)
	categories.Post("/", h.Category.Create)
	categories.Get("/:id", h.Category.Get)
	categories.Put("/:id", h.Category.Update)
	categories.Delete("/:id", h.Category.Delete)

	slider := admin.Group("/slider")
	slider.Get("/", h.Slider.List)
	slider.Post("/", h.Slider.Create)
	slider.Put("/reorder", h.Slider.Reorder)
	slider.Get("/:id", h.Slider.Get)
	slider.Put("/:id", h.Slider.Update)
	slider.Delete("/:id", h.Slider.Delete)

	notifications := admin.Group("/notifications")
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Put("/read-all", h.Notification.MarkAllRead)
	notifications.Put("/:id/read", h.Notification.MarkRead)
	notifications.Delete("/:id", h.Notification.Delete)

	admin.Get("/stats/views", h.ViewStats.TopContent)

	users := admin.Group("/users", middleware.AdminOnly())
	users.Get("/", h.User.List)
	users.Post("/", h.User.Create)
	users.Get("/:id", h.User.Get)
	users.Put("/:id", h.User.Update)
	users.Delete("/:id", h.User.Delete)

	SetupLogRoutes(admin, h)
}
