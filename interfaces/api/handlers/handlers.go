package handlers

import (
	"gorm.io/gorm"

	"school-cms/domain/services"
	"school-cms/infrastructure/redis"
	ws "school-cms/infrastructure/websocket"
	"school-cms/pkg/config"
)

// Services contains all the services needed for handlers
type Services struct {
	NewsService         services.NewsService
	AnnouncementService services.AnnouncementService
	ViewTrackingService services.ViewTrackingService
	AuthService         services.AuthService
	UserService         services.UserService
	CategoryService     services.CategoryService
	SliderService       services.SliderService
	NotificationService services.NotificationService
	HomeService         services.HomeService
}

// Infrastructure is what the health checks probe. Redis may be nil.
type Infrastructure struct {
	DB    *gorm.DB
	Redis *redis.RedisClient
	Hub   *ws.Hub
}

// Handlers contains all HTTP handlers
type Handlers struct {
	News         *NewsHandler
	Announcement *AnnouncementHandler
	TrackView    *TrackViewHandler
	ViewStats    *ViewStatsHandler
	Auth         *AuthHandler
	User         *UserHandler
	Category     *CategoryHandler
	Slider       *SliderHandler
	Notification *NotificationHandler
	Home         *HomeHandler
	Health       *HealthHandler
	Log          *LogHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(svc *Services, infra *Infrastructure, cfg *config.Config) *Handlers {
	announcementHandler := NewAnnouncementHandler(svc.AnnouncementService)

	return &Handlers{
		News:         NewNewsHandler(svc.NewsService),
		Announcement: announcementHandler,
		TrackView:    NewTrackViewHandler(svc.ViewTrackingService, cfg.IsProduction()),
		ViewStats:    NewViewStatsHandler(svc.ViewTrackingService),
		Auth:         NewAuthHandler(svc.AuthService),
		User:         NewUserHandler(svc.UserService),
		Category:     NewCategoryHandler(svc.CategoryService),
		Slider:       NewSliderHandler(svc.SliderService),
		Notification: NewNotificationHandler(svc.NotificationService),
		Home:         NewHomeHandler(svc.HomeService, announcementHandler),
		Health:       NewHealthHandler(infra.DB, infra.Redis, infra.Hub),
		Log:          NewLogHandler(),
	}
}
