package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-cms/infrastructure/redis"
	ws "school-cms/infrastructure/websocket"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.RedisClient
	hub         *ws.Hub
}

// NewHealthHandler creates a new health handler. redisClient may be nil.
func NewHealthHandler(db *gorm.DB, redisClient *redis.RedisClient, hub *ws.Hub) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
		hub:         hub,
	}
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status  string `json:"status"` // "ok", "error", "unavailable"
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

type DetailedHealthResponse struct {
	Status     string                     `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components"`
	WebSockets int                        `json:"websocketClients"`
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Server is running",
		"service": "School CMS API",
	})
}

// DetailedHealth checks the database and Redis. Redis is optional, so its
// failure only degrades the status.
func (h *HealthHandler) DetailedHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 10*time.Second)
	defer cancel()

	response := DetailedHealthResponse{
		Timestamp:  time.Now(),
		Components: make(map[string]ComponentHealth),
	}
	if h.hub != nil {
		response.WebSockets = h.hub.ClientCount()
	}

	dbHealth := h.checkDatabase(ctx)
	response.Components["database"] = dbHealth

	redisHealth := h.checkRedis(ctx)
	response.Components["redis"] = redisHealth

	switch {
	case dbHealth.Status != "ok":
		response.Status = "unhealthy"
	case redisHealth.Status == "error":
		response.Status = "degraded"
	default:
		response.Status = "healthy"
	}

	statusCode := fiber.StatusOK
	if response.Status == "unhealthy" {
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) ComponentHealth {
	start := time.Now()

	if h.db == nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Database not configured",
		}
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Failed to get database connection: " + err.Error(),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Database ping failed: " + err.Error(),
		}
	}

	return ComponentHealth{
		Status:  "ok",
		Message: "Connected",
		Latency: time.Since(start).String(),
	}
}

func (h *HealthHandler) checkRedis(ctx context.Context) ComponentHealth {
	start := time.Now()

	if h.redisClient == nil {
		return ComponentHealth{
			Status:  "unavailable",
			Message: "Redis not configured",
		}
	}

	if err := h.redisClient.Ping(ctx); err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Redis ping failed: " + err.Error(),
		}
	}

	return ComponentHealth{
		Status:  "ok",
		Message: "Connected",
		Latency: time.Since(start).String(),
	}
}
