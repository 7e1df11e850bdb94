package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"school-cms/domain/dto"
	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/pkg/logger"
)

const (
	visitorCookie    = "visitor_id"
	visitorCookieTTL = 365 * 24 * time.Hour
)

type TrackViewHandler struct {
	viewService  services.ViewTrackingService
	secureCookie bool
}

func NewTrackViewHandler(viewService services.ViewTrackingService, secureCookie bool) *TrackViewHandler {
	return &TrackViewHandler{
		viewService:  viewService,
		secureCookie: secureCookie,
	}
}

func trackViewError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.TrackViewErrorResponse{
		Success: false,
		Error:   message,
	})
}

// TrackView counts one view of a published news article or announcement.
// POST /api/track-view {type, id}
func (h *TrackViewHandler) TrackView(c *fiber.Ctx) error {
	var req dto.TrackViewRequest
	if err := c.BodyParser(&req); err != nil {
		return trackViewError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	contentType := models.ContentType(strings.TrimSpace(req.Type))
	if !contentType.IsValid() {
		return trackViewError(c, fiber.StatusBadRequest, "Invalid content type. Must be 'news' or 'announcement'")
	}

	rawID := strings.TrimSpace(req.ID)
	if rawID == "" {
		return trackViewError(c, fiber.StatusBadRequest, "Content ID is required")
	}
	contentID, err := uuid.Parse(rawID)
	if err != nil {
		return trackViewError(c, fiber.StatusBadRequest, "Invalid content ID")
	}

	result, err := h.viewService.TrackView(c.UserContext(), services.TrackViewInput{
		ContentType: contentType,
		ContentID:   contentID,
		IPAddress:   c.IP(),
		UserAgent:   c.Get(fiber.HeaderUserAgent),
		ViewerKey:   h.visitor(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidContentType):
			return trackViewError(c, fiber.StatusBadRequest, "Invalid content type. Must be 'news' or 'announcement'")
		case errors.Is(err, repositories.ErrNotFound):
			return trackViewError(c, fiber.StatusNotFound, "Content not found or not published")
		}
		logger.ViewsError("track_view", "Failed to track view", err, map[string]interface{}{
			"type": contentType,
			"id":   contentID.String(),
		})
		return trackViewError(c, fiber.StatusInternalServerError, "Failed to update view count")
	}

	message := "View tracked successfully"
	if !result.Counted {
		message = "View already counted"
	}

	return c.JSON(dto.TrackViewResponse{
		Success:      true,
		NewViewCount: result.ViewCount,
		Message:      message,
	})
}

// visitor returns the visitor cookie and issues one when the client has none.
// A freshly issued cookie is not used for this request.
func (h *TrackViewHandler) visitor(c *fiber.Ctx) string {
	if id := c.Cookies(visitorCookie); id != "" {
		return id
	}
	c.Cookie(&fiber.Cookie{
		Name:     visitorCookie,
		Value:    uuid.NewString(),
		Expires:  time.Now().Add(visitorCookieTTL),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: "Lax",
	})
	return ""
}

// Health pings the backend.
// GET /api/track-view
func (h *TrackViewHandler) Health(c *fiber.Ctx) error {
	if err := h.viewService.Health(c.UserContext()); err != nil {
		logger.ViewsError("health", "View tracking health check failed", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.TrackViewHealthResponse{
			Status: "error",
			Error:  "Database connection failed",
		})
	}

	now := time.Now().UTC()
	return c.JSON(dto.TrackViewHealthResponse{
		Status:    "healthy",
		Timestamp: &now,
	})
}
