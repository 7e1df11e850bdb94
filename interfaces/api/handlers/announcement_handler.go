package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"school-cms/domain/dto"
	"school-cms/domain/models"
	"school-cms/domain/services"
	"school-cms/pkg/listing"
	"school-cms/pkg/logger"
	"school-cms/pkg/utils"
)

type AnnouncementHandler struct {
	announcementService services.AnnouncementService
}

func NewAnnouncementHandler(announcementService services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

func (h *AnnouncementHandler) toResponse(a *models.Announcement, now time.Time) dto.AnnouncementResponse {
	return dto.AnnouncementToResponse(a,
		h.announcementService.GetPriorityBadgeClass(a.Priority),
		h.announcementService.ShouldShowAsNotification(a, now),
		now,
	)
}

func (h *AnnouncementHandler) toResponses(items []models.Announcement, now time.Time) []dto.AnnouncementResponse {
	resp := make([]dto.AnnouncementResponse, len(items))
	for i := range items {
		resp[i] = h.toResponse(&items[i], now)
	}
	return resp
}

// List returns published announcements in priority order.
// GET /api/v1/announcements?search=&priority=&page=&per_page=
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	page, err := h.announcementService.List(c.UserContext(), listQuery(c, "priority"))
	if err != nil {
		return serviceError(c, err, "Failed to load announcements")
	}

	now := time.Now()
	resp := listing.Map(page, func(a models.Announcement) dto.AnnouncementResponse {
		return h.toResponse(&a, now)
	})
	return utils.SuccessResponse(c, "Announcements retrieved successfully", resp)
}

// Notifications returns the announcements the site shows as a banner
func (h *AnnouncementHandler) Notifications(c *fiber.Ctx) error {
	items, err := h.announcementService.GetNotificationAnnouncements(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to load announcements")
	}
	return utils.SuccessResponse(c, "Announcements retrieved successfully", h.toResponses(items, time.Now()))
}

func (h *AnnouncementHandler) Priorities(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, "Priorities retrieved successfully", h.announcementService.GetPriorities())
}

func (h *AnnouncementHandler) GetBySlug(c *fiber.Ctx) error {
	announcement, err := h.announcementService.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return serviceError(c, err, "Failed to load announcement")
	}
	if !announcement.IsPublished() {
		return utils.NotFoundResponse(c, "Announcement not found")
	}
	return utils.SuccessResponse(c, "Announcement retrieved successfully", h.toResponse(announcement, time.Now()))
}

func (h *AnnouncementHandler) AdminList(c *fiber.Ctx) error {
	items, err := h.announcementService.GetAll(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to load announcements")
	}
	return utils.SuccessResponse(c, "Announcements retrieved successfully", h.toResponses(items, time.Now()))
}

func (h *AnnouncementHandler) AdminGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	announcement, err := h.announcementService.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err, "Failed to load announcement")
	}
	return utils.SuccessResponse(c, "Announcement retrieved successfully", h.toResponse(announcement, time.Now()))
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	created, err := h.announcementService.Create(c.UserContext(), dto.CreateAnnouncementRequestToAnnouncement(&req))
	if err != nil {
		return serviceError(c, err, "Failed to create announcement")
	}

	logger.Content("announcement_created", "Announcement created", map[string]interface{}{
		"id":       created.ID.String(),
		"priority": created.Priority,
	})
	return utils.CreatedResponse(c, "Announcement created successfully", h.toResponse(created, time.Now()))
}

func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	updates, err := dto.UpdateRequestToUpdates(body)
	if err != nil {
		return serviceError(c, err, "Failed to update announcement")
	}

	announcement, err := h.announcementService.Update(c.UserContext(), id, updates)
	if err != nil {
		return serviceError(c, err, "Failed to update announcement")
	}
	return utils.SuccessResponse(c, "Announcement updated successfully", h.toResponse(announcement, time.Now()))
}

func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	if err := h.announcementService.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err, "Failed to delete announcement")
	}
	return utils.SuccessResponse(c, "Announcement deleted successfully", nil)
}
