package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"school-cms/domain/dto"
	"school-cms/domain/services"
	"school-cms/pkg/utils"
)

type NotificationHandler struct {
	notificationService services.NotificationService
}

func NewNotificationHandler(notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List returns notifications newest first.
// GET /api/v1/admin/notifications?unread=true&page=&limit=
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)
	unreadOnly := c.QueryBool("unread", false)

	items, total, err := h.notificationService.List(c.UserContext(), unreadOnly, page, limit)
	if err != nil {
		return serviceError(c, err, "Failed to load notifications")
	}
	unread, err := h.notificationService.CountUnread(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to load notifications")
	}

	now := time.Now()
	resp := dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, len(items)),
		Total:         total,
		Unread:        unread,
		Page:          page,
		Limit:         limit,
	}
	for i := range items {
		resp.Notifications[i] = dto.NotificationToResponse(&items[i], now)
	}
	return utils.SuccessResponse(c, "Notifications retrieved successfully", resp)
}

func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notificationService.CountUnread(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to count notifications")
	}
	return utils.SuccessResponse(c, "Unread count retrieved successfully", fiber.Map{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	if err := h.notificationService.MarkRead(c.UserContext(), id); err != nil {
		return serviceError(c, err, "Failed to update notification")
	}
	return utils.SuccessResponse(c, "Notification marked as read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	updated, err := h.notificationService.MarkAllRead(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to update notifications")
	}
	return utils.SuccessResponse(c, "Notifications marked as read", fiber.Map{"updated": updated})
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	if err := h.notificationService.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err, "Failed to delete notification")
	}
	return utils.SuccessResponse(c, "Notification deleted successfully", nil)
}

// SubmitContact accepts the public contact form.
// POST /api/v1/contact
func (h *NotificationHandler) SubmitContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	h.notificationService.SubmitContact(c.UserContext(), services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	return utils.SuccessResponse(c, "Thank you for contacting us. We will get back to you soon.", nil)
}
