package serviceimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/pkg/logger"
)

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	broadcaster      services.Broadcaster
}

// NewNotificationService takes an optional broadcaster for live admin updates
func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	broadcaster services.Broadcaster,
) services.NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		broadcaster:      broadcaster,
	}
}

func (s *NotificationServiceImpl) Notify(ctx context.Context, notification *models.Notification) error {
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return err
	}

	delivered := 0
	if s.broadcaster != nil {
		delivered = s.broadcaster.Broadcast("notification", notification)
	}

	logger.Notification("notification_created", "Notification created", map[string]interface{}{
		"id":        notification.ID.String(),
		"type":      string(notification.Type),
		"delivered": delivered,
	})
	return nil
}

func (s *NotificationServiceImpl) List(ctx context.Context, unreadOnly bool, page, limit int) ([]models.Notification, int64, error) {
	page, limit = normalizePage(page, limit)
	return s.notificationRepo.List(ctx, unreadOnly, (page-1)*limit, limit)
}

func (s *NotificationServiceImpl) CountUnread(ctx context.Context) (int64, error) {
	return s.notificationRepo.CountUnread(ctx)
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.notificationRepo.MarkRead(ctx, id)
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx)
}

func (s *NotificationServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.notificationRepo.Delete(ctx, id)
}

func (s *NotificationServiceImpl) SubmitContact(ctx context.Context, input services.ContactInput) {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\n", input.Name, input.Email)
	if input.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", input.Phone)
	}
	b.WriteString("\n")
	b.WriteString(input.Message)

	title := input.Subject
	if strings.TrimSpace(title) == "" {
		title = "New contact message from " + input.Name
	}

	err := s.Notify(ctx, &models.Notification{
		Type:    models.NotificationContact,
		Title:   title,
		Message: b.String(),
	})
	if err != nil {
		logger.NotificationError("contact_notification_failed", "Failed to store contact message", err, map[string]interface{}{
			"email": input.Email,
		})
	}
}
