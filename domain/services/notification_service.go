package services

import (
	"context"

	"github.com/google/uuid"

	"school-cms/domain/models"
)

// Broadcaster pushes a message to every connected admin panel
type Broadcaster interface {
	Broadcast(msgType string, data interface{}) int
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type NotificationService interface {
	// Notify stores the notification and broadcasts it
	Notify(ctx context.Context, notification *models.Notification) error

	List(ctx context.Context, unreadOnly bool, page, limit int) ([]models.Notification, int64, error)
	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// SubmitContact turns a contact form into a notification. Storage failures
	// are logged and do not fail the submission.
	SubmitContact(ctx context.Context, input ContactInput)
}
