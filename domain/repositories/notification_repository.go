package repositories

import (
	"context"

	"github.com/google/uuid"

	"school-cms/domain/models"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)

	// List returns newest first with the total row count
	List(ctx context.Context, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error)

	CountUnread(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
