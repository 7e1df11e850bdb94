package repositories

import (
	"context"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/validation"
)

// ContentRepository is the data access contract shared by every content table.
// Listing methods return an empty slice, never ErrNotFound.
type ContentRepository[T any] interface {
	// GetAll returns every row, newest created first
	GetAll(ctx context.Context) ([]T, error)

	// GetPublished returns published rows with a publish date, newest published first
	GetPublished(ctx context.Context) ([]T, error)

	GetByID(ctx context.Context, id uuid.UUID) (*T, error)

	// GetBySlug only finds published rows
	GetBySlug(ctx context.Context, slug string) (*T, error)

	// GetPublishedByID matches id and status=published
	GetPublishedByID(ctx context.Context, id uuid.UUID) (*T, error)

	// Search matches title, content or excerpt case-insensitively among published rows
	Search(ctx context.Context, query string) ([]T, error)

	// Create validates, assigns a unique slug and derives published_at
	Create(ctx context.Context, item *T) (*T, error)

	// Update validates, drops keys outside AllowedFields and refreshes updated_at
	Update(ctx context.Context, id uuid.UUID, updates validation.Updates) (*T, error)

	Delete(ctx context.Context, id uuid.UUID) error

	GetRecent(ctx context.Context, limit int) ([]T, error)

	// IncrementViewCount atomically adds one view and returns the new count.
	// It bypasses validation and does not touch updated_at.
	IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error)

	SlugExists(ctx context.Context, slug string) (bool, error)

	AllowedFields() []string
}

type NewsRepository interface {
	ContentRepository[models.News]

	// GetCategories returns distinct, sorted, non-empty categories of published news
	GetCategories(ctx context.Context) ([]string, error)

	GetByCategory(ctx context.Context, category string) ([]models.News, error)
}

type AnnouncementRepository interface {
	ContentRepository[models.Announcement]

	GetByPriority(ctx context.Context, priority models.AnnouncementPriority) ([]models.Announcement, error)

	GetUrgentAnnouncements(ctx context.Context) ([]models.Announcement, error)

	// GetOrderedByPriority sorts by severity rank (urgent, important, normal), then newest published
	GetOrderedByPriority(ctx context.Context) ([]models.Announcement, error)

	GetPriorities() []models.AnnouncementPriority
}
