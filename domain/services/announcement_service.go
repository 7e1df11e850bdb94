package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/validation"
	"school-cms/pkg/listing"
)

// ImportantNotificationWindow is how long an important announcement stays notification-worthy
const ImportantNotificationWindow = 7 * 24 * time.Hour

const (
	BadgeUrgent    = "bg-red-100 text-red-800"
	BadgeImportant = "bg-yellow-100 text-yellow-800"
	BadgeNormal    = "bg-blue-100 text-blue-800"
)

type AnnouncementService interface {
	GetAll(ctx context.Context) ([]models.Announcement, error)
	GetPublished(ctx context.Context) ([]models.Announcement, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error)
	GetBySlug(ctx context.Context, slug string) (*models.Announcement, error)
	Search(ctx context.Context, query string) ([]models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement) (*models.Announcement, error)
	Update(ctx context.Context, id uuid.UUID, updates validation.Updates) (*models.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetRecent(ctx context.Context, limit int) ([]models.Announcement, error)
	GetByPriority(ctx context.Context, priority models.AnnouncementPriority) ([]models.Announcement, error)
	GetUrgentAnnouncements(ctx context.Context) ([]models.Announcement, error)
	GetOrderedByPriority(ctx context.Context) ([]models.Announcement, error)
	GetPriorities() []models.AnnouncementPriority

	// ShouldShowAsNotification: urgent always; important while published within
	// ImportantNotificationWindow; never otherwise
	ShouldShowAsNotification(announcement *models.Announcement, now time.Time) bool

	GetNotificationAnnouncements(ctx context.Context) ([]models.Announcement, error)

	GetPriorityBadgeClass(priority models.AnnouncementPriority) string

	// List searches, filters by priority and paginates announcements in priority order
	List(ctx context.Context, query listing.Query) (listing.Page[models.Announcement], error)
}
