package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"school-cms/domain/models"
)

var ErrInvalidContentType = errors.New("type must be news or announcement")

type TrackViewInput struct {
	ContentType models.ContentType
	ContentID   uuid.UUID
	IPAddress   string
	UserAgent   string
	ViewerKey   string // visitor cookie, empty when the client has none
}

type TrackViewResult struct {
	ViewCount int64
	Counted   bool // false when the view was deduplicated
}

// ViewDeduplicator remembers viewers for a time window
type ViewDeduplicator interface {
	MarkSeen(ctx context.Context, key string, window time.Duration) (bool, error)
}

type ViewTrackingService interface {
	// TrackView counts one view of a published row and logs it best-effort.
	// Returns ErrInvalidContentType, repositories.ErrNotFound or a backend error.
	TrackView(ctx context.Context, input TrackViewInput) (*TrackViewResult, error)

	// Health checks that the backend can be reached
	Health(ctx context.Context) error

	TopContent(ctx context.Context, days, limit int) ([]models.ViewStats, error)

	// PurgeOldViews deletes page-view log rows older than days
	PurgeOldViews(ctx context.Context, days int) (int64, error)
}
