package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"school-cms/domain/models"
)

type PageViewRepository interface {
	Create(ctx context.Context, view *models.PageView) error

	// CountByContent counts logged views of one content row
	CountByContent(ctx context.Context, contentType models.ContentType, contentID uuid.UUID) (int64, error)

	// TopContent returns the most viewed content rows since the given time
	TopContent(ctx context.Context, since time.Time, limit int) ([]models.ViewStats, error)

	// DeleteOlderThan removes rows viewed more than days ago (retention cleanup)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}
