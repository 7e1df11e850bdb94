package postgres

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
)

const pageViewTable = "page_views"

type PageViewRepositoryImpl struct {
	db *gorm.DB
}

func NewPageViewRepository(db *gorm.DB) repositories.PageViewRepository {
	return &PageViewRepositoryImpl{db: db}
}

// Create truncates the client IP and user agent to their column widths
func (r *PageViewRepositoryImpl) Create(ctx context.Context, view *models.PageView) error {
	if view.ID == uuid.Nil {
		view.ID = uuid.New()
	}
	if view.ViewedAt.IsZero() {
		view.ViewedAt = time.Now().UTC()
	}
	view.IPAddress = truncate(view.IPAddress, models.MaxPageViewIPLength)
	view.UserAgent = truncate(view.UserAgent, models.MaxPageViewUserAgentLength)

	return translate("create", pageViewTable, r.db.WithContext(ctx).Create(view).Error)
}

func (r *PageViewRepositoryImpl) CountByContent(ctx context.Context, contentType models.ContentType, contentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PageView{}).
		Where("content_type = ? AND content_id = ?", contentType, contentID).
		Count(&count).Error
	return count, translate("count_by_content", pageViewTable, err)
}

func (r *PageViewRepositoryImpl) TopContent(ctx context.Context, since time.Time, limit int) ([]models.ViewStats, error) {
	stats := make([]models.ViewStats, 0)
	err := r.db.WithContext(ctx).Model(&models.PageView{}).
		Select("content_type, content_id, COUNT(*) AS views").
		Where("viewed_at >= ?", since).
		Group("content_type, content_id").
		Order("views DESC").
		Limit(limit).
		Scan(&stats).Error
	if err != nil {
		return nil, translate("top_content", pageViewTable, err)
	}
	return stats, nil
}

func (r *PageViewRepositoryImpl) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -days)
	result := r.db.WithContext(ctx).
		Where("viewed_at < ?", threshold).
		Delete(&models.PageView{})

	return result.RowsAffected, translate("delete_older_than", pageViewTable, result.Error)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
