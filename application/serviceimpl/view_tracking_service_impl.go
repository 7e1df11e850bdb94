package serviceimpl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/pkg/logger"
)

type ViewTrackingConfig struct {
	DedupEnabled bool
	DedupWindow  time.Duration
}

type ViewTrackingServiceImpl struct {
	newsRepo         repositories.NewsRepository
	announcementRepo repositories.AnnouncementRepository
	pageViewRepo     repositories.PageViewRepository
	dedup            services.ViewDeduplicator
	ping             func(ctx context.Context) error
	config           ViewTrackingConfig
	now              func() time.Time
}

// NewViewTrackingService builds the tracker. dedup may be nil, which disables
// deduplication regardless of config.
func NewViewTrackingService(
	newsRepo repositories.NewsRepository,
	announcementRepo repositories.AnnouncementRepository,
	pageViewRepo repositories.PageViewRepository,
	dedup services.ViewDeduplicator,
	ping func(ctx context.Context) error,
	config ViewTrackingConfig,
) services.ViewTrackingService {
	return &ViewTrackingServiceImpl{
		newsRepo:         newsRepo,
		announcementRepo: announcementRepo,
		pageViewRepo:     pageViewRepo,
		dedup:            dedup,
		ping:             ping,
		config:           config,
		now:              time.Now,
	}
}

// counter is the part of a content repository view tracking needs
type counter interface {
	IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error)
}

func (s *ViewTrackingServiceImpl) resolve(ctx context.Context, contentType models.ContentType, id uuid.UUID) (counter, int64, error) {
	switch contentType {
	case models.ContentTypeNews:
		item, err := s.newsRepo.GetPublishedByID(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		return s.newsRepo, item.ViewCount, nil
	case models.ContentTypeAnnouncement:
		item, err := s.announcementRepo.GetPublishedByID(ctx, id)
		if err != nil {
			return nil, 0, err
		}
		return s.announcementRepo, item.ViewCount, nil
	}
	return nil, 0, services.ErrInvalidContentType
}

func (s *ViewTrackingServiceImpl) TrackView(ctx context.Context, input services.TrackViewInput) (*services.TrackViewResult, error) {
	if !input.ContentType.IsValid() {
		return nil, services.ErrInvalidContentType
	}

	repo, current, err := s.resolve(ctx, input.ContentType, input.ContentID)
	if err != nil {
		return nil, err
	}

	if !s.firstView(ctx, input) {
		return &services.TrackViewResult{ViewCount: current, Counted: false}, nil
	}

	count, err := repo.IncrementViewCount(ctx, input.ContentID)
	if err != nil {
		logger.ViewsError("increment_failed", "Failed to increment view count", err, map[string]interface{}{
			"type": string(input.ContentType),
			"id":   input.ContentID.String(),
		})
		return nil, err
	}

	view := &models.PageView{
		ContentType: input.ContentType,
		ContentID:   input.ContentID,
		IPAddress:   input.IPAddress,
		UserAgent:   input.UserAgent,
		ViewedAt:    s.now().UTC(),
	}
	if err := s.pageViewRepo.Create(ctx, view); err != nil {
		logger.ViewsError("page_view_log_failed", "Failed to log page view", err, map[string]interface{}{
			"type": string(input.ContentType),
			"id":   input.ContentID.String(),
		})
	}

	return &services.TrackViewResult{ViewCount: count, Counted: true}, nil
}

// firstView reports whether this viewer has not been counted in the current
// window. Dedup store errors count the view.
func (s *ViewTrackingServiceImpl) firstView(ctx context.Context, input services.TrackViewInput) bool {
	if !s.config.DedupEnabled || s.dedup == nil || s.config.DedupWindow <= 0 {
		return true
	}

	key := dedupKey(input, s.now(), s.config.DedupWindow)
	first, err := s.dedup.MarkSeen(ctx, key, s.config.DedupWindow)
	if err != nil {
		logger.ViewsError("dedup_failed", "View dedup unavailable, counting view", err, nil)
		return true
	}
	return first
}

// dedupKey identifies a viewer, a content row and a time bucket
func dedupKey(input services.TrackViewInput, now time.Time, window time.Duration) string {
	viewer := input.ViewerKey
	if viewer == "" {
		sum := sha256.Sum256([]byte(input.IPAddress + "|" + input.UserAgent))
		viewer = hex.EncodeToString(sum[:12])
	}
	seconds := int64(window / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	bucket := now.Unix() / seconds
	return fmt.Sprintf("%s:%s:%s:%d", input.ContentType, input.ContentID, viewer, bucket)
}

func (s *ViewTrackingServiceImpl) Health(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func (s *ViewTrackingServiceImpl) TopContent(ctx context.Context, days, limit int) ([]models.ViewStats, error) {
	if days <= 0 {
		days = 7
	}
	if limit <= 0 {
		limit = 10
	}
	since := s.now().UTC().AddDate(0, 0, -days)
	return s.pageViewRepo.TopContent(ctx, since, limit)
}

func (s *ViewTrackingServiceImpl) PurgeOldViews(ctx context.Context, days int) (int64, error) {
	deleted, err := s.pageViewRepo.DeleteOlderThan(ctx, days)
	if err != nil {
		return 0, err
	}
	logger.Views("page_views_purged", "Old page views purged", map[string]interface{}{
		"days":    days,
		"deleted": deleted,
	})
	return deleted, nil
}
