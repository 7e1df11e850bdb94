package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/domain/validation"
	"school-cms/pkg/listing"
	"school-cms/pkg/logger"
)

type AnnouncementServiceImpl struct {
	announcementRepo    repositories.AnnouncementRepository
	notificationService services.NotificationService
	now                 func() time.Time
}

// NewAnnouncementService wires the notification hook used when announcements
// are published. notificationService may be nil.
func NewAnnouncementService(
	announcementRepo repositories.AnnouncementRepository,
	notificationService services.NotificationService,
) services.AnnouncementService {
	return &AnnouncementServiceImpl{
		announcementRepo:    announcementRepo,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

var announcementListFields = listing.Fields[models.Announcement]{
	Text: func(a models.Announcement) []string { return []string{a.Title, a.Excerpt, a.Content} },
	Key:  func(a models.Announcement) string { return string(a.Priority) },
}

func (s *AnnouncementServiceImpl) GetAll(ctx context.Context) ([]models.Announcement, error) {
	return s.announcementRepo.GetAll(ctx)
}

func (s *AnnouncementServiceImpl) GetPublished(ctx context.Context) ([]models.Announcement, error) {
	return s.announcementRepo.GetPublished(ctx)
}

func (s *AnnouncementServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

func (s *AnnouncementServiceImpl) GetBySlug(ctx context.Context, slug string) (*models.Announcement, error) {
	return s.announcementRepo.GetBySlug(ctx, slug)
}

func (s *AnnouncementServiceImpl) Search(ctx context.Context, query string) ([]models.Announcement, error) {
	return s.announcementRepo.Search(ctx, query)
}

func (s *AnnouncementServiceImpl) Create(ctx context.Context, announcement *models.Announcement) (*models.Announcement, error) {
	created, err := s.announcementRepo.Create(ctx, announcement)
	if err != nil {
		return nil, err
	}
	s.notifyIfWorthy(ctx, created, false)
	return created, nil
}

func (s *AnnouncementServiceImpl) Update(ctx context.Context, id uuid.UUID, updates validation.Updates) (*models.Announcement, error) {
	var wasPublished bool
	if before, err := s.announcementRepo.GetByID(ctx, id); err == nil {
		wasPublished = before.IsPublished()
	}

	updated, err := s.announcementRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	s.notifyIfWorthy(ctx, updated, wasPublished)
	return updated, nil
}

// notifyIfWorthy raises an admin notification the first time an announcement
// becomes visible with a notification-worthy priority
func (s *AnnouncementServiceImpl) notifyIfWorthy(ctx context.Context, a *models.Announcement, wasPublished bool) {
	if s.notificationService == nil || wasPublished || !a.IsPublished() {
		return
	}
	if !s.ShouldShowAsNotification(a, s.now()) {
		return
	}

	err := s.notificationService.Notify(ctx, &models.Notification{
		Type:    models.NotificationAnnouncement,
		Title:   a.Title,
		Message: a.Excerpt,
		Link:    "/announcements/" + a.Slug,
	})
	if err != nil {
		logger.ContentError("announcement_notify_failed", "Failed to create announcement notification", err, map[string]interface{}{
			"announcement_id": a.ID.String(),
		})
	}
}

func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.announcementRepo.Delete(ctx, id)
}

func (s *AnnouncementServiceImpl) GetRecent(ctx context.Context, limit int) ([]models.Announcement, error) {
	return s.announcementRepo.GetRecent(ctx, limit)
}

func (s *AnnouncementServiceImpl) GetByPriority(ctx context.Context, priority models.AnnouncementPriority) ([]models.Announcement, error) {
	return s.announcementRepo.GetByPriority(ctx, priority)
}

func (s *AnnouncementServiceImpl) GetUrgentAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	return s.announcementRepo.GetUrgentAnnouncements(ctx)
}

func (s *AnnouncementServiceImpl) GetOrderedByPriority(ctx context.Context) ([]models.Announcement, error) {
	return s.announcementRepo.GetOrderedByPriority(ctx)
}

func (s *AnnouncementServiceImpl) GetPriorities() []models.AnnouncementPriority {
	return s.announcementRepo.GetPriorities()
}

func (s *AnnouncementServiceImpl) ShouldShowAsNotification(a *models.Announcement, now time.Time) bool {
	if a == nil {
		return false
	}
	switch a.Priority {
	case models.PriorityUrgent:
		return true
	case models.PriorityImportant:
		// Scheduled (future) announcements are not news yet
		if a.PublishedAt == nil || a.PublishedAt.After(now) {
			return false
		}
		return now.Sub(*a.PublishedAt) <= services.ImportantNotificationWindow
	}
	return false
}

func (s *AnnouncementServiceImpl) GetNotificationAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	ordered, err := s.announcementRepo.GetOrderedByPriority(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	worthy := make([]models.Announcement, 0, len(ordered))
	for i := range ordered {
		if s.ShouldShowAsNotification(&ordered[i], now) {
			worthy = append(worthy, ordered[i])
		}
	}
	return worthy, nil
}

func (s *AnnouncementServiceImpl) GetPriorityBadgeClass(priority models.AnnouncementPriority) string {
	switch priority {
	case models.PriorityUrgent:
		return services.BadgeUrgent
	case models.PriorityImportant:
		return services.BadgeImportant
	}
	return services.BadgeNormal
}

func (s *AnnouncementServiceImpl) List(ctx context.Context, query listing.Query) (listing.Page[models.Announcement], error) {
	items, err := s.announcementRepo.GetOrderedByPriority(ctx)
	if err != nil {
		return listing.Page[models.Announcement]{}, err
	}
	return listing.Apply(items, query, announcementListFields), nil
}
