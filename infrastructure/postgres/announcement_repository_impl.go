package postgres

import (
	"context"

	"gorm.io/gorm"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
)

var announcementAllowedFields = []string{
	"title", "content", "excerpt", "featured_image", "priority",
	"status", "published_at",
}

// priorityRankSQL orders by severity. Sorting the raw column would be lexical.
const priorityRankSQL = "CASE priority WHEN 'urgent' THEN 3 WHEN 'important' THEN 2 WHEN 'normal' THEN 1 ELSE 0 END DESC"

type AnnouncementRepositoryImpl struct {
	*ContentRepositoryImpl[models.Announcement, *models.Announcement]
}

func NewAnnouncementRepository(db *gorm.DB) repositories.AnnouncementRepository {
	return &AnnouncementRepositoryImpl{
		ContentRepositoryImpl: NewContentRepository[models.Announcement, *models.Announcement](db, announcementAllowedFields),
	}
}

func (r *AnnouncementRepositoryImpl) GetByPriority(ctx context.Context, priority models.AnnouncementPriority) ([]models.Announcement, error) {
	db := r.published(ctx).
		Where("priority = ?", priority).
		Order("published_at DESC")
	return r.findMany(db, "get_by_priority")
}

func (r *AnnouncementRepositoryImpl) GetUrgentAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	return r.GetByPriority(ctx, models.PriorityUrgent)
}

func (r *AnnouncementRepositoryImpl) GetOrderedByPriority(ctx context.Context) ([]models.Announcement, error) {
	db := r.published(ctx).
		Order(priorityRankSQL).
		Order("published_at DESC")
	return r.findMany(db, "get_ordered_by_priority")
}

func (r *AnnouncementRepositoryImpl) GetPriorities() []models.AnnouncementPriority {
	return []models.AnnouncementPriority{
		models.PriorityUrgent,
		models.PriorityImportant,
		models.PriorityNormal,
	}
}
