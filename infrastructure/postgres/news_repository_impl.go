package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
)

var newsAllowedFields = []string{
	"title", "content", "excerpt", "featured_image", "category",
	"status", "author", "reading_time", "published_at",
}

type NewsRepositoryImpl struct {
	*ContentRepositoryImpl[models.News, *models.News]
}

func NewNewsRepository(db *gorm.DB) repositories.NewsRepository {
	return &NewsRepositoryImpl{
		ContentRepositoryImpl: NewContentRepository[models.News, *models.News](db, newsAllowedFields),
	}
}

func (r *NewsRepositoryImpl) GetCategories(ctx context.Context) ([]string, error) {
	categories := make([]string, 0)
	err := r.published(ctx).
		Where("category IS NOT NULL AND category <> ''").
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, r.fail("get_categories", err)
	}
	return categories, nil
}

func (r *NewsRepositoryImpl) GetByCategory(ctx context.Context, category string) ([]models.News, error) {
	db := r.published(ctx).
		Where("category = ?", strings.TrimSpace(category)).
		Order("published_at DESC")
	return r.findMany(db, "get_by_category")
}
