package services

import (
	"context"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/validation"
	"school-cms/pkg/listing"
)

// WordsPerMinute is the reading speed used for reading time estimates
const WordsPerMinute = 200

// NewsService is a thin layer over the news repository plus reading time.
type NewsService interface {
	GetAll(ctx context.Context) ([]models.News, error)
	GetPublished(ctx context.Context) ([]models.News, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.News, error)
	GetBySlug(ctx context.Context, slug string) (*models.News, error)
	Search(ctx context.Context, query string) ([]models.News, error)
	Create(ctx context.Context, news *models.News) (*models.News, error)
	Update(ctx context.Context, id uuid.UUID, updates validation.Updates) (*models.News, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetRecent(ctx context.Context, limit int) ([]models.News, error)
	GetCategories(ctx context.Context) ([]string, error)
	GetByCategory(ctx context.Context, category string) ([]models.News, error)

	// CalculateReadingTime returns ceil(words / WordsPerMinute)
	CalculateReadingTime(content string) int

	// CreateWithReadingTime fills ReadingTime from the content, then creates
	CreateWithReadingTime(ctx context.Context, news *models.News) (*models.News, error)

	// List searches, filters by category and paginates published news
	List(ctx context.Context, query listing.Query) (listing.Page[models.News], error)
}
