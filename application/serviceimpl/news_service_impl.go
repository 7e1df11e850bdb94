package serviceimpl

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/domain/validation"
	"school-cms/pkg/listing"
)

type NewsServiceImpl struct {
	newsRepo repositories.NewsRepository
}

func NewNewsService(newsRepo repositories.NewsRepository) services.NewsService {
	return &NewsServiceImpl{newsRepo: newsRepo}
}

var newsListFields = listing.Fields[models.News]{
	Text: func(n models.News) []string { return []string{n.Title, n.Excerpt, n.Content} },
	Key:  func(n models.News) string { return n.Category },
}

func (s *NewsServiceImpl) GetAll(ctx context.Context) ([]models.News, error) {
	return s.newsRepo.GetAll(ctx)
}

func (s *NewsServiceImpl) GetPublished(ctx context.Context) ([]models.News, error) {
	return s.newsRepo.GetPublished(ctx)
}

func (s *NewsServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.News, error) {
	return s.newsRepo.GetByID(ctx, id)
}

func (s *NewsServiceImpl) GetBySlug(ctx context.Context, slug string) (*models.News, error) {
	return s.newsRepo.GetBySlug(ctx, slug)
}

func (s *NewsServiceImpl) Search(ctx context.Context, query string) ([]models.News, error) {
	return s.newsRepo.Search(ctx, query)
}

func (s *NewsServiceImpl) Create(ctx context.Context, news *models.News) (*models.News, error) {
	return s.newsRepo.Create(ctx, news)
}

func (s *NewsServiceImpl) Update(ctx context.Context, id uuid.UUID, updates validation.Updates) (*models.News, error) {
	return s.newsRepo.Update(ctx, id, updates)
}

func (s *NewsServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.newsRepo.Delete(ctx, id)
}

func (s *NewsServiceImpl) GetRecent(ctx context.Context, limit int) ([]models.News, error) {
	return s.newsRepo.GetRecent(ctx, limit)
}

func (s *NewsServiceImpl) GetCategories(ctx context.Context) ([]string, error) {
	return s.newsRepo.GetCategories(ctx)
}

func (s *NewsServiceImpl) GetByCategory(ctx context.Context, category string) ([]models.News, error) {
	return s.newsRepo.GetByCategory(ctx, category)
}

func (s *NewsServiceImpl) CalculateReadingTime(content string) int {
	words := len(strings.Fields(content))
	return (words + services.WordsPerMinute - 1) / services.WordsPerMinute
}

func (s *NewsServiceImpl) CreateWithReadingTime(ctx context.Context, news *models.News) (*models.News, error) {
	news.ReadingTime = s.CalculateReadingTime(news.Content)
	return s.newsRepo.Create(ctx, news)
}

func (s *NewsServiceImpl) List(ctx context.Context, query listing.Query) (listing.Page[models.News], error) {
	items, err := s.newsRepo.GetPublished(ctx)
	if err != nil {
		return listing.Page[models.News]{}, err
	}
	return listing.Apply(items, query, newsListFields), nil
}
