package repositories

import (
	"context"

	"github.com/google/uuid"

	"school-cms/domain/models"
)

type SliderImageRepository interface {
	Create(ctx context.Context, image *models.SliderImage) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SliderImage, error)
	List(ctx context.Context) ([]models.SliderImage, error)
	ListActive(ctx context.Context) ([]models.SliderImage, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Reorder assigns sort_order 0..n-1 following ids, in one transaction
	Reorder(ctx context.Context, ids []uuid.UUID) error

	// NextSortOrder returns one past the current maximum sort_order
	NextSortOrder(ctx context.Context) (int, error)
}
