package services

import (
	"context"

	"github.com/google/uuid"

	"school-cms/domain/models"
)

type CategoryInput struct {
	Name        string
	Description string
	SortOrder   int
}

type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)

	// Create derives a unique slug from the name
	Create(ctx context.Context, input CategoryInput) (*models.Category, error)

	Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
