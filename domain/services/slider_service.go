package services

import (
	"context"

	"github.com/google/uuid"

	"school-cms/domain/models"
)

type SliderInput struct {
	Title    string
	Subtitle string
	ImageURL string
	LinkURL  string
	IsActive *bool
}

type SliderService interface {
	List(ctx context.Context) ([]models.SliderImage, error)
	ListActive(ctx context.Context) ([]models.SliderImage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.SliderImage, error)

	// Create appends the slide after the current last one
	Create(ctx context.Context, input SliderInput) (*models.SliderImage, error)

	Update(ctx context.Context, id uuid.UUID, input SliderInput) (*models.SliderImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Reorder(ctx context.Context, ids []uuid.UUID) error
}
