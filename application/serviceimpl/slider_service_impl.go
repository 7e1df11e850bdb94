package serviceimpl

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/domain/validation"
)

type SliderServiceImpl struct {
	sliderRepo repositories.SliderImageRepository
}

func NewSliderService(sliderRepo repositories.SliderImageRepository) services.SliderService {
	return &SliderServiceImpl{sliderRepo: sliderRepo}
}

func (s *SliderServiceImpl) List(ctx context.Context) ([]models.SliderImage, error) {
	return s.sliderRepo.List(ctx)
}

func (s *SliderServiceImpl) ListActive(ctx context.Context) ([]models.SliderImage, error) {
	return s.sliderRepo.ListActive(ctx)
}

func (s *SliderServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.SliderImage, error) {
	return s.sliderRepo.GetByID(ctx, id)
}

func (s *SliderServiceImpl) Create(ctx context.Context, input services.SliderInput) (*models.SliderImage, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, validation.NewError([]string{"Image URL is required"})
	}

	next, err := s.sliderRepo.NextSortOrder(ctx)
	if err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	image := &models.SliderImage{
		Title:     input.Title,
		Subtitle:  input.Subtitle,
		ImageURL:  strings.TrimSpace(input.ImageURL),
		LinkURL:   input.LinkURL,
		SortOrder: next,
		IsActive:  active,
	}
	if err := s.sliderRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *SliderServiceImpl) Update(ctx context.Context, id uuid.UUID, input services.SliderInput) (*models.SliderImage, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, validation.NewError([]string{"Image URL is required"})
	}

	updates := map[string]interface{}{
		"title":     input.Title,
		"subtitle":  input.Subtitle,
		"image_url": strings.TrimSpace(input.ImageURL),
		"link_url":  input.LinkURL,
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if err := s.sliderRepo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.sliderRepo.GetByID(ctx, id)
}

func (s *SliderServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.sliderRepo.Delete(ctx, id)
}

func (s *SliderServiceImpl) Reorder(ctx context.Context, ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return validation.NewError([]string{"Slide ids must be unique"})
		}
		seen[id] = true
	}
	return s.sliderRepo.Reorder(ctx, ids)
}
