package serviceimpl

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/domain/validation"
	"school-cms/pkg/slug"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) services.CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CategoryServiceImpl) Create(ctx context.Context, input services.CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validation.NewError([]string{"Name is required"})
	}

	value, err := slug.Unique(ctx, name, s.categoryRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        name,
		Slug:        value,
		Description: input.Description,
		SortOrder:   input.SortOrder,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update keeps the slug so published links stay valid
func (s *CategoryServiceImpl) Update(ctx context.Context, id uuid.UUID, input services.CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, validation.NewError([]string{"Name is required"})
	}

	err := s.categoryRepo.Update(ctx, id, map[string]interface{}{
		"name":        name,
		"description": input.Description,
		"sort_order":  input.SortOrder,
	})
	if err != nil {
		return nil, err
	}
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.categoryRepo.Delete(ctx, id)
}
