package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
)

const categoryTable = "categories"

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	return translate("create", categoryTable, r.db.WithContext(ctx).Create(category).Error)
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, translate("get_by_id", categoryTable, err)
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, translate("get_by_slug", categoryTable, err)
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]models.Category, error) {
	categories := make([]models.Category, 0)
	err := r.db.WithContext(ctx).Order("sort_order ASC").Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, translate("list", categoryTable, err)
	}
	return categories, nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(updates)
	return affected("update", categoryTable, result)
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Category{})
	return affected("delete", categoryTable, result)
}

func (r *CategoryRepositoryImpl) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error
	if err != nil {
		return false, translate("slug_exists", categoryTable, err)
	}
	return count > 0, nil
}
