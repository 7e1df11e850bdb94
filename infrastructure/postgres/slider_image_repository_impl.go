package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
)

const sliderTable = "slider_images"

type SliderImageRepositoryImpl struct {
	db *gorm.DB
}

func NewSliderImageRepository(db *gorm.DB) repositories.SliderImageRepository {
	return &SliderImageRepositoryImpl{db: db}
}

func (r *SliderImageRepositoryImpl) Create(ctx context.Context, image *models.SliderImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	return translate("create", sliderTable, r.db.WithContext(ctx).Create(image).Error)
}

func (r *SliderImageRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.SliderImage, error) {
	var image models.SliderImage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, translate("get_by_id", sliderTable, err)
	}
	return &image, nil
}

func (r *SliderImageRepositoryImpl) List(ctx context.Context) ([]models.SliderImage, error) {
	return r.find(r.db.WithContext(ctx), "list")
}

func (r *SliderImageRepositoryImpl) ListActive(ctx context.Context) ([]models.SliderImage, error) {
	return r.find(r.db.WithContext(ctx).Where("is_active = ?", true), "list_active")
}

func (r *SliderImageRepositoryImpl) find(db *gorm.DB, operation string) ([]models.SliderImage, error) {
	images := make([]models.SliderImage, 0)
	if err := db.Order("sort_order ASC").Order("created_at ASC").Find(&images).Error; err != nil {
		return nil, translate(operation, sliderTable, err)
	}
	return images, nil
}

func (r *SliderImageRepositoryImpl) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.SliderImage{}).Where("id = ?", id).Updates(updates)
	return affected("update", sliderTable, result)
}

func (r *SliderImageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SliderImage{})
	return affected("delete", sliderTable, result)
}

func (r *SliderImageRepositoryImpl) Reorder(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range ids {
			result := tx.Model(&models.SliderImage{}).Where("id = ?", id).Update("sort_order", i)
			if err := affected("reorder", sliderTable, result); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SliderImageRepositoryImpl) NextSortOrder(ctx context.Context) (int, error) {
	var maxOrder *int
	err := r.db.WithContext(ctx).Model(&models.SliderImage{}).
		Select("MAX(sort_order)").
		Row().
		Scan(&maxOrder)
	if err != nil {
		return 0, translate("next_sort_order", sliderTable, err)
	}
	if maxOrder == nil {
		return 0, nil
	}
	return *maxOrder + 1, nil
}
