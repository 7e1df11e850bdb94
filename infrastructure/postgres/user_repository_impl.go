package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
)

const userTable = "user_profiles"

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.UserProfile) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	return translate("create", userTable, r.db.WithContext(ctx).Create(user).Error)
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	var user models.UserProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate("get_by_id", userTable, err)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&user).Error
	if err != nil {
		return nil, translate("get_by_email", userTable, err)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.UserProfile{}).Where("id = ?", id).Updates(updates)
	return affected("update", userTable, result)
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UserProfile{})
	return affected("delete", userTable, result)
}

func (r *UserRepositoryImpl) List(ctx context.Context, offset, limit int) ([]models.UserProfile, error) {
	users := make([]models.UserProfile, 0)
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	if err != nil {
		return nil, translate("list", userTable, err)
	}
	return users, nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserProfile{}).Count(&count).Error
	return count, translate("count", userTable, err)
}
