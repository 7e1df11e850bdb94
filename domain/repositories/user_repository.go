package repositories

import (
	"context"

	"github.com/google/uuid"

	"school-cms/domain/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.UserProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*models.UserProfile, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]models.UserProfile, error)
	Count(ctx context.Context) (int64, error)
}
