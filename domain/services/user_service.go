package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"school-cms/domain/models"
)

var ErrCannotDeleteSelf = errors.New("cannot delete your own account")

type CreateUserInput struct {
	Email    string
	FullName string
	Role     models.UserRole
	Password string
}

// UpdateUserInput changes only the non-nil fields
type UpdateUserInput struct {
	FullName *string
	Role     *models.UserRole
	IsActive *bool
	Password *string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*models.UserProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*models.UserProfile, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
	List(ctx context.Context, page, limit int) ([]models.UserProfile, int64, error)
}
