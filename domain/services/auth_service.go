package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"school-cms/domain/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
)

type AuthService interface {
	// Login checks the password and returns a signed token
	Login(ctx context.Context, email, password string) (token string, user *models.UserProfile, err error)

	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)

	HashPassword(password string) (string, error)
}
