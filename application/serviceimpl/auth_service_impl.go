package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/pkg/logger"
	"school-cms/pkg/utils"
)

type AuthServiceImpl struct {
	userRepo  repositories.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwtSecret string,
	tokenTTL time.Duration,
) services.AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthServiceImpl{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (string, *models.UserProfile, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.Auth("login_unknown_email", "Login attempt for unknown email", nil)
			return "", nil, services.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Auth("login_bad_password", "Login attempt with wrong password", map[string]interface{}{
			"user_id": user.ID.String(),
		})
		return "", nil, services.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", nil, services.ErrAccountDisabled
	}

	now := s.now().UTC()
	token, err := utils.GenerateToken(utils.UserContext{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	}, s.jwtSecret, s.tokenTTL, now)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.userRepo.Update(ctx, user.ID, map[string]interface{}{"last_login_at": now}); err != nil {
		logger.AuthError("last_login_update_failed", "Failed to record last login", err, map[string]interface{}{
			"user_id": user.ID.String(),
		})
	} else {
		user.LastLoginAt = &now
	}

	logger.Auth("login_success", "User logged in", map[string]interface{}{
		"user_id": user.ID.String(),
		"role":    string(user.Role),
	})
	return token, user, nil
}

func (s *AuthServiceImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *AuthServiceImpl) HashPassword(password string) (string, error) {
	return hashPassword(password)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
