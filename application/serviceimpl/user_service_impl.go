package serviceimpl

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/domain/validation"
	"school-cms/pkg/logger"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) services.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Create(ctx context.Context, input services.CreateUserInput) (*models.UserProfile, error) {
	if input.Role == "" {
		input.Role = models.RoleEditor
	}
	if !input.Role.IsValid() {
		return nil, validation.NewError([]string{"Role must be one of admin, editor"})
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.UserProfile{
		Email:        strings.TrimSpace(input.Email),
		FullName:     strings.TrimSpace(input.FullName),
		Role:         input.Role,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Auth("user_created", "User created", map[string]interface{}{
		"user_id": user.ID.String(),
		"role":    string(user.Role),
	})
	return user, nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserServiceImpl) Update(ctx context.Context, id uuid.UUID, input services.UpdateUserInput) (*models.UserProfile, error) {
	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, validation.NewError([]string{"Role must be one of admin, editor"})
		}
		updates["role"] = *input.Role
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hash
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserServiceImpl) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return services.ErrCannotDeleteSelf
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Auth("user_deleted", "User deleted", map[string]interface{}{
		"user_id":  id.String(),
		"actor_id": actorID.String(),
	})
	return nil
}

func (s *UserServiceImpl) List(ctx context.Context, page, limit int) ([]models.UserProfile, int64, error) {
	page, limit = normalizePage(page, limit)
	users, err := s.userRepo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// normalizePage clamps 1-based page and limit for admin listings
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
