package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"school-cms/domain/dto"
	"school-cms/domain/services"
	"school-cms/pkg/logger"
	"school-cms/pkg/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login exchanges email and password for a JWT
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	token, user, err := h.authService.Login(c.UserContext(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			logger.Auth("LOGIN_FAILED", "Invalid credentials", map[string]interface{}{
				"email": req.Email,
				"ip":    c.IP(),
			})
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		case errors.Is(err, services.ErrAccountDisabled):
			return utils.ForbiddenResponse(c, "Account is disabled")
		}
		logger.AuthError("LOGIN_ERROR", "Login failed", err, map[string]interface{}{"email": req.Email})
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", err)
	}

	logger.Auth("LOGIN_SUCCESS", "User logged in", map[string]interface{}{
		"user_id": user.ID.String(),
		"ip":      c.IP(),
	})

	return utils.SuccessResponse(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  dto.UserToResponse(user),
	})
}

// GetCurrentUser returns the current authenticated user
func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Not authenticated")
	}

	user, err := h.authService.GetCurrentUser(c.UserContext(), userCtx.ID)
	if err != nil {
		return serviceError(c, err, "Failed to get user")
	}

	return utils.SuccessResponse(c, "User retrieved", dto.UserToResponse(user))
}
