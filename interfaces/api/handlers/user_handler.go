package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"school-cms/domain/dto"
	"school-cms/domain/models"
	"school-cms/domain/services"
	"school-cms/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	users, total, err := h.userService.List(c.UserContext(), page, limit)
	if err != nil {
		return serviceError(c, err, "Failed to load users")
	}

	resp := make([]*dto.UserResponse, len(users))
	for i := range users {
		resp[i] = dto.UserToResponse(&users[i])
	}
	return utils.SuccessResponse(c, "Users retrieved successfully", fiber.Map{
		"users": resp,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	user, err := h.userService.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err, "Failed to load user")
	}
	return utils.SuccessResponse(c, "User retrieved successfully", dto.UserToResponse(user))
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	user, err := h.userService.Create(c.UserContext(), services.CreateUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     models.UserRole(req.Role),
		Password: req.Password,
	})
	if err != nil {
		return serviceError(c, err, "Failed to create user")
	}
	return utils.CreatedResponse(c, "User created successfully", dto.UserToResponse(user))
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	input := services.UpdateUserInput{
		FullName: req.FullName,
		IsActive: req.IsActive,
		Password: req.Password,
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		input.Role = &role
	}

	user, err := h.userService.Update(c.UserContext(), id, input)
	if err != nil {
		return serviceError(c, err, "Failed to update user")
	}
	return utils.SuccessResponse(c, "User updated successfully", dto.UserToResponse(user))
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	actor, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	if err := h.userService.Delete(c.UserContext(), actor.ID, id); err != nil {
		if errors.Is(err, services.ErrCannotDeleteSelf) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "You cannot delete your own account", err)
		}
		return serviceError(c, err, "Failed to delete user")
	}
	return utils.SuccessResponse(c, "User deleted successfully", nil)
}
