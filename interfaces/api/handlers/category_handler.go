package handlers

import (
	"github.com/gofiber/fiber/v2"

	"school-cms/domain/dto"
	"school-cms/domain/services"
	"school-cms/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to load categories")
	}

	resp := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		resp[i] = dto.CategoryToResponse(&categories[i])
	}
	return utils.SuccessResponse(c, "Categories retrieved successfully", resp)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	category, err := h.categoryService.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err, "Failed to load category")
	}
	return utils.SuccessResponse(c, "Category retrieved successfully", dto.CategoryToResponse(category))
}

func (h *CategoryHandler) parse(c *fiber.Ctx) (services.CategoryInput, []string, error) {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return services.CategoryInput{}, nil, err
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		return services.CategoryInput{}, errs, nil
	}
	return services.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	}, nil, nil
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	input, errs, err := h.parse(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	category, err := h.categoryService.Create(c.UserContext(), input)
	if err != nil {
		return serviceError(c, err, "Failed to create category")
	}
	return utils.CreatedResponse(c, "Category created successfully", dto.CategoryToResponse(category))
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	input, errs, err := h.parse(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	category, err := h.categoryService.Update(c.UserContext(), id, input)
	if err != nil {
		return serviceError(c, err, "Failed to update category")
	}
	return utils.SuccessResponse(c, "Category updated successfully", dto.CategoryToResponse(category))
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	if err := h.categoryService.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err, "Failed to delete category")
	}
	return utils.SuccessResponse(c, "Category deleted successfully", nil)
}
