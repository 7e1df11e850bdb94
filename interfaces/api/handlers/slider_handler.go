package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"school-cms/domain/dto"
	"school-cms/domain/services"
	"school-cms/pkg/utils"
)

type SliderHandler struct {
	sliderService services.SliderService
}

func NewSliderHandler(sliderService services.SliderService) *SliderHandler {
	return &SliderHandler{sliderService: sliderService}
}

// ListActive is the public slider, in display order
func (h *SliderHandler) ListActive(c *fiber.Ctx) error {
	slides, err := h.sliderService.ListActive(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to load slider")
	}
	return utils.SuccessResponse(c, "Slider retrieved successfully", dto.SliderListToResponse(slides))
}

func (h *SliderHandler) List(c *fiber.Ctx) error {
	slides, err := h.sliderService.List(c.UserContext())
	if err != nil {
		return serviceError(c, err, "Failed to load slider")
	}
	return utils.SuccessResponse(c, "Slider retrieved successfully", dto.SliderListToResponse(slides))
}

func (h *SliderHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	slide, err := h.sliderService.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(c, err, "Failed to load slide")
	}
	return utils.SuccessResponse(c, "Slide retrieved successfully", dto.SliderToResponse(slide))
}

// parseSliderInput writes the 400 response itself and reports done=true
// when the body is unusable.
func parseSliderInput(c *fiber.Ctx) (input services.SliderInput, done bool, err error) {
	var req dto.SliderRequest
	if err := c.BodyParser(&req); err != nil {
		return input, true, utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		return input, true, utils.ValidationErrorResponse(c, errs)
	}
	return services.SliderInput{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
		LinkURL:  req.LinkURL,
		IsActive: req.IsActive,
	}, false, nil
}

func (h *SliderHandler) Create(c *fiber.Ctx) error {
	input, done, err := parseSliderInput(c)
	if done {
		return err
	}

	slide, err := h.sliderService.Create(c.UserContext(), input)
	if err != nil {
		return serviceError(c, err, "Failed to create slide")
	}
	return utils.CreatedResponse(c, "Slide created successfully", dto.SliderToResponse(slide))
}

func (h *SliderHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	input, done, err := parseSliderInput(c)
	if done {
		return err
	}

	slide, err := h.sliderService.Update(c.UserContext(), id, input)
	if err != nil {
		return serviceError(c, err, "Failed to update slide")
	}
	return utils.SuccessResponse(c, "Slide updated successfully", dto.SliderToResponse(slide))
}

func (h *SliderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}

	if err := h.sliderService.Delete(c.UserContext(), id); err != nil {
		return serviceError(c, err, "Failed to delete slide")
	}
	return utils.SuccessResponse(c, "Slide deleted successfully", nil)
}

// Reorder takes every slide id in the new display order
func (h *SliderHandler) Reorder(c *fiber.Ctx) error {
	var req dto.SliderReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		return utils.ValidationErrorResponse(c, errs)
	}

	ids := make([]uuid.UUID, len(req.IDs))
	for i, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badID(c, err)
		}
		ids[i] = id
	}

	if err := h.sliderService.Reorder(c.UserContext(), ids); err != nil {
		return serviceError(c, err, "Failed to reorder slider")
	}
	return utils.SuccessResponse(c, "Slider reordered successfully", nil)
}
