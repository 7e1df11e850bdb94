package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"school-cms/domain/repositories"
	"school-cms/domain/validation"
	"school-cms/pkg/utils"
)

// serviceError maps domain errors onto the response envelope. message is
// used for the 500 case only.
func serviceError(c *fiber.Ctx, err error, message string) error {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		return utils.ValidationErrorResponse(c, validationErr.Messages)
	case errors.Is(err, repositories.ErrNotFound):
		return utils.NotFoundResponse(c, "Resource not found")
	case errors.Is(err, repositories.ErrConflict):
		return utils.ErrorResponse(c, fiber.StatusConflict, "Resource already exists", err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func badID(c *fiber.Ctx, err error) error {
	return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid ID", err)
}
