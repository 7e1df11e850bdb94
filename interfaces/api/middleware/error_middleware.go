package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"school-cms/domain/repositories"
	"school-cms/domain/validation"
	"school-cms/pkg/logger"
	"school-cms/pkg/utils"
)

func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "An error occurred"

		var fiberErr *fiber.Error
		var validationErr *validation.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.As(err, &validationErr):
			return utils.ValidationErrorResponse(c, validationErr.Messages)
		case errors.Is(err, repositories.ErrNotFound):
			code = fiber.StatusNotFound
			message = "Resource not found"
		case errors.Is(err, repositories.ErrConflict):
			code = fiber.StatusConflict
			message = "Resource already exists"
		}

		if code >= fiber.StatusInternalServerError {
			logger.Error(logger.CategoryAPI, "error_handler", "Request error occurred", err, map[string]interface{}{"status_code": code, "path": c.Path(), "method": c.Method()})
		}

		return utils.ErrorResponse(c, code, message, err)
	}
}
