package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"school-cms/pkg/logger"
)

// LoggerMiddleware writes one api log entry per request
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		data := map[string]interface{}{
			"method":   c.Method(),
			"path":     c.Path(),
			"status":   status,
			"ip":       c.IP(),
			"duration": time.Since(start).String(),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			logger.Error(logger.CategoryAPI, "request", "Request failed", err, data)
		case status >= fiber.StatusBadRequest:
			logger.Warn(logger.CategoryAPI, "request", "Request rejected", data)
		default:
			logger.Debug(logger.CategoryAPI, "request", "Request handled", data)
		}
		return err
	}
}
