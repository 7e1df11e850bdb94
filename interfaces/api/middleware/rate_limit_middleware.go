package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"school-cms/pkg/config"
)

func passThrough(c *fiber.Ctx) error {
	return c.Next()
}

func newLimiter(max int, window time.Duration, storage fiber.Storage, code, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return code + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error": fiber.Map{
					"code":    code,
					"message": message,
				},
			})
		},
		Storage:                storage,
		SkipFailedRequests:     false,
		SkipSuccessfulRequests: false,
	})
}

// RateLimiter returns a general rate limiting middleware. storage may be nil
// for per-process memory counters.
func RateLimiter(cfg *config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	if !cfg.Enabled {
		return passThrough
	}
	return newLimiter(cfg.MaxRequests, time.Duration(cfg.WindowSeconds)*time.Second, storage,
		"RATE_LIMIT_EXCEEDED", "Too many requests. Please try again later.")
}

// AuthRateLimiter returns a stricter rate limiting middleware for auth endpoints
func AuthRateLimiter(cfg *config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	if !cfg.Enabled {
		return passThrough
	}
	return newLimiter(cfg.AuthMaxRequests, time.Duration(cfg.AuthWindowSeconds)*time.Second, storage,
		"AUTH_RATE_LIMIT_EXCEEDED", "Too many authentication attempts. Please try again later.")
}

// TrackViewRateLimiter bounds view-count posts per client per minute
func TrackViewRateLimiter(cfg *config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	if !cfg.Enabled || cfg.TrackMaxRequests <= 0 {
		return passThrough
	}
	return newLimiter(cfg.TrackMaxRequests, time.Minute, storage,
		"TRACK_RATE_LIMIT_EXCEEDED", "Too many view events. Please slow down.")
}
