package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"school-cms/pkg/logger"
	"school-cms/pkg/utils"
)

// Protected validates the bearer token and stores the user in c.Locals("user")
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization header")
		}

		token := utils.ExtractTokenFromHeader(authHeader)
		if token == "" {
			return utils.UnauthorizedResponse(c, "Invalid authorization header format")
		}

		userCtx, err := utils.ValidateTokenStringToUUID(token, jwtSecret)
		if err != nil {
			return tokenError(c, err)
		}

		c.Locals("user", userCtx)
		return c.Next()
	}
}

func tokenError(c *fiber.Ctx, err error) error {
	logger.Auth("token_rejected", "Token validation failed", map[string]interface{}{
		"path":   c.Path(),
		"reason": err.Error(),
	})
	switch {
	case errors.Is(err, utils.ErrExpiredToken):
		return utils.UnauthorizedResponse(c, "Token has expired")
	case errors.Is(err, utils.ErrInvalidToken):
		return utils.UnauthorizedResponse(c, "Invalid token")
	case errors.Is(err, utils.ErrMissingToken):
		return utils.UnauthorizedResponse(c, "Missing token")
	}
	return utils.UnauthorizedResponse(c, "Token validation failed")
}

// RequireRole lets the request through when the user has any of roles
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return utils.UnauthorizedResponse(c, "User not authenticated")
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return utils.ForbiddenResponse(c, "Insufficient permissions")
	}
}

// AdminOnly middleware ensures only admin users can access
func AdminOnly() fiber.Handler {
	return RequireRole("admin")
}

// ProtectedWithQueryToken accepts the token from the header or the ?token= query.
// Browsers cannot set headers on websocket upgrades.
func ProtectedWithQueryToken(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := utils.ExtractTokenFromHeader(c.Get("Authorization"))
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			return utils.UnauthorizedResponse(c, "Missing authorization")
		}

		userCtx, err := utils.ValidateTokenStringToUUID(token, jwtSecret)
		if err != nil {
			return tokenError(c, err)
		}

		c.Locals("user", userCtx)
		return c.Next()
	}
}
