package middleware

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-cms/pkg/config"
	"school-cms/pkg/logger"
	"school-cms/pkg/utils"
)

func TestMain(m *testing.M) {
	dir, _ := os.MkdirTemp("", "middleware-logs")
	logger.Init(dir, false)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(utils.UserContext{ID: uuid.New(), Role: role}, "secret", time.Hour, time.Now())
	require.NoError(t, err)
	return token
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/editor", Protected("secret"), RequireRole("admin", "editor"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/admin", Protected("secret"), AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/ws", ProtectedWithQueryToken("secret"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestProtectedAndRoles(t *testing.T) {
	app := newProtectedApp()

	cases := []struct {
		name   string
		path   string
		header string
		want   int
	}{
		{"no header", "/editor", "", fiber.StatusUnauthorized},
		{"bad scheme", "/editor", "Basic abc", fiber.StatusUnauthorized},
		{"garbage token", "/editor", "Bearer abc", fiber.StatusUnauthorized},
		{"editor allowed", "/editor", "Bearer " + tokenFor(t, "editor"), fiber.StatusOK},
		{"editor denied admin", "/admin", "Bearer " + tokenFor(t, "editor"), fiber.StatusForbidden},
		{"admin allowed", "/admin", "Bearer " + tokenFor(t, "admin"), fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestQueryToken(t *testing.T) {
	app := newProtectedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/ws?token="+tokenFor(t, "editor"), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTrackViewRateLimiter(t *testing.T) {
	cfg := &config.RateLimitConfig{Enabled: true, TrackMaxRequests: 2}
	app := fiber.New()
	app.Post("/track", TrackViewRateLimiter(cfg, nil), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	var last int
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/track", nil))
		require.NoError(t, err)
		last = resp.StatusCode
	}
	assert.Equal(t, fiber.StatusTooManyRequests, last)
}

func TestErrorHandlerUsesFiberCode(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
