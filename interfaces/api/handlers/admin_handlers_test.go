package handlers_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-cms/domain/dto"
	"school-cms/domain/models"
	"school-cms/domain/services"
)

func TestLoginAndMe(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.users.Create(context.Background(), services.CreateUserInput{
		Email:    "editor@school.test",
		Role:     models.RoleEditor,
		Password: "correct-horse",
	})
	require.NoError(t, err)

	resp, _ := env.do(request{method: "POST", path: "/api/v1/auth/login", body: dto.LoginRequest{Email: "editor@school.test", Password: "wrong-password"}})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, raw := env.do(request{method: "POST", path: "/api/v1/auth/login", body: dto.LoginRequest{Email: "editor@school.test", Password: "correct-horse"}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	login := decode[dto.LoginResponse](t, decode[envelope](t, raw).Data)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "editor", login.User.Role)

	resp, raw = env.do(request{method: "GET", path: "/api/v1/auth/me", token: login.Token})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "editor@school.test", decode[dto.UserResponse](t, decode[envelope](t, raw).Data).Email)

	resp, _ = env.do(request{method: "GET", path: "/api/v1/auth/me"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(request{method: "GET", path: "/api/v1/admin/news"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	editor, _ := env.tokenFor(models.RoleEditor)
	resp, _ = env.do(request{method: "GET", path: "/api/v1/admin/news", token: editor})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = env.do(request{method: "GET", path: "/api/v1/admin/users", token: editor})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	admin, _ := env.tokenFor(models.RoleAdmin)
	resp, _ = env.do(request{method: "GET", path: "/api/v1/admin/users", token: admin})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminNewsLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.tokenFor(models.RoleEditor)

	resp, raw := env.do(request{method: "POST", path: "/api/v1/admin/news", token: token, body: dto.CreateNewsRequest{Title: " "}})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[envelope](t, raw).Errors, "Title is required")

	resp, raw = env.do(request{method: "POST", path: "/api/v1/admin/news", token: token, body: dto.CreateNewsRequest{
		Title:    "Science Fair",
		Content:  "Students presented projects",
		Category: "Academics",
		Status:   "draft",
	}})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	created := decode[dto.NewsResponse](t, decode[envelope](t, raw).Data)
	assert.Equal(t, "science-fair", created.Slug)
	assert.Equal(t, 1, created.ReadingTime)
	assert.Nil(t, created.PublishedAt)

	path := "/api/v1/admin/news/" + created.ID.String()
	resp, raw = env.do(request{method: "PATCH", path: path, token: token, body: map[string]interface{}{
		"status":    "published",
		"title":     "Science Fair 2024",
		"viewCount": 999,
	}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	updated := decode[dto.NewsResponse](t, decode[envelope](t, raw).Data)
	assert.Equal(t, "Science Fair 2024", updated.Title)
	assert.Equal(t, "science-fair", updated.Slug, "slug is fixed at creation")
	assert.NotNil(t, updated.PublishedAt)
	assert.Zero(t, updated.ViewCount)

	resp, _ = env.do(request{method: "GET", path: "/api/v1/news/science-fair"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = env.do(request{method: "DELETE", path: path, token: token})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = env.do(request{method: "DELETE", path: path, token: token})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = env.do(request{method: "GET", path: "/api/v1/admin/news/not-a-uuid", token: token})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminAnnouncementPublishNotifies(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.tokenFor(models.RoleEditor)

	resp, raw := env.do(request{method: "POST", path: "/api/v1/admin/announcements", token: token, body: dto.CreateAnnouncementRequest{
		Title:    "School closed tomorrow",
		Content:  "Flooding",
		Excerpt:  "All classes are cancelled",
		Priority: "urgent",
		Status:   "published",
	}})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	created := decode[dto.AnnouncementResponse](t, decode[envelope](t, raw).Data)
	assert.True(t, created.ShowAsNotification)

	_, raw = env.do(request{method: "GET", path: "/api/v1/admin/notifications/unread-count", token: token})
	counts := decode[map[string]int64](t, decode[envelope](t, raw).Data)
	assert.Equal(t, int64(1), counts["unread"])

	resp, _ = env.do(request{method: "POST", path: "/api/v1/admin/announcements", token: token, body: dto.CreateAnnouncementRequest{
		Title: "Bad priority", Content: "x", Excerpt: "x", Priority: "critical",
	}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAdminAnnouncementRequiresExcerpt(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.tokenFor(models.RoleEditor)

	resp, raw := env.do(request{method: "POST", path: "/api/v1/admin/announcements", token: token, body: dto.CreateAnnouncementRequest{
		Title: "No summary", Content: "Body", Priority: "normal",
	}})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, string(raw))
	assert.Contains(t, decode[envelope](t, raw).Errors, "Excerpt is required")
}

func TestSliderAdmin(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.tokenFor(models.RoleEditor)

	var ids []string
	for _, title := range []string{"First", "Second", "Third"} {
		resp, raw := env.do(request{method: "POST", path: "/api/v1/admin/slider", token: token, body: dto.SliderRequest{
			Title:    title,
			ImageURL: "https://cdn.example.com/" + title + ".jpg",
		}})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
		ids = append(ids, decode[dto.SliderResponse](t, decode[envelope](t, raw).Data).ID.String())
	}

	resp, _ := env.do(request{method: "PUT", path: "/api/v1/admin/slider/reorder", token: token, body: dto.SliderReorderRequest{
		IDs: []string{ids[2], ids[0], ids[1]},
	}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, raw := env.do(request{method: "GET", path: "/api/v1/slider"})
	slides := decode[[]dto.SliderResponse](t, decode[envelope](t, raw).Data)
	require.Len(t, slides, 3)
	assert.Equal(t, "Third", slides[0].Title)
	assert.Equal(t, "First", slides[1].Title)

	resp, _ = env.do(request{method: "PUT", path: "/api/v1/admin/slider/reorder", token: token, body: dto.SliderReorderRequest{
		IDs: []string{"not-a-uuid"},
	}})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCategoryAdmin(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.tokenFor(models.RoleEditor)

	resp, raw := env.do(request{method: "POST", path: "/api/v1/admin/categories", token: token, body: dto.CategoryRequest{Name: "School Events"}})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(raw))
	created := decode[dto.CategoryResponse](t, decode[envelope](t, raw).Data)
	assert.Equal(t, "school-events", created.Slug)

	_, raw = env.do(request{method: "GET", path: "/api/v1/categories"})
	assert.Len(t, decode[[]dto.CategoryResponse](t, decode[envelope](t, raw).Data), 1)

	resp, _ = env.do(request{method: "DELETE", path: "/api/v1/admin/categories/" + uuid.NewString(), token: token})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminCannotDeleteSelf(t *testing.T) {
	env := newTestEnv(t)
	token, id := env.tokenFor(models.RoleAdmin)

	resp, _ := env.do(request{method: "DELETE", path: "/api/v1/admin/users/" + id.String(), token: token})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	_, other := env.tokenFor(models.RoleEditor)
	resp, _ = env.do(request{method: "DELETE", path: "/api/v1/admin/users/" + other.String(), token: token})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
