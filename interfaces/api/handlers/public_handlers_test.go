package handlers_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-cms/domain/dto"
	"school-cms/domain/models"
	"school-cms/pkg/listing"
)

func TestNewsListPaginatesPublished(t *testing.T) {
	env := newTestEnv(t)
	for i := 1; i <= 11; i++ {
		env.seedNews(fmt.Sprintf("Article %02d", i), models.StatusPublished)
	}
	env.seedNews("Hidden draft", models.StatusDraft)

	resp, raw := env.do(request{method: "GET", path: "/api/v1/news?page=2"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	page := decode[listing.Page[dto.NewsResponse]](t, decode[envelope](t, raw).Data)
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestNewsListHugePageIsEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.seedNews("Only article", models.StatusPublished)

	resp, raw := env.do(request{method: "GET", path: "/api/v1/news?page=1024819115206086202"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))

	page := decode[listing.Page[dto.NewsResponse]](t, decode[envelope](t, raw).Data)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Total)
}

func TestNewsListSearchAndCategory(t *testing.T) {
	env := newTestEnv(t)
	env.seedNews("Robotics Club Wins", models.StatusPublished)
	env.seedNews("Library Week", models.StatusPublished)

	_, raw := env.do(request{method: "GET", path: "/api/v1/news?search=robotics&category=Events"})
	page := decode[listing.Page[dto.NewsResponse]](t, decode[envelope](t, raw).Data)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Robotics Club Wins", page.Items[0].Title)
	assert.NotEmpty(t, page.Items[0].PublishedAtFormatted)

	_, raw = env.do(request{method: "GET", path: "/api/v1/news?category=Sports"})
	page = decode[listing.Page[dto.NewsResponse]](t, decode[envelope](t, raw).Data)
	assert.Zero(t, page.Total)
}

func TestNewsBySlugHidesDrafts(t *testing.T) {
	env := newTestEnv(t)
	published := env.seedNews("Graduation", models.StatusPublished)
	draft := env.seedNews("Draft Plans", models.StatusDraft)

	resp, raw := env.do(request{method: "GET", path: "/api/v1/news/" + published.Slug})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, published.ID, decode[dto.NewsResponse](t, decode[envelope](t, raw).Data).ID)

	resp, _ = env.do(request{method: "GET", path: "/api/v1/news/" + draft.Slug})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = env.do(request{method: "GET", path: "/api/v1/news/no-such-article"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNewsCategories(t *testing.T) {
	env := newTestEnv(t)
	env.seedNews("Open Day", models.StatusPublished)

	_, raw := env.do(request{method: "GET", path: "/api/v1/news/categories"})
	assert.Equal(t, []string{"Events"}, decode[[]string](t, decode[envelope](t, raw).Data))
}

func TestAnnouncementsOrderedByPriority(t *testing.T) {
	env := newTestEnv(t)
	for _, p := range []models.AnnouncementPriority{models.PriorityNormal, models.PriorityUrgent, models.PriorityImportant} {
		_, err := env.ann.Create(context.Background(), &models.Announcement{
			BaseContent: models.BaseContent{Title: string(p) + " notice", Content: "x", Excerpt: "Summary", Status: models.StatusPublished},
			Priority:    p,
		})
		require.NoError(t, err)
	}

	_, raw := env.do(request{method: "GET", path: "/api/v1/announcements"})
	page := decode[listing.Page[dto.AnnouncementResponse]](t, decode[envelope](t, raw).Data)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "urgent", page.Items[0].Priority)
	assert.Equal(t, "bg-red-100 text-red-800", page.Items[0].PriorityBadgeClass)
	assert.True(t, page.Items[0].ShowAsNotification)
	assert.Equal(t, "normal", page.Items[2].Priority)
	assert.False(t, page.Items[2].ShowAsNotification)

	_, raw = env.do(request{method: "GET", path: "/api/v1/announcements?priority=important"})
	page = decode[listing.Page[dto.AnnouncementResponse]](t, decode[envelope](t, raw).Data)
	assert.Equal(t, 1, page.Total)

	_, raw = env.do(request{method: "GET", path: "/api/v1/announcements/notifications"})
	banner := decode[[]dto.AnnouncementResponse](t, decode[envelope](t, raw).Data)
	assert.Len(t, banner, 2)
}

func TestHome(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 5; i++ {
		env.seedNews(fmt.Sprintf("Story %d", i), models.StatusPublished)
	}

	resp, raw := env.do(request{method: "GET", path: "/api/v1/home"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	home := decode[dto.HomeResponse](t, decode[envelope](t, raw).Data)
	assert.Len(t, home.RecentNews, 3)
	assert.Empty(t, home.Slides)
}

func TestContactCreatesNotification(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(request{method: "POST", path: "/api/v1/contact", body: dto.ContactRequest{Email: "parent@example.com"}})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, decode[envelope](t, raw).Errors)

	resp, _ = env.do(request{method: "POST", path: "/api/v1/contact", body: dto.ContactRequest{
		Name:    "Somchai",
		Email:   "parent@example.com",
		Subject: "Enrollment",
		Message: "When does registration open?",
	}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	token, _ := env.tokenFor(models.RoleEditor)
	_, raw = env.do(request{method: "GET", path: "/api/v1/admin/notifications", token: token})
	list := decode[dto.NotificationListResponse](t, decode[envelope](t, raw).Data)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, "contact", list.Notifications[0].Type)
	assert.Equal(t, int64(1), list.Unread)
}
