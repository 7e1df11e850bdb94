package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-cms/domain/dto"
	"school-cms/domain/models"
)

func TestTrackViewIncrementsEveryCall(t *testing.T) {
	env := newTestEnv(t)
	news := env.seedNews("Sports Day", models.StatusPublished)

	body := dto.TrackViewRequest{Type: "news", ID: news.ID.String()}

	resp, raw := env.do(request{method: "POST", path: "/api/track-view", body: body})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	first := decode[dto.TrackViewResponse](t, raw)
	assert.True(t, first.Success)
	assert.Equal(t, int64(1), first.NewViewCount)
	assert.Equal(t, "View tracked successfully", first.Message)

	var visitor *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "visitor_id" {
			visitor = c
		}
	}
	require.NotNil(t, visitor, "first call issues a visitor cookie")

	_, raw = env.do(request{method: "POST", path: "/api/track-view", body: body, cookie: visitor})
	assert.Equal(t, int64(2), decode[dto.TrackViewResponse](t, raw).NewViewCount)
}

func TestTrackViewAnnouncement(t *testing.T) {
	env := newTestEnv(t)
	a, err := env.ann.Create(context.Background(), &models.Announcement{
		BaseContent: models.BaseContent{Title: "Exam week", Content: "Schedule", Excerpt: "Exam timetable", Status: models.StatusPublished},
		Priority:    models.PriorityNormal,
	})
	require.NoError(t, err)

	resp, raw := env.do(request{method: "POST", path: "/api/track-view", body: dto.TrackViewRequest{Type: "announcement", ID: a.ID.String()}})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, int64(1), decode[dto.TrackViewResponse](t, raw).NewViewCount)
}

func TestTrackViewRejections(t *testing.T) {
	env := newTestEnv(t)
	draft := env.seedNews("Unpublished", models.StatusDraft)

	cases := []struct {
		name string
		body interface{}
		want int
	}{
		{"malformed json", "{not json", fiber.StatusBadRequest},
		{"unknown type", dto.TrackViewRequest{Type: "page", ID: uuid.NewString()}, fiber.StatusBadRequest},
		{"missing id", dto.TrackViewRequest{Type: "news"}, fiber.StatusBadRequest},
		{"id not a uuid", dto.TrackViewRequest{Type: "news", ID: "42"}, fiber.StatusBadRequest},
		{"unknown id", dto.TrackViewRequest{Type: "news", ID: uuid.NewString()}, fiber.StatusNotFound},
		{"draft content", dto.TrackViewRequest{Type: "news", ID: draft.ID.String()}, fiber.StatusNotFound},
		{"wrong table", dto.TrackViewRequest{Type: "announcement", ID: draft.ID.String()}, fiber.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := env.do(request{method: "POST", path: "/api/track-view", body: tc.body})
			assert.Equal(t, tc.want, resp.StatusCode)

			errResp := decode[dto.TrackViewErrorResponse](t, raw)
			assert.False(t, errResp.Success)
			assert.NotEmpty(t, errResp.Error)
		})
	}

	reloaded, err := env.news.GetByID(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Zero(t, reloaded.ViewCount)
}

func TestTrackViewHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, raw := env.do(request{method: "GET", path: "/api/track-view"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	health := decode[dto.TrackViewHealthResponse](t, raw)
	assert.Equal(t, "healthy", health.Status)
	assert.NotNil(t, health.Timestamp)

	sqlDB, err := env.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp, raw = env.do(request{method: "GET", path: "/api/track-view"})
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	health = decode[dto.TrackViewHealthResponse](t, raw)
	assert.Equal(t, "error", health.Status)
	assert.NotEmpty(t, health.Error)
}
