package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/validation"
)

func newNews(title string, status models.ContentStatus) *models.News {
	return &models.News{
		BaseContent: models.BaseContent{
			Title:   title,
			Content: "Body of " + title,
			Excerpt: "Excerpt of " + title,
			Status:  status,
		},
		Category: "Academics",
	}
}

func TestNewsCreateDefaults(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newNews("Science Fair 2024!", ""))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "science-fair-2024", created.Slug)
	assert.Equal(t, models.StatusDraft, created.Status)
	assert.Nil(t, created.PublishedAt)
	assert.Zero(t, created.ViewCount)
}

func TestNewsCreatePublishedStampsPublishedAt(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))

	created, err := repo.Create(context.Background(), newNews("Sports Day", models.StatusPublished))
	require.NoError(t, err)

	require.NotNil(t, created.PublishedAt)
	assert.WithinDuration(t, time.Now(), *created.PublishedAt, 5*time.Second)
}

func TestCreateIdenticalTitlesGetDistinctSlugs(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, newNews("Open House", models.StatusPublished))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newNews("Open House", models.StatusPublished))
	require.NoError(t, err)

	assert.Equal(t, "open-house", first.Slug)
	assert.Equal(t, "open-house-1", second.Slug)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreateValidationFailureSkipsInsert(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	item := newNews("", models.StatusPublished)
	item.Category = " "

	_, err := repo.Create(ctx, item)

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, validation.MsgTitleRequired)
	assert.Contains(t, vErr.Messages, "Category is required")

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateAppliesAllowListAndPublishedAt(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newNews("Library Week", models.StatusDraft))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, validation.Updates{
		"title":      "Library Week Extended",
		"status":     "published",
		"view_count": 999,
		"slug":       "hijacked",
	})
	require.NoError(t, err)

	assert.Equal(t, "Library Week Extended", updated.Title)
	assert.Equal(t, "library-week", updated.Slug)
	assert.Zero(t, updated.ViewCount)
	assert.Equal(t, models.StatusPublished, updated.Status)
	require.NotNil(t, updated.PublishedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	drafted, err := repo.Update(ctx, created.ID, validation.Updates{"status": "draft"})
	require.NoError(t, err)
	assert.Nil(t, drafted.PublishedAt)
}

func TestUpdateErrors(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Update(ctx, uuid.New(), validation.Updates{"title": "Anything"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.Update(ctx, uuid.New(), validation.Updates{"title": strings.Repeat("a", 201)})
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{validation.MsgTitleTooLong}, vErr.Messages)
}

func TestPublishedVisibility(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	draft, err := repo.Create(ctx, newNews("Hidden Draft", models.StatusDraft))
	require.NoError(t, err)
	live, err := repo.Create(ctx, newNews("Visible News", models.StatusPublished))
	require.NoError(t, err)

	_, err = repo.GetBySlug(ctx, draft.Slug)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetPublishedByID(ctx, draft.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	found, err := repo.GetBySlug(ctx, live.Slug)
	require.NoError(t, err)
	assert.Equal(t, live.ID, found.ID)

	published, err := repo.GetPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, live.ID, published[0].ID)

	byID, err := repo.GetByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.Title, byID.Title)
}

func TestSearchIsCaseInsensitiveAndEscaped(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	scholarship := newNews("Scholarship Results", models.StatusPublished)
	scholarship.Content = "Awarded to 100% of applicants"
	_, err := repo.Create(ctx, scholarship)
	require.NoError(t, err)

	_, err = repo.Create(ctx, newNews("Music Concert", models.StatusPublished))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newNews("Scholarship Draft", models.StatusDraft))
	require.NoError(t, err)

	results, err := repo.Search(ctx, "SCHOLARSHIP")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Scholarship Results", results[0].Title)

	results, err = repo.Search(ctx, "100%")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = repo.Search(ctx, "%")
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = repo.Search(ctx, "_")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestGetRecentLimits(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	for _, title := range []string{"One", "Two", "Three", "Four"} {
		_, err := repo.Create(ctx, newNews(title, models.StatusPublished))
		require.NoError(t, err)
	}

	recent, err := repo.GetRecent(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, recent, 3)
}

func TestIncrementViewCount(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newNews("Popular", models.StatusPublished))
	require.NoError(t, err)

	first, err := repo.IncrementViewCount(ctx, created.ID)
	require.NoError(t, err)
	second, err := repo.IncrementViewCount(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)

	reloaded, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), reloaded.ViewCount)
	assert.Equal(t, created.UpdatedAt.Unix(), reloaded.UpdatedAt.Unix())

	_, err = repo.IncrementViewCount(ctx, uuid.New())
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, newNews("Short Lived", models.StatusDraft))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), repositories.ErrNotFound)

	exists, err := repo.SlugExists(ctx, created.Slug)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewsCategories(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))
	ctx := context.Background()

	for _, c := range []struct {
		title, category string
		status          models.ContentStatus
	}{
		{"A", "Sports", models.StatusPublished},
		{"B", "Academics", models.StatusPublished},
		{"C", "Sports", models.StatusPublished},
		{"D", "Arts", models.StatusDraft},
	} {
		item := newNews(c.title, c.status)
		item.Category = c.category
		_, err := repo.Create(ctx, item)
		require.NoError(t, err)
	}

	categories, err := repo.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Academics", "Sports"}, categories)

	sports, err := repo.GetByCategory(ctx, "Sports")
	require.NoError(t, err)
	assert.Len(t, sports, 2)
}

func TestAllowedFieldsReturnsCopy(t *testing.T) {
	repo := NewNewsRepository(newTestDB(t))

	fields := repo.AllowedFields()
	fields[0] = "view_count"

	assert.Equal(t, "title", repo.AllowedFields()[0])
}
