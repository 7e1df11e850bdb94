package serviceimpl

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/validation"
	"school-cms/pkg/logger"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "serviceimpl-logs")
	if err != nil {
		panic(err)
	}
	if err := logger.Init(dir, false); err != nil {
		panic(err)
	}
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

var errBackend = errors.New("connection refused")

// fakeNewsRepo implements only what the services under test call.
// Anything else panics through the nil embedded interface.
type fakeNewsRepo struct {
	repositories.NewsRepository

	items      map[uuid.UUID]*models.News
	created    []*models.News
	incrErr    error
	incrCalls  int
	publishErr error
}

func newFakeNewsRepo(items ...*models.News) *fakeNewsRepo {
	r := &fakeNewsRepo{items: map[uuid.UUID]*models.News{}}
	for _, item := range items {
		r.items[item.ID] = item
	}
	return r
}

func (r *fakeNewsRepo) Create(_ context.Context, item *models.News) (*models.News, error) {
	r.created = append(r.created, item)
	return item, nil
}

func (r *fakeNewsRepo) GetPublished(context.Context) ([]models.News, error) {
	if r.publishErr != nil {
		return nil, r.publishErr
	}
	out := []models.News{}
	for _, item := range r.items {
		if item.IsPublished() {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *fakeNewsRepo) GetRecent(ctx context.Context, limit int) ([]models.News, error) {
	items, err := r.GetPublished(ctx)
	if len(items) > limit {
		items = items[:limit]
	}
	return items, err
}

func (r *fakeNewsRepo) GetPublishedByID(_ context.Context, id uuid.UUID) (*models.News, error) {
	item, ok := r.items[id]
	if !ok || item.Status != models.StatusPublished {
		return nil, repositories.ErrNotFound
	}
	return item, nil
}

func (r *fakeNewsRepo) IncrementViewCount(_ context.Context, id uuid.UUID) (int64, error) {
	r.incrCalls++
	if r.incrErr != nil {
		return 0, r.incrErr
	}
	r.items[id].ViewCount++
	return r.items[id].ViewCount, nil
}

type fakeAnnouncementRepo struct {
	repositories.AnnouncementRepository

	items map[uuid.UUID]*models.Announcement
	order []uuid.UUID
}

func newFakeAnnouncementRepo(items ...*models.Announcement) *fakeAnnouncementRepo {
	r := &fakeAnnouncementRepo{items: map[uuid.UUID]*models.Announcement{}}
	for _, item := range items {
		r.items[item.ID] = item
		r.order = append(r.order, item.ID)
	}
	return r
}

func (r *fakeAnnouncementRepo) Create(_ context.Context, item *models.Announcement) (*models.Announcement, error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Status == models.StatusPublished && item.PublishedAt == nil {
		now := time.Now()
		item.PublishedAt = &now
	}
	r.items[item.ID] = item
	r.order = append(r.order, item.ID)
	return item, nil
}

func (r *fakeAnnouncementRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Announcement, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *fakeAnnouncementRepo) Update(_ context.Context, id uuid.UUID, updates validation.Updates) (*models.Announcement, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	if status, ok := validation.StatusOf(updates); ok {
		item.Status = status
		if status == models.StatusPublished && item.PublishedAt == nil {
			now := time.Now()
			item.PublishedAt = &now
		}
	}
	return item, nil
}

func (r *fakeAnnouncementRepo) GetOrderedByPriority(context.Context) ([]models.Announcement, error) {
	out := []models.Announcement{}
	for _, id := range r.order {
		if r.items[id].IsPublished() {
			out = append(out, *r.items[id])
		}
	}
	return out, nil
}

func (r *fakeAnnouncementRepo) GetPublishedByID(_ context.Context, id uuid.UUID) (*models.Announcement, error) {
	item, ok := r.items[id]
	if !ok || item.Status != models.StatusPublished {
		return nil, repositories.ErrNotFound
	}
	return item, nil
}

type fakePageViewRepo struct {
	repositories.PageViewRepository

	views []models.PageView
	err   error
}

func (r *fakePageViewRepo) Create(_ context.Context, view *models.PageView) error {
	if r.err != nil {
		return r.err
	}
	r.views = append(r.views, *view)
	return nil
}

func (r *fakePageViewRepo) DeleteOlderThan(context.Context, int) (int64, error) {
	return int64(len(r.views)), r.err
}

type fakeNotificationRepo struct {
	repositories.NotificationRepository

	created []*models.Notification
	err     error
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *models.Notification) error {
	if r.err != nil {
		return r.err
	}
	n.ID = uuid.New()
	r.created = append(r.created, n)
	return nil
}

type fakeBroadcaster struct {
	messages []string
}

func (b *fakeBroadcaster) Broadcast(msgType string, _ interface{}) int {
	b.messages = append(b.messages, msgType)
	return 1
}

type fakeUserRepo struct {
	repositories.UserRepository

	users   map[string]*models.UserProfile
	updates []map[string]interface{}
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.UserProfile, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) Update(_ context.Context, _ uuid.UUID, updates map[string]interface{}) error {
	r.updates = append(r.updates, updates)
	return nil
}

type fakeDedup struct {
	seen map[string]bool
	err  error
}

func (d *fakeDedup) MarkSeen(_ context.Context, key string, _ time.Duration) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	if d.seen[key] {
		return false, nil
	}
	d.seen[key] = true
	return true, nil
}

func publishedNews(title, category string) *models.News {
	now := time.Now()
	return &models.News{
		BaseContent: models.BaseContent{
			ID:          uuid.New(),
			Title:       title,
			Content:     "content",
			Status:      models.StatusPublished,
			PublishedAt: &now,
		},
		Category: category,
	}
}
