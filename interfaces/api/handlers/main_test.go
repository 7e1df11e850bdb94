package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"school-cms/application/serviceimpl"
	"school-cms/domain/models"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/infrastructure/postgres"
	ws "school-cms/infrastructure/websocket"
	"school-cms/interfaces/api/handlers"
	"school-cms/interfaces/api/middleware"
	"school-cms/interfaces/api/routes"
	"school-cms/pkg/config"
	"school-cms/pkg/logger"
	"school-cms/pkg/utils"
)

const testSecret = "test-secret"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "handlers-logs")
	if err != nil {
		panic(err)
	}
	if err := logger.Init(dir, false); err != nil {
		panic(err)
	}

	code := m.Run()

	logger.Default().Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

// testEnv is a full API wired to an in-memory SQLite database
type testEnv struct {
	t     *testing.T
	app   *fiber.App
	db    *gorm.DB
	news  repositories.NewsRepository
	ann   repositories.AnnouncementRepository
	users services.UserService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), postgres.GormConfig(false))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, postgres.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		App: config.AppConfig{Name: "School CMS", Env: "test"},
		JWT: config.JWTConfig{Secret: testSecret, TTL: time.Hour},
	}

	newsRepo := postgres.NewNewsRepository(db)
	annRepo := postgres.NewAnnouncementRepository(db)
	userRepo := postgres.NewUserRepository(db)
	hub := ws.NewHub()

	notificationService := serviceimpl.NewNotificationService(postgres.NewNotificationRepository(db), hub)
	newsService := serviceimpl.NewNewsService(newsRepo)
	announcementService := serviceimpl.NewAnnouncementService(annRepo, notificationService)
	sliderService := serviceimpl.NewSliderService(postgres.NewSliderImageRepository(db))
	userService := serviceimpl.NewUserService(userRepo)

	svc := &handlers.Services{
		NewsService:         newsService,
		AnnouncementService: announcementService,
		ViewTrackingService: serviceimpl.NewViewTrackingService(
			newsRepo, annRepo, postgres.NewPageViewRepository(db), nil, postgres.Pinger(db),
			serviceimpl.ViewTrackingConfig{},
		),
		AuthService:         serviceimpl.NewAuthService(userRepo, testSecret, time.Hour),
		UserService:         userService,
		CategoryService:     serviceimpl.NewCategoryService(postgres.NewCategoryRepository(db)),
		SliderService:       sliderService,
		NotificationService: notificationService,
		HomeService:         serviceimpl.NewHomeService(sliderService, newsService, announcementService),
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handlers.NewHandlers(svc, &handlers.Infrastructure{DB: db, Hub: hub}, cfg)
	routes.SetupRoutes(app, h, cfg, nil)

	return &testEnv{t: t, app: app, db: db, news: newsRepo, ann: annRepo, users: userService}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Errors  []string        `json:"errors"`
}

type request struct {
	method string
	path   string
	body   interface{}
	token  string
	cookie *http.Cookie
}

func (e *testEnv) do(r request) (*http.Response, []byte) {
	e.t.Helper()

	var body io.Reader
	switch b := r.body.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(e.t, err)
		body = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(r.method, r.path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	if r.cookie != nil {
		req.AddCookie(r.cookie)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(e.t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(e.t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func (e *testEnv) seedNews(title string, status models.ContentStatus) *models.News {
	e.t.Helper()
	n, err := e.news.Create(context.Background(), &models.News{
		BaseContent: models.BaseContent{Title: title, Content: "Body of " + title, Status: status},
		Category:    "Events",
	})
	require.NoError(e.t, err)
	return n
}

// tokenFor creates a user with role and logs them in through the API
func (e *testEnv) tokenFor(role models.UserRole) (string, uuid.UUID) {
	e.t.Helper()

	email := fmt.Sprintf("%s-%s@school.test", role, uuid.NewString()[:8])
	user, err := e.users.Create(context.Background(), services.CreateUserInput{
		Email:    email,
		Role:     role,
		Password: "correct-horse",
	})
	require.NoError(e.t, err)

	token, err := utils.GenerateToken(utils.UserContext{ID: user.ID, Email: email, Role: string(role)}, testSecret, time.Hour, time.Now())
	require.NoError(e.t, err)
	return token, user.ID
}
