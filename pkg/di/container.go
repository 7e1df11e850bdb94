package di

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"school-cms/application/serviceimpl"
	"school-cms/domain/repositories"
	"school-cms/domain/services"
	"school-cms/infrastructure/postgres"
	"school-cms/infrastructure/redis"
	"school-cms/infrastructure/websocket"
	"school-cms/infrastructure/worker"
	"school-cms/interfaces/api/handlers"
	"school-cms/pkg/config"
	"school-cms/pkg/logger"
	"school-cms/pkg/scheduler"
)

const redisStartupTimeout = 3 * time.Second

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redis.RedisClient // nil when Redis is disabled or unreachable
	LimiterStorage fiber.Storage      // nil means in-memory rate limits
	Hub            *websocket.Hub
	JobScheduler   scheduler.JobScheduler
	PageViewWorker *worker.PageViewWorker // nil when page views are written inline

	// Repositories
	NewsRepository         repositories.NewsRepository
	AnnouncementRepository repositories.AnnouncementRepository
	PageViewRepository     repositories.PageViewRepository
	UserRepository         repositories.UserRepository
	CategoryRepository     repositories.CategoryRepository
	SliderImageRepository  repositories.SliderImageRepository
	NotificationRepository repositories.NotificationRepository

	// Services
	NewsService         services.NewsService
	AnnouncementService services.AnnouncementService
	ViewTrackingService services.ViewTrackingService
	AuthService         services.AuthService
	UserService         services.UserService
	CategoryService     services.CategoryService
	SliderService       services.SliderService
	NotificationService services.NotificationService
	HomeService         services.HomeService
}

func NewContainer() *Container {
	return &Container{}
}

// Initialize wires the full API process: config, database, optional Redis,
// repositories, services and the retention scheduler.
func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initWorkers()
	c.initServices()

	return c.initScheduler()
}

// InitializeDatabaseOnly is used by the command line tool, which needs no
// Redis, websocket or scheduler.
func (c *Container) InitializeDatabaseOnly() error {
	if err := c.initConfig(); err != nil {
		return err
	}
	if err := c.initDatabase(); err != nil {
		return err
	}
	c.initRepositories()
	c.initServices()
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", map[string]interface{}{"env": cfg.App.Env})
	return nil
}

func (c *Container) initDatabase() error {
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
		Debug:    c.Config.Database.Debug,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Startup("db_connected", "Database connected", nil)

	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Startup("db_migrated", "Database migrated", nil)
	return nil
}

func (c *Container) initInfrastructure() error {
	if err := c.initDatabase(); err != nil {
		return err
	}

	c.Hub = websocket.Manager
	c.initRedis()
	return nil
}

// initRedis connects to Redis when enabled. Every Redis feature is optional,
// so a failed ping leaves the client nil and the process continues.
func (c *Container) initRedis() {
	if !c.Config.Redis.Enabled {
		logger.Startup("redis_disabled", "Redis disabled, using in-memory rate limits", nil)
		return
	}

	redisConfig := redis.RedisConfig{
		Host:     c.Config.Redis.Host,
		Port:     c.Config.Redis.Port,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	}
	client := redis.NewRedisClient(redisConfig)

	ctx, cancel := context.WithTimeout(context.Background(), redisStartupTimeout)
	defer cancel()
	if err := client.Ping(ctx); err != nil {
		logger.StartupWarn("redis_connection_failed", "Redis connection failed, continuing without it", map[string]interface{}{"error": err.Error()})
		_ = client.Close()
		return
	}

	c.RedisClient = client
	// The storage constructor panics when Redis is unreachable, so it is
	// only created after a successful ping.
	c.LimiterStorage = redis.NewLimiterStorage(redisConfig)
	logger.Startup("redis_connected", "Redis connected", nil)
}

func (c *Container) initRepositories() {
	c.NewsRepository = postgres.NewNewsRepository(c.DB)
	c.AnnouncementRepository = postgres.NewAnnouncementRepository(c.DB)
	c.PageViewRepository = postgres.NewPageViewRepository(c.DB)
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.SliderImageRepository = postgres.NewSliderImageRepository(c.DB)
	c.NotificationRepository = postgres.NewNotificationRepository(c.DB)
	logger.Startup("repositories_initialized", "Repositories initialized", nil)
}

func (c *Container) initWorkers() {
	if !c.Config.Views.AsyncLog {
		return
	}
	c.PageViewWorker = worker.NewPageViewWorker(
		c.PageViewRepository,
		c.Config.Views.LogQueueSize,
		c.Config.Views.LogBatchSize,
		c.Config.Views.LogFlushInterval,
	)
	c.PageViewWorker.Start()
}

// pageViewWriter is the repository the tracking service writes through
func (c *Container) pageViewWriter() repositories.PageViewRepository {
	if c.PageViewWorker != nil {
		return c.PageViewWorker
	}
	return c.PageViewRepository
}

func (c *Container) initServices() {
	var broadcaster services.Broadcaster
	if c.Hub != nil {
		broadcaster = c.Hub
	}
	c.NotificationService = serviceimpl.NewNotificationService(c.NotificationRepository, broadcaster)

	c.NewsService = serviceimpl.NewNewsService(c.NewsRepository)
	c.AnnouncementService = serviceimpl.NewAnnouncementService(c.AnnouncementRepository, c.NotificationService)

	var dedup services.ViewDeduplicator
	if c.RedisClient != nil {
		dedup = redis.NewViewDedupStore(c.RedisClient)
	} else if c.Config.Views.DedupEnabled {
		logger.StartupWarn("view_dedup_unavailable", "View de-duplication enabled but Redis is unavailable", nil)
	}
	c.ViewTrackingService = serviceimpl.NewViewTrackingService(
		c.NewsRepository,
		c.AnnouncementRepository,
		c.pageViewWriter(),
		dedup,
		postgres.Pinger(c.DB),
		serviceimpl.ViewTrackingConfig{
			DedupEnabled: c.Config.Views.DedupEnabled,
			DedupWindow:  c.Config.Views.DedupWindow,
		},
	)

	c.AuthService = serviceimpl.NewAuthService(c.UserRepository, c.Config.JWT.Secret, c.Config.JWT.TTL)
	c.UserService = serviceimpl.NewUserService(c.UserRepository)
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)
	c.SliderService = serviceimpl.NewSliderService(c.SliderImageRepository)
	c.HomeService = serviceimpl.NewHomeService(c.SliderService, c.NewsService, c.AnnouncementService)

	logger.Startup("services_initialized", "Services initialized", nil)
}

func (c *Container) initScheduler() error {
	c.JobScheduler = scheduler.NewJobScheduler()

	if err := scheduler.RegisterPageViewPurge(
		c.JobScheduler,
		c.ViewTrackingService,
		c.Config.Retention.PurgeCron,
		c.Config.Retention.PageViewDays,
	); err != nil {
		return err
	}

	c.JobScheduler.Start()
	logger.Startup("scheduler_started", "Job scheduler started", nil)
	return nil
}

func (c *Container) Cleanup() error {
	logger.Startup("cleanup_started", "Starting cleanup...", nil)

	if c.JobScheduler != nil && c.JobScheduler.IsRunning() {
		c.JobScheduler.Stop()
	}

	// Flushes queued page views while the database is still open
	if c.PageViewWorker != nil {
		c.PageViewWorker.Stop()
	}

	if c.LimiterStorage != nil {
		if err := c.LimiterStorage.Close(); err != nil {
			logger.StartupWarn("limiter_storage_close_failed", "Failed to close rate limit storage", map[string]interface{}{"error": err.Error()})
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.StartupWarn("redis_close_failed", "Failed to close Redis connection", map[string]interface{}{"error": err.Error()})
		} else {
			logger.Startup("redis_closed", "Redis connection closed", nil)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.StartupWarn("db_close_failed", "Failed to close database connection", map[string]interface{}{"error": err.Error()})
			} else {
				logger.Startup("db_closed", "Database connection closed", nil)
			}
		}
	}

	logger.Startup("cleanup_completed", "Cleanup completed", nil)
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		NewsService:         c.NewsService,
		AnnouncementService: c.AnnouncementService,
		ViewTrackingService: c.ViewTrackingService,
		AuthService:         c.AuthService,
		UserService:         c.UserService,
		CategoryService:     c.CategoryService,
		SliderService:       c.SliderService,
		NotificationService: c.NotificationService,
		HomeService:         c.HomeService,
	}
}

func (c *Container) GetHandlerInfrastructure() *handlers.Infrastructure {
	return &handlers.Infrastructure{
		DB:    c.DB,
		Redis: c.RedisClient,
		Hub:   c.Hub,
	}
}
