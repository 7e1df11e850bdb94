package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Views     ViewsConfig
	Retention RetentionConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Name   string
	Port   string
	Env    string
	LogDir string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Debug    bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
}

type RateLimitConfig struct {
	Enabled           bool
	MaxRequests       int
	WindowSeconds     int
	AuthMaxRequests   int
	AuthWindowSeconds int
	TrackMaxRequests  int
}

// ViewsConfig controls view counting. De-duplication is disabled by
// default: every accepted track-view call increments.
type ViewsConfig struct {
	DedupEnabled bool
	DedupWindow  time.Duration

	// AsyncLog moves page_views inserts to a background writer
	AsyncLog         bool
	LogQueueSize     int
	LogBatchSize     int
	LogFlushInterval time.Duration
}

type RetentionConfig struct {
	PageViewDays int
	PurgeCron    string
}

type CORSConfig struct {
	AllowOrigins string
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists (optional for production)
	_ = godotenv.Load()

	jwtSecret := getEnv("JWT_SECRET", "your-secret-key")

	config := &Config{
		App: AppConfig{
			Name:   getEnv("APP_NAME", "School CMS"),
			Port:   getEnv("APP_PORT", "3000"),
			Env:    getEnv("APP_ENV", "development"),
			LogDir: getEnv("LOG_DIR", "logs"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "school_cms"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			Debug:    getEnvBool("DB_DEBUG", false),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			Enabled:  getEnvBool("REDIS_ENABLED", true),
		},
		JWT: JWTConfig{
			Secret: jwtSecret,
			TTL:    getEnvDuration("JWT_TTL", 24*time.Hour),
		},
		RateLimit: RateLimitConfig{
			Enabled:           getEnvBool("RATE_LIMIT_ENABLED", true),
			MaxRequests:       getEnvInt("RATE_LIMIT_MAX", 120),
			WindowSeconds:     getEnvInt("RATE_LIMIT_WINDOW", 60),
			AuthMaxRequests:   getEnvInt("RATE_LIMIT_AUTH_MAX", 10),
			AuthWindowSeconds: getEnvInt("RATE_LIMIT_AUTH_WINDOW", 300),
			TrackMaxRequests:  getEnvInt("RATE_LIMIT_TRACK_MAX", 30),
		},
		Views: ViewsConfig{
			DedupEnabled: getEnvBool("VIEW_DEDUP_ENABLED", false),
			DedupWindow:  getEnvDuration("VIEW_DEDUP_WINDOW", 30*time.Minute),

			AsyncLog:         getEnvBool("VIEW_LOG_ASYNC", true),
			LogQueueSize:     getEnvInt("VIEW_LOG_QUEUE_SIZE", 1000),
			LogBatchSize:     getEnvInt("VIEW_LOG_BATCH_SIZE", 50),
			LogFlushInterval: getEnvDuration("VIEW_LOG_FLUSH_INTERVAL", 2*time.Second),
		},
		Retention: RetentionConfig{
			PageViewDays: getEnvInt("PAGE_VIEW_RETENTION_DAYS", 365),
			PurgeCron:    getEnv("PAGE_VIEW_PURGE_CRON", "0 3 * * *"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
	}

	return config, nil
}

// IsProduction reports whether the app runs with APP_ENV=production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Env, "production")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}
