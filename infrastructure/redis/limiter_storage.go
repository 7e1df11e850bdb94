package redis

import (
	"github.com/gofiber/fiber/v2"
	fiberredis "github.com/gofiber/storage/redis"
)

// limiterDB keeps rate-limit counters away from the dedup keys
const limiterDB = 1

// NewLimiterStorage returns fiber storage shared by every API instance so rate
// limits hold across replicas.
func NewLimiterStorage(config RedisConfig) fiber.Storage {
	return fiberredis.New(fiberredis.Config{
		Host:     config.Host,
		Port:     config.port(),
		Password: config.Password,
		Database: config.DB + limiterDB,
		Reset:    false,
	})
}
