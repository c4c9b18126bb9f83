package cache

import (
	"context"
	"fmt"
	"time"

	"advocate-directory/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient creates the Redis client for the result cache. An
// unreachable Redis is logged but does not fail startup: the result
// cache degrades every operation to a miss, so the service stays up
// and serves straight from the database.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("Redis unreachable, result cache will degrade to misses: %v", err)
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return client
}
