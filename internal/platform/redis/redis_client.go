// Package redis constructs the Redis client used for the user lookup cache.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/app/config"
)

// NewRedisClient connects to Redis using the given configuration and
// verifies the connection with a ping. Redis is optional; callers are
// expected to fall back to uncached operation when this fails.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.RedisAddr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.RedisAddr)
	return rdb, nil
}
