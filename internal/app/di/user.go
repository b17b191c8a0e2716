// Package di provides small composition helpers for dependency wiring.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"shop_backend/internal/feature/auth/adapters"
	"shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/platform/cache"
)

// NewUserRepository creates a UserRepository implementation.
// If Redis is available, the PostgreSQL repository is wrapped with a
// read-through cache. Otherwise the plain repository is returned.
func NewUserRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) usecase.UserRepository {
	repo := adapters.NewUserPostgres(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, ttl, repo, "users")
	}
	return repo
}
