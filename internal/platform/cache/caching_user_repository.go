// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"shop_backend/internal/feature/auth/domain/entity"
	"shop_backend/internal/feature/auth/usecase"
)

// CachingUserRepository decorates a UserRepository with Redis caching.
// It implements the decorator pattern, transparently adding read-through
// caching for user lookups without modifying the underlying repository.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that CachingUserRepository implements UserRepository.
var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create writes through to the underlying repository and invalidates the
// email key, so a subsequent lookup cannot see a stale entry.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := c.inner.Create(ctx, u); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.rdb.Del(ctx, c.emailKey(u.Email)).Err() // Best effort
	return nil
}

// FindByEmail retrieves a user, checking cache first then falling back to the database.
func (c *CachingUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return c.lookup(ctx, c.emailKey(email), func() (*entity.User, error) {
		return c.inner.FindByEmail(ctx, email)
	})
}

// FindByID retrieves a user, checking cache first then falling back to the database.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return c.lookup(ctx, c.idKey(id), func() (*entity.User, error) {
		return c.inner.FindByID(ctx, id)
	})
}

// lookup implements the read-through flow shared by both finders.
// Only successful lookups are cached; misses always hit the database so
// that a freshly registered user is visible immediately.
func (c *CachingUserRepository) lookup(ctx context.Context, key string, fetch func() (*entity.User, error)) (*entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return fetch()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.User
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := fetch()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// idKey generates the cache key for an ID lookup.
func (c *CachingUserRepository) idKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// emailKey generates the cache key for an email lookup.
func (c *CachingUserRepository) emailKey(email string) string {
	return fmt.Sprintf("%s:email:%s", c.namespace, safe(email))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
