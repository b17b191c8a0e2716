// Package config loads the process configuration once at startup into
// an immutable struct that is passed to constructors explicitly.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every environment-derived setting the service needs.
// Business logic never reads the environment directly.
type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"8000"`

	// JWTSecret signs every issued token. It must be set.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	// AccessTokenTTL is the lifetime of issued access tokens.
	AccessTokenTTL time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`

	// RefreshTokenTTL is the lifetime of issued refresh tokens.
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"72h"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"shop"`

	// RunMigrations runs the schema migration on startup when set.
	RunMigrations bool `env:"RUN_MIGRATIONS"`

	// RedisAddr enables the user lookup cache when non-empty.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// UserCacheTTL bounds staleness of cached user records.
	UserCacheTTL time.Duration `env:"USER_CACHE_TTL" envDefault:"5m"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
