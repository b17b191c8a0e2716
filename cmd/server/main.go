package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"shop_backend/internal/app/config"
	"shop_backend/internal/app/di"
	"shop_backend/internal/app/router"
	authhandler "shop_backend/internal/feature/auth/transport/handler"
	authusecase "shop_backend/internal/feature/auth/usecase"
	"shop_backend/internal/platform/db"
	jwtmw "shop_backend/internal/platform/jwt"
	"shop_backend/internal/platform/profile"
	platformredis "shop_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// db
	gormDB := db.OpenDB(cfg)

	// Redis (optional, cache only)
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := di.NewUserRepository(rdb, gormDB, cfg.UserCacheTTL)

	// Token issuer and profile generator
	issuer := jwtmw.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	profiles := profile.NewGenerator()

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, issuer, profiles)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)

	r := router.NewRouter(authH, cfg.JWTSecret)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
