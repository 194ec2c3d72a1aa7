package app

import (
	"context"
	"strings"

	"go-sitebooks/internal/middleware"
	"go-sitebooks/internal/shared/connection"
	"go-sitebooks/internal/shared/env"
	"go-sitebooks/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(connection.DSN(), connection.PoolConfigFromEnv(), 5)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb, err := connectRedis()
	if err != nil {
		return err
	}

	store, err := storage.NewFromEnv(context.Background())
	if err != nil {
		return err
	}
	if local, ok := store.(*storage.LocalStorage); ok {
		if base := env.String("EXPORT_PUBLIC_BASE_URL", "/files/exports"); strings.HasPrefix(base, "/") {
			router.Static(base, local.Dir())
		}
	}

	// 2. Global middleware
	router.Use(corsMiddleware())
	router.Use(middleware.RequestID())

	// 3. Register Modules & Routes
	if err := registerModules(router, sqlDB, gormDB, rdb, store, logger); err != nil {
		return err
	}

	logger.Info("application modules registered", zap.Bool("redis", rdb != nil))
	return nil
}

// connectRedis returns a nil client when REDIS_ADDR is unset; caching,
// idempotency and rebuild locking are then skipped.
func connectRedis() (*redis.Client, error) {
	addr := env.String("REDIS_ADDR", "")
	if addr == "" {
		zap.L().Named("app").Warn("REDIS_ADDR not set, running without redis")
		return nil, nil
	}
	return connection.ConnectRedisWithRetry(addr, 5)
}

// corsMiddleware allows every origin outside production. In production only
// CORS_ALLOWED_ORIGINS are allowed, and none when it is empty.
func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if strings.EqualFold(env.String("GO_ENV", ""), "production") {
		origins := env.List("CORS_ALLOWED_ORIGINS")
		if len(origins) == 0 {
			cfg.AllowOriginFunc = func(string) bool { return false }
		} else {
			cfg.AllowOrigins = origins
		}
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AddAllowMethods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS")
	cfg.AddAllowHeaders("Origin", "Content-Type", "Authorization", "Idempotency-Key", "X-Request-ID")
	cfg.AddExposeHeaders("Content-Length", "Content-Disposition", "X-Request-ID")
	cfg.AllowCredentials = true
	return cors.New(cfg)
}
