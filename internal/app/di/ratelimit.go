package di

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"identity_backend/internal/app/config"
	"identity_backend/internal/platform/http/handler"
	"identity_backend/internal/shared/ratelimiter"
)

// NewLimiter creates a Limiter implementation.
// If Redis is available, it returns a Redis-backed limiter shared across instances.
// Otherwise, it falls back to an in-process limiter.
func NewLimiter(rdb *redis.Client, cfg config.RateLimitConfig) ratelimiter.Limiter {
	if rdb != nil {
		return ratelimiter.NewRedisLimiter(rdb, "ratelimit", cfg.Limit, cfg.Window)
	}
	return ratelimiter.NewRateLimiter(cfg.Limit, cfg.Window)
}

// NewReadinessChecks returns the dependency checks served on /readyz.
// Redis is only checked when it is in use.
func NewReadinessChecks(db *gorm.DB, rdb *redis.Client) map[string]handler.Check {
	checks := map[string]handler.Check{
		"database": func(ctx context.Context) error {
			if db == nil {
				return errors.New("database not configured")
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
	}
	return checks
}
