package di

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"identity_backend/internal/app/config"
	"identity_backend/internal/feature/logins/domain"
	"identity_backend/internal/shared/ratelimiter"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestNewLoginsHandler(t *testing.T) {
	t.Parallel()

	h, err := NewLoginsHandler(setupTestDB(t), config.LoginsConfig{UsersTable: "AspNetUsers", UserLoginsTable: "AspNetUserLogins"})
	require.NoError(t, err)
	assert.NotNil(t, h)

	_, err = NewLoginsHandler(nil, config.LoginsConfig{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestNewLimiter(t *testing.T) {
	t.Parallel()

	cfg := config.RateLimitConfig{Limit: 5, Window: time.Minute}

	assert.IsType(t, &ratelimiter.RateLimiter{}, NewLimiter(nil, cfg))

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = rdb.Close() })
	assert.IsType(t, &ratelimiter.RedisLimiter{}, NewLimiter(rdb, cfg))
}

func TestNewReadinessChecks(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)

	checks := NewReadinessChecks(db, nil)
	require.Len(t, checks, 1)
	assert.NoError(t, checks["database"](context.Background()))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	checks = NewReadinessChecks(db, rdb)
	require.Len(t, checks, 2)
	assert.NoError(t, checks["redis"](context.Background()))

	mr.Close()
	assert.Error(t, checks["redis"](context.Background()))
}
