//go:build integration

package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"identity_backend/internal/feature/logins/domain"
	"identity_backend/internal/feature/logins/domain/entity"
	platformdb "identity_backend/internal/platform/db"
)

// setupPostgres starts a disposable PostgreSQL and returns a pgx-backed gorm handle with the tables migrated.
func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("identity"),
		postgres.WithUsername("identity"),
		postgres.WithPassword("pwd"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := platformdb.Open(platformdb.Config{
		Driver:         platformdb.DriverPostgres,
		DSN:            connString,
		ConnectTimeout: 30 * time.Second,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.UserLogin{}))
	return db
}

func TestLoginsTable_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	alice := seedUser(t, db, 1, "alice")
	seedLogin(t, db, "google", "g-1", alice.ID)
	seedLogin(t, db, "github", "gh-1", alice.ID)
	seedLogin(t, db, "facebook", "fb-orphan", 999)

	repo := newTestTable(t, db)

	t.Run("mixed case identifiers survive postgres folding", func(t *testing.T) {
		logins, err := repo.ListLoginsForUser(ctx, alice.ID)
		require.NoError(t, err)
		assert.Len(t, logins, 2)
		for _, l := range logins {
			assert.Equal(t, alice.ID, l.UserID)
			assert.NotEmpty(t, l.LoginProvider)
		}
	})

	t.Run("resolve user across both tables", func(t *testing.T) {
		user, err := repo.FindUserByLogin(ctx, "google", "g-1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.UserName)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		user, err := repo.FindUserByLogin(ctx, "google", "missing")
		require.NoError(t, err)
		assert.Nil(t, user)

		login, err := repo.FindLoginByUserAndProviderKey(ctx, 2, "google", "g-1")
		require.NoError(t, err)
		assert.Nil(t, login)
	})

	t.Run("dangling user reference", func(t *testing.T) {
		_, err := repo.FindUserByLogin(ctx, "facebook", "fb-orphan")
		assert.ErrorIs(t, err, domain.ErrIntegrityViolation)
	})

	t.Run("canceled context is returned unchanged", func(t *testing.T) {
		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.FindLoginByProviderKey(canceled, "google", "g-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrIntegrityViolation)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
