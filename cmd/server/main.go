package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"identity_backend/internal/app/config"
	"identity_backend/internal/app/di"
	"identity_backend/internal/app/router"
	"identity_backend/internal/platform/db"
	platformhandler "identity_backend/internal/platform/http/handler"
	platformredis "identity_backend/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	if err := run(cfg); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	gormDB, err := db.Open(cfg.DB)
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer func() { _ = sqlDB.Close() }()
	}

	// Redis（任意）
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := platformredis.NewRedisClient(ctx, cfg.Redis); err != nil {
			slog.Warn("Redis unavailable. Rate limiting falls back to in-process counters.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
		}
	}

	// Handler
	loginsH, err := di.NewLoginsHandler(gormDB, cfg.Logins)
	if err != nil {
		return err
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWT.Secret == "" {
		slog.Warn("JWT_SECRET is not set. All /api/v1 requests will be rejected.")
	}

	// ルータ生成
	r := router.NewRouter(router.Deps{
		Logins:    loginsH,
		Limiter:   di.NewLimiter(rdb, cfg.RateLimit),
		Ready:     platformhandler.Ready(di.NewReadinessChecks(gormDB, rdb), cfg.HTTP.ReadyTimeout),
		JWTSecret: cfg.JWT.Secret,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.HTTP.Addr, "db_driver", cfg.DB.Driver, "redis", rdb != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
