// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"identity_backend/internal/platform/db"
	"identity_backend/internal/platform/redis"
)

type Config struct {
	HTTP      HTTPConfig
	DB        db.Config
	Redis     redis.Config
	JWT       JWTConfig
	RateLimit RateLimitConfig
	Logins    LoginsConfig
	Log       LogConfig
}

type HTTPConfig struct {
	Addr         string        `env:"HTTP_ADDR" env-default:":8080"`
	ReadyTimeout time.Duration `env:"READY_TIMEOUT" env-default:"2s"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET"`
	TTL    time.Duration `env:"JWT_TTL" env-default:"1h"`
}

// RateLimitConfig は API クライアントごとの固定ウィンドウ制限です。
type RateLimitConfig struct {
	Limit  int           `env:"RATE_LIMIT" env-default:"120"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW" env-default:"1m"`
}

// LoginsConfig names the tables the logins repository reads.
type LoginsConfig struct {
	UsersTable      string `env:"LOGINS_USERS_TABLE" env-default:"Users"`
	UserLoginsTable string `env:"LOGINS_USER_LOGINS_TABLE" env-default:"UserLogins"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

// SlogLevel maps Level to a slog level, defaulting to info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads the configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.RateLimit.Limit <= 0 {
		return fmt.Errorf("RATE_LIMIT must be positive, got %d", c.RateLimit.Limit)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimit.Window)
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWT.TTL)
	}
	return nil
}
