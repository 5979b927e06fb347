// Package db opens the GORM database handle shared by the repositories.
package db

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// retryInterval は接続リトライの間隔です。
const retryInterval = 3 * time.Second

// Config holds the database connection settings. It is read from the environment as part of app/config.Config.
type Config struct {
	Driver       string `env:"DB_DRIVER" env-default:"postgres"`
	User         string `env:"DB_USER"`
	Password     string `env:"DB_PASSWORD"`
	Name         string `env:"DB_NAME" env-default:"identity"`
	Host         string `env:"DB_HOST" env-default:"localhost"`
	Port         string `env:"DB_PORT"`
	InstanceName string `env:"INSTANCE_CONNECTION_NAME"`

	// DSN, when set, is used verbatim instead of being built from the fields above.
	DSN string `env:"DB_DSN"`

	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"60s"`
}

// Opener opens a GORM handle for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN はドライバーごとの接続文字列を生成します。
// InstanceName が設定されている場合は Cloud SQL の Unix ソケット接続を優先します。
func BuildDSN(cfg Config) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	switch cfg.Driver {
	case DriverMySQL:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
				cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
		}
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.Host, portOr(cfg.Port, "3306"), cfg.Name)
	case DriverSQLite:
		return cfg.Name
	default:
		if cfg.InstanceName != "" {
			return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable",
				cfg.InstanceName, cfg.User, cfg.Password, cfg.Name)
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(cfg.User, cfg.Password),
			Host:     cfg.Host + ":" + portOr(cfg.Port, "5432"),
			Path:     "/" + cfg.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String()
	}
}

func portOr(port, fallback string) string {
	if port == "" {
		return fallback
	}
	return port
}

// Dialector returns the GORM dialector for driver.
// PostgreSQL connections go through pgx's database/sql adapter.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		pgxCfg, err := pgx.ParseConfig(dsn)
		if err != nil {
			return nil, fmt.Errorf("parse postgres dsn: %w", err)
		}
		return postgres.New(postgres.Config{Conn: stdlib.OpenDB(*pgxCfg)}), nil
	case DriverMySQL:
		return gmysql.Open(dsn), nil
	case DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// NewOpener returns an Opener for driver.
func NewOpener(driver string) Opener {
	return func(dsn string) (*gorm.DB, error) {
		dialector, err := Dialector(driver, dsn)
		if err != nil {
			return nil, err
		}
		db, err := gorm.Open(dialector, &gorm.Config{})
		if err != nil {
			closeOnError(db, dialector)
			return nil, err
		}
		return db, nil
	}
}

// closeOnError は gorm.Open が失敗したときに開きかけの接続プールを閉じます。
// gorm は ping 失敗時にプールを閉じないので、閉じないとリトライのたびに漏れる。
func closeOnError(db *gorm.DB, dialector gorm.Dialector) {
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
			return
		}
	}
	// pgx の *sql.DB は Dialector 作成時点で開いている
	if pd, ok := dialector.(*postgres.Dialector); ok && pd.Config != nil {
		if c, ok := pd.Conn.(io.Closer); ok {
			_ = c.Close()
		}
	}
}

// ConnectWithRetry は timeout に達するまで retryInterval 間隔で接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open validates the driver and connects with retry.
func Open(cfg Config) (*gorm.DB, error) {
	switch cfg.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, NewOpener(cfg.Driver))
	if err != nil {
		return nil, err
	}
	slog.Info("DB connection successful", "driver", cfg.Driver)
	return db, nil
}
