package config

import (
	"fmt"
	"time"
)

type Config struct {
	Env              string                  `env:"ENV,default=local"`
	Logger           LoggerConfig            `env:",prefix=LOGGER_"`
	Observability    ObservabilityHTTPConfig `env:",prefix=OBSERVABILITY_"`
	ShutdownDuration time.Duration           `env:"SHUTDOWN_DURATION,default=30s"`
	Store            StoreConfig             `env:",prefix=STORE_"`
	Telegram         TelegramConfig          `env:",prefix=TELEGRAM_"`
	Probe            ProbeConfig             `env:",prefix=PROBE_"`
	HealthCheck      HealthCheckConfig       `env:",prefix=HEALTHCHECK_"`
	ContentPath      string                  `env:"CONTENT_PATH"`
}

type TelegramConfig struct {
	BotToken         string        `env:"BOT_TOKEN,required"`
	Timeout          time.Duration `env:"TIMEOUT,default=30s"`
	AdminID          int64         `env:"ADMIN_ID,required"`
	SubscriptionLink string        `env:"SUBSCRIPTION_LINK,default=https://dev1.irdevs.sbs"`
	RateLimit        float64       `env:"RATE_LIMIT,default=30"`
}

const (
	StoreDriverJSON   = "json"
	StoreDriverSQLite = "sqlite"
)

type StoreConfig struct {
	Driver      string       `env:"DRIVER,default=json"`
	UsersPath   string       `env:"USERS_PATH,default=users.json"`
	ConfigsPath string       `env:"CONFIGS_PATH,default=configs.json"`
	SQLite      SQLiteConfig `env:",prefix=SQLITE_"`
}

func (s StoreConfig) Validate() error {
	switch s.Driver {
	case StoreDriverJSON, StoreDriverSQLite:
		return nil
	default:
		return fmt.Errorf("unknown store driver %q", s.Driver)
	}
}

type ProbeConfig struct {
	Timeout     time.Duration `env:"TIMEOUT,default=2500ms"`
	Concurrency int           `env:"CONCURRENCY,default=4"`
}

type HealthCheckConfig struct {
	// Cron spec, empty disables the worker.
	Schedule string `env:"SCHEDULE"`
}

func (h HealthCheckConfig) Enabled() bool {
	return h.Schedule != ""
}

type LoggerConfig struct {
	Level string `env:"LEVEL,default=debug"`
}

type ObservabilityHTTPConfig struct {
	Host         string        `env:"HOST,default=127.0.0.1"`
	Port         uint16        `env:"PORT,default=8383"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=1m"`
}

func (a ObservabilityHTTPConfig) ADDR() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

type SQLiteConfig struct {
	Path         string `env:"PATH,default=./data/azadinet.db"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS,default=1"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS,default=1"`
	MaxLifetime  string `env:"MAX_LIFETIME,default=5m"`
}
