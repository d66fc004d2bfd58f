package environment

import (
	"context"
	"fmt"
	"os"

	"azadinet-bot/internal/config"
	"azadinet-bot/internal/infra/sqlite3"
	"azadinet-bot/internal/stories/users"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// SetupUsers opens only the configured store and returns the user registry
// on top of it. It reads STORE_* variables and needs no telegram token.
func SetupUsers(ctx context.Context) (*users.Service, func(), error) {
	_ = godotenv.Load()

	var cfg config.StoreConfig
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper("STORE_", envconfig.OsLookuper()),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("env processing: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	logger := newLogger(os.Stderr, config.Config{
		Env:    "local",
		Logger: config.LoggerConfig{Level: "warn"},
		Store:  cfg,
	})

	var (
		db      *sqlite3.DB
		closers []closer
	)
	if cfg.Driver == config.StoreDriverSQLite {
		db, err = provideSQLiteDB(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		closers = append(closers, func() { _ = db.Close() })
	}

	st, err := provideStore(ctx, db, cfg, logger)
	if err != nil {
		for _, c := range closers {
			c()
		}
		return nil, nil, err
	}

	return users.NewService(st), func() {
		for _, c := range closers {
			c()
		}
	}, nil
}
