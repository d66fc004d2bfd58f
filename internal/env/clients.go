package environment

import (
	"context"
	"log/slog"
	"time"

	"azadinet-bot/internal/config"
	"azadinet-bot/internal/infra/sqlite3"
	"azadinet-bot/internal/infra/telegram"
)

type Clients struct {
	// SQLiteDB is nil unless STORE_DRIVER=sqlite.
	SQLiteDB    *sqlite3.DB
	TelegramBot *telegram.Client
}

func newClients(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Clients, error) {
	var clients Clients

	if cfg.Store.Driver == config.StoreDriverSQLite {
		sqliteDB, err := provideSQLiteDB(ctx, cfg.Store.SQLite)
		if err != nil {
			return nil, err
		}
		clients.SQLiteDB = sqliteDB
	}

	telegramBot, err := telegram.NewClient(cfg.Telegram, logger.WithGroup("telegram"))
	if err != nil {
		return nil, err
	}
	clients.TelegramBot = telegramBot

	return &clients, nil
}

func provideSQLiteDB(ctx context.Context, cfg config.SQLiteConfig) (*sqlite3.DB, error) {
	maxLifetimeStr := cfg.MaxLifetime
	if maxLifetimeStr == "" {
		maxLifetimeStr = "5m"
	}
	maxLifetime, err := time.ParseDuration(maxLifetimeStr)
	if err != nil {
		return nil, err
	}

	opts := []sqlite3.Option{
		sqlite3.WithDSN(cfg.Path),
		sqlite3.WithMaxOpenConns(cfg.MaxOpenConns),
		sqlite3.WithMaxIdleConns(cfg.MaxIdleConns),
		sqlite3.WithConnMaxLifetime(maxLifetime),
	}

	return sqlite3.New(ctx, opts...)
}
