// Package sqlstore keeps the user registry and the config catalog in SQLite.
// It satisfies the same storage contracts as the JSON file store.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"

	"azadinet-bot/internal/infra/sqlite3"
	"azadinet-bot/internal/stories/catalog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type storageImpl struct {
	db   *sqlx.DB
	inTx sqlite3.TxManager
	now  func() time.Time
}

func New(db *sqlx.DB) *storageImpl {
	return &storageImpl{
		db: db,
		inTx: sqlite3.WithTx(func() (*sql.DB, error) {
			return db.DB, nil
		}, nil),
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *storageImpl) stmpBuilder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS ` + usersTable + ` (
		telegram_id INTEGER PRIMARY KEY,
		created_at  DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS ` + configsTable + ` (
		id       TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name     TEXT NOT NULL,
		uri      TEXT NOT NULL
	)`,
}

// Migrate creates the tables. When the configs table is created by this call
// it is seeded with defaults, mirroring the JSON store writing its default
// file on first start.
func (s *storageImpl) Migrate(ctx context.Context, defaults []catalog.ConfigEntry) error {
	var existing int
	err := s.db.GetContext(ctx, &existing,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, configsTable)
	if err != nil {
		return fmt.Errorf("check schema: %w", err)
	}

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	if existing == 0 && len(defaults) > 0 {
		if err := s.SaveCatalog(ctx, defaults); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}
	return nil
}

// fields возвращает список всех полей структуры, которые есть в БД.
func fields(data any) string {
	var cols []string
	r := reflect.TypeOf(data)
	for i := 0; i < r.NumField(); i++ {
		if tag := r.Field(i).Tag.Get("db"); tag != "" {
			cols = append(cols, tag)
		}
	}
	return strings.Join(cols, ",")
}
