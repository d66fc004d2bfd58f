package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"azadinet-bot/internal/stories/catalog"

	"github.com/samber/lo"
)

const configsTable = "configs"

var configRowFields = fields(configRow{})

type configRow struct {
	ID       string `db:"id"`
	Position int    `db:"position"`
	Name     string `db:"name"`
	URI      string `db:"uri"`
}

func (r configRow) ToModel() catalog.ConfigEntry {
	return catalog.ConfigEntry{
		ID:   r.ID,
		Name: r.Name,
		URI:  r.URI,
	}
}

// LoadCatalog возвращает конфиги в порядке добавления
func (s *storageImpl) LoadCatalog(ctx context.Context) ([]catalog.ConfigEntry, error) {
	q, args, err := s.stmpBuilder().
		Select(configRowFields).
		From(configsTable).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	var rows []configRow
	if err := s.db.SelectContext(ctx, &rows, q, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}

	return lo.Map(rows, func(r configRow, _ int) catalog.ConfigEntry {
		return r.ToModel()
	}), nil
}

// SaveCatalog перезаписывает каталог целиком в одной транзакции
func (s *storageImpl) SaveCatalog(ctx context.Context, entries []catalog.ConfigEntry) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		q, args, err := s.stmpBuilder().Delete(configsTable).ToSql()
		if err != nil {
			return fmt.Errorf("build sql query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("clear configs: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		insert := s.stmpBuilder().
			Insert(configsTable).
			Columns("id", "position", "name", "uri")
		for i, e := range entries {
			insert = insert.Values(e.ID, i, e.Name, e.URI)
		}

		q, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("build sql query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("insert configs: %w", err)
		}
		return nil
	})
}
