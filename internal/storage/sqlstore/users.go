package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/samber/lo"
)

const (
	usersTable = "users"
	// держим число параметров запроса ниже лимита SQLite
	batchSize = 400
)

// ListUsers возвращает id пользователей по возрастанию
func (s *storageImpl) ListUsers(ctx context.Context) ([]int64, error) {
	q, args, err := s.stmpBuilder().
		Select("telegram_id").
		From(usersTable).
		OrderBy("telegram_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build sql query: %w", err)
	}

	var ids []int64
	if err := s.db.SelectContext(ctx, &ids, q, args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext: %w", err)
	}
	return ids, nil
}

// SaveUsers добавляет отсутствующие id. Реестр не удаляет пользователей,
// поэтому строки, которых нет в ids, остаются, а created_at первого
// появления не меняется.
func (s *storageImpl) SaveUsers(ctx context.Context, ids []int64) error {
	ids = lo.Uniq(ids)
	now := s.now()

	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, batch := range lo.Chunk(ids, batchSize) {
			insert := s.stmpBuilder().
				Insert(usersTable).
				Options("OR IGNORE").
				Columns("telegram_id", "created_at")
			for _, id := range batch {
				insert = insert.Values(id, now)
			}

			q, args, err := insert.ToSql()
			if err != nil {
				return fmt.Errorf("build sql query: %w", err)
			}
			if _, err := tx.ExecContext(ctx, q, args...); err != nil {
				return fmt.Errorf("insert users: %w", err)
			}
		}
		return nil
	})
}
