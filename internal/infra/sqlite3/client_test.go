package sqlite3

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestDataSource(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{":memory:", ":memory:"},
		{"file:test.db?cache=shared", "file:test.db?cache=shared"},
		{"./data/bot.db", "file:./data/bot.db?_busy_timeout=5000&_journal_mode=WAL"},
	}

	for _, tt := range tests {
		cfg := newConfig(WithDSN(tt.dsn), WithBusyTimeout(5*time.Second))
		if got := dataSource(cfg); got != tt.want {
			t.Errorf("dataSource(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}

func TestNewCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "bot.db")

	db, err := New(context.Background(), WithDSN(path))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(context.Background(), "CREATE TABLE t (id INTEGER)"); err != nil {
		t.Errorf("exec on new database: %v", err)
	}
}
