package environment

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"azadinet-bot/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warning ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.expected {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewLoggerJSONCarriesDefaults(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{Env: "production"}
	cfg.Logger.Level = "warn"
	cfg.Store.Driver = config.StoreDriverSQLite

	logger := newLogger(&buf, cfg)
	logger.Info("dropped below level")
	logger.Warn("store slow")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1: %q", len(lines), buf.String())
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	want := map[string]string{"msg": "store slow", "app": "azadinet-bot", "env": "production", "store": "sqlite"}
	for key, value := range want {
		if record[key] != value {
			t.Errorf("record[%q] = %v, want %q", key, record[key], value)
		}
	}
}

func TestNewLoggerLocalIsText(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{Env: "local"}
	cfg.Store.Driver = config.StoreDriverJSON

	newLogger(&buf, cfg).Info("hello")

	if out := buf.String(); !strings.Contains(out, "msg=hello") || !strings.Contains(out, "store=json") {
		t.Errorf("text log = %q", out)
	}
}
