package healthcheck

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"azadinet-bot/internal/stories/catalog"
	"azadinet-bot/internal/stories/probe"
)

type fakeCatalog struct {
	entries []catalog.ConfigEntry
}

func (f *fakeCatalog) List(context.Context) []catalog.ConfigEntry { return f.entries }

// fakeProber marks targets whose id is in down as unreachable
type fakeProber struct {
	down map[string]bool
}

func (f *fakeProber) Run(_ context.Context, targets []probe.Target) []probe.Result {
	latency := 30 * time.Millisecond
	results := make([]probe.Result, 0, len(targets))
	for _, t := range targets {
		res := probe.Result{ID: t.ID, Name: t.Name, Tier: probe.TierGood, Latency: &latency}
		if f.down[t.ID] {
			res = probe.Result{ID: t.ID, Name: t.Name, Tier: probe.TierUnreachable}
		}
		if t.URI == "" {
			res = probe.Result{ID: t.ID, Name: t.Name, Tier: probe.TierUnknownFormat}
		}
		results = append(results, res)
	}
	return results
}

type fakeNotifier struct {
	sent []string
}

func (f *fakeNotifier) SendMessage(chatID int64, text string) error {
	f.sent = append(f.sent, text)
	return nil
}

func TestCheckNotifiesOnTransitions(t *testing.T) {
	ctx := context.Background()
	cat := &fakeCatalog{entries: []catalog.ConfigEntry{
		{ID: "a", Name: "Alpha", URI: "vless://u@a.example.com"},
		{ID: "b", Name: "Beta", URI: "vless://u@b.example.com"},
		{ID: "c", Name: "Broken", URI: ""},
	}}
	prober := &fakeProber{down: map[string]bool{"b": true, "c": true}}
	notifier := &fakeNotifier{}

	w := NewWorker(cat, prober, notifier, 754, "@every 1m", slog.New(slog.NewTextHandler(io.Discard, nil)))
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return clock }

	steps := []struct {
		name     string
		down     map[string]bool
		wantSent int
		contains string
	}{
		{name: "first down observation notifies", down: map[string]bool{"b": true}, wantSent: 1, contains: "Beta"},
		{name: "still down stays quiet", down: map[string]bool{"b": true}, wantSent: 1},
		{name: "recovery notifies with downtime", down: nil, wantSent: 2, contains: "Beta (2m 0s)"},
		{name: "healthy stays quiet", down: nil, wantSent: 2},
		{name: "up to down notifies", down: map[string]bool{"a": true}, wantSent: 3, contains: "Alpha"},
	}

	for _, step := range steps {
		prober.down = step.down
		w.Check(ctx)
		clock = clock.Add(time.Minute)

		if len(notifier.sent) != step.wantSent {
			t.Fatalf("%s: sent %d reports, want %d", step.name, len(notifier.sent), step.wantSent)
		}
		if step.contains != "" {
			last := notifier.sent[len(notifier.sent)-1]
			if !strings.Contains(last, step.contains) {
				t.Errorf("%s: report %q lacks %q", step.name, last, step.contains)
			}
			if strings.Contains(last, "Broken") {
				t.Errorf("%s: report mentions unknown-format entry", step.name)
			}
		}
	}
}

func TestRemovedEntriesAreForgotten(t *testing.T) {
	ctx := context.Background()
	cat := &fakeCatalog{entries: []catalog.ConfigEntry{{ID: "a", Name: "Alpha", URI: "vless://u@a.example.com"}}}
	prober := &fakeProber{down: map[string]bool{"a": true}}
	notifier := &fakeNotifier{}
	w := NewWorker(cat, prober, notifier, 754, "@every 1m", slog.New(slog.NewTextHandler(io.Discard, nil)))

	w.Check(ctx)
	cat.entries = nil
	w.Check(ctx)

	if len(w.statuses) != 0 {
		t.Errorf("statuses kept %d removed entries", len(w.statuses))
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	w := NewWorker(&fakeCatalog{}, &fakeProber{}, &fakeNotifier{}, 1, "not a schedule", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err := w.Start(); err == nil {
		w.Stop()
		t.Fatal("Start accepted an invalid cron schedule")
	}
}
