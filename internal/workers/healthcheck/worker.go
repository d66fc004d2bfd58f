package healthcheck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"azadinet-bot/internal/stories/catalog"
	"azadinet-bot/internal/stories/probe"
	"azadinet-bot/internal/stories/stats"
	"azadinet-bot/internal/telegram/messages"

	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
)

type entryStatus struct {
	isUp      bool
	changedAt time.Time
}

// Worker periodically probes the catalog and tells the admin when an entry
// becomes unreachable and when it comes back.
type Worker struct {
	catalog  Catalog
	prober   Prober
	telegram TelegramNotifier
	adminID  int64
	schedule string
	logger   *slog.Logger
	cron     *cron.Cron
	now      func() time.Time

	statusMu sync.Mutex
	statuses map[string]*entryStatus
}

func NewWorker(
	catalog Catalog,
	prober Prober,
	telegram TelegramNotifier,
	adminID int64,
	schedule string,
	logger *slog.Logger,
) *Worker {
	return &Worker{
		catalog:  catalog,
		prober:   prober,
		telegram: telegram,
		adminID:  adminID,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(),
		now:      time.Now,
		statuses: make(map[string]*entryStatus),
	}
}

func (w *Worker) Name() string {
	return "healthcheck"
}

func (w *Worker) Start() error {
	_, err := w.cron.AddFunc(w.schedule, func() {
		defer func() {
			if r := recover(); r != nil {
				w.logger.Error("Panic in healthcheck worker", "panic", r)
			}
		}()
		w.Check(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to schedule healthcheck worker %q: %w", w.schedule, err)
	}

	w.logger.Info("Starting health check worker", "schedule", w.schedule)
	w.cron.Start()
	return nil
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping health check worker")
	<-w.cron.Stop().Done()
}

// Check probes every catalog entry once and notifies the admin about
// status transitions.
func (w *Worker) Check(ctx context.Context) {
	entries := w.catalog.List(ctx)
	targets := lo.Map(entries, func(e catalog.ConfigEntry, _ int) probe.Target {
		return probe.Target{ID: e.ID, Name: e.Name, URI: e.URI}
	})

	results := w.prober.Run(ctx, targets)
	w.logger.Debug("Health check finished", "count", len(results))

	down, recovered := w.updateStatuses(results)
	if text := formatReport(down, recovered); text != "" {
		if err := w.telegram.SendMessage(w.adminID, text); err != nil {
			w.logger.Error("Failed to send health report to admin",
				"admin_id", w.adminID,
				"error", err)
		}
	}
}

type transition struct {
	name     string
	downtime time.Duration
}

func (w *Worker) updateStatuses(results []probe.Result) (down, recovered []transition) {
	w.statusMu.Lock()
	defer w.statusMu.Unlock()

	now := w.now()
	seen := make(map[string]bool, len(results))

	for _, res := range results {
		// записи без хоста не проверяются, о них не сообщаем
		if res.Tier == probe.TierUnknownFormat {
			continue
		}
		seen[res.ID] = true
		isUp := res.Reachable()

		prev, exists := w.statuses[res.ID]
		switch {
		case !exists:
			w.statuses[res.ID] = &entryStatus{isUp: isUp, changedAt: now}
			if !isUp {
				down = append(down, transition{name: res.Name})
			}
		case prev.isUp && !isUp:
			prev.isUp, prev.changedAt = false, now
			down = append(down, transition{name: res.Name})
		case !prev.isUp && isUp:
			recovered = append(recovered, transition{name: res.Name, downtime: now.Sub(prev.changedAt)})
			prev.isUp, prev.changedAt = true, now
		}
	}

	// удаленные из каталога записи забываем
	for id := range w.statuses {
		if !seen[id] {
			delete(w.statuses, id)
		}
	}
	return down, recovered
}

func formatReport(down, recovered []transition) string {
	var b strings.Builder
	if len(down) > 0 {
		b.WriteString(messages.HealthcheckDownTitle)
		b.WriteString("\n")
		for _, t := range down {
			b.WriteString("• " + t.name + "\n")
		}
	}
	if len(recovered) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(messages.HealthcheckUpTitle)
		b.WriteString("\n")
		for _, t := range recovered {
			b.WriteString(fmt.Sprintf("• %s (%s)\n", t.name, stats.FormatUptime(t.downtime)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
