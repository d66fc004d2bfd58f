package stats

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/atomic"
)

// Service tracks process-wide counters. Nothing here is persisted; values
// reset on restart.
type Service struct {
	startedAt time.Time
	messages  *atomic.Int64
	now       func() time.Time
}

func NewService(now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		startedAt: now(),
		messages:  atomic.NewInt64(0),
		now:       now,
	}
}

// CountMessage records one processed inbound message or button press.
func (s *Service) CountMessage() int64 {
	return s.messages.Inc()
}

func (s *Service) Messages() int64 {
	return s.messages.Load()
}

func (s *Service) StartedAt() time.Time {
	return s.startedAt
}

func (s *Service) Uptime() time.Duration {
	return s.now().Sub(s.startedAt)
}

// FormatUptime renders d as "1d 2h 3m 4s", omitting zero days, hours and
// minutes. Seconds are always present.
func FormatUptime(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}

	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}
