package cmds

import (
	"context"
	"time"

	"azadinet-bot/internal/stories/catalog"
	"azadinet-bot/internal/stories/probe"
)

type (
	catalogService interface {
		List(ctx context.Context) []catalog.ConfigEntry
		Get(ctx context.Context, id string) (catalog.ConfigEntry, error)
		Remove(ctx context.Context, id string) (catalog.ConfigEntry, error)
		Count() int
	}

	userService interface {
		IDs(ctx context.Context) ([]int64, error)
	}

	probeService interface {
		Run(ctx context.Context, targets []probe.Target) []probe.Result
	}

	statsService interface {
		Messages() int64
		Uptime() time.Duration
	}
)
