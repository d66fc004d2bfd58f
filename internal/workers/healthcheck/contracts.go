package healthcheck

import (
	"context"

	"azadinet-bot/internal/stories/catalog"
	"azadinet-bot/internal/stories/probe"
)

type (
	Catalog interface {
		List(ctx context.Context) []catalog.ConfigEntry
	}

	Prober interface {
		Run(ctx context.Context, targets []probe.Target) []probe.Result
	}

	TelegramNotifier interface {
		SendMessage(chatID int64, text string) error
	}
)
