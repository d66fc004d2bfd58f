package sendbroadcast

import (
	"context"

	"azadinet-bot/internal/stories/broadcast"
	"azadinet-bot/internal/telegram/states"
)

type (
	stateManager interface {
		SetState(chatID int64, state states.State, data any)
		Clear(chatID int64)
	}

	broadcastService interface {
		Send(ctx context.Context, text string) (broadcast.Report, error)
	}

	adminPanel interface {
		SendPanel(chatID int64) error
	}
)
