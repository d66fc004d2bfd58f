package addconfig

import (
	"context"

	"azadinet-bot/internal/telegram/flows"
	"azadinet-bot/internal/telegram/states"
)

type (
	stateManager interface {
		GetState(chatID int64) states.State
		SetState(chatID int64, state states.State, data any)
		Clear(chatID int64)
		GetAddConfigData(chatID int64) (*flows.AddConfigFlowData, error)
	}

	catalogService interface {
		Add(ctx context.Context, name, uri string) (string, error)
	}

	adminPanel interface {
		SendPanel(chatID int64) error
	}
)
