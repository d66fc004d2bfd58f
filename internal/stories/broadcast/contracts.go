package broadcast

import "context"

type (
	Sender interface {
		SendMessage(chatID int64, text string) error
	}

	Recipients interface {
		IDs(ctx context.Context) ([]int64, error)
	}
)
