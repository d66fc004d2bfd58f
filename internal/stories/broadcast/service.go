package broadcast

import (
	"context"
	"log/slog"

	"azadinet-bot/internal/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Service struct {
	sender     Sender
	recipients Recipients
	logger     *slog.Logger
}

func NewService(sender Sender, recipients Recipients, logger *slog.Logger) *Service {
	return &Service{
		sender:     sender,
		recipients: recipients,
		logger:     logger,
	}
}

// Send delivers text to every registered user one by one. A failed delivery
// is logged and skipped; it never stops the remaining sends.
func (s *Service) Send(ctx context.Context, text string) (Report, error) {
	ids, err := s.recipients.IDs(ctx)
	if err != nil {
		return Report{}, errors.Wrap(err, "failed to list recipients")
	}

	return s.SendTo(ids, text), nil
}

// SendTo delivers text to the given chats sequentially.
func (s *Service) SendTo(chatIDs []int64, text string) Report {
	report := Report{
		RunID: uuid.NewString(),
		Total: len(chatIDs),
	}
	logger := s.logger.With(slog.String("run_id", report.RunID))
	logger.Info("Starting broadcast", slog.Int("recipients", report.Total))

	for _, chatID := range chatIDs {
		if err := s.sender.SendMessage(chatID, text); err != nil {
			report.Failed++
			metrics.BroadcastMessagesTotal.WithLabelValues("failed").Inc()
			logger.Warn("Broadcast delivery failed",
				slog.Int64("chat_id", chatID),
				slog.Any("error", err))
			continue
		}
		report.Sent++
		metrics.BroadcastMessagesTotal.WithLabelValues("sent").Inc()
	}

	logger.Info("Broadcast finished",
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed))
	return report
}
