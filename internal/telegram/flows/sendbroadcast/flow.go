package sendbroadcast

import (
	"context"
	"fmt"
	"log/slog"

	"azadinet-bot/internal/telegram/actions"
	"azadinet-bot/internal/telegram/messages"
	"azadinet-bot/internal/telegram/states"
	"azadinet-bot/internal/telegram/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Handler struct {
	bot              view.BotAPI
	stateManager     stateManager
	broadcastService broadcastService
	adminPanel       adminPanel
	logger           *slog.Logger
}

func NewHandler(
	bot view.BotAPI,
	sm stateManager,
	bs broadcastService,
	panel adminPanel,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		bot:              bot,
		stateManager:     sm,
		broadcastService: bs,
		adminPanel:       panel,
		logger:           logger,
	}
}

// Start ждет текст рассылки от админа
func (h *Handler) Start(target view.Target) error {
	h.stateManager.SetState(target.ChatID, states.AdminBroadcastWaitText, nil)

	return view.Render(h.bot, target, view.Screen{
		Text:     messages.BroadcastAskText,
		Keyboard: view.Keyboard(view.Button(messages.ButtonCancel, actions.DataAdminPanel)),
	})
}

func (h *Handler) Handle(ctx context.Context, update *tgbotapi.Update, state states.State) error {
	if update.Message == nil || update.Message.Text == "" {
		return nil
	}
	if state != states.AdminBroadcastWaitText {
		return fmt.Errorf("unknown broadcast state: %s", state)
	}
	chatID := update.Message.Chat.ID

	// состояние снимаем до рассылки, чтобы повторный текст не ушел второй раз
	h.stateManager.Clear(chatID)

	report, err := h.broadcastService.Send(ctx, update.Message.Text)
	if err != nil {
		_, _ = h.bot.Send(tgbotapi.NewMessage(chatID, messages.Error))
		return fmt.Errorf("broadcast: %w", err)
	}

	h.logger.Info("Broadcast finished",
		slog.String("run_id", report.RunID),
		slog.Int("total", report.Total),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed))

	if _, err := h.bot.Send(tgbotapi.NewMessage(chatID, messages.BroadcastDone(report.Sent))); err != nil {
		return err
	}
	return h.adminPanel.SendPanel(chatID)
}
