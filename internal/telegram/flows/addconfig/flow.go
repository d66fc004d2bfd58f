package addconfig

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"azadinet-bot/internal/stories/catalog"
	"azadinet-bot/internal/telegram/actions"
	"azadinet-bot/internal/telegram/flows"
	"azadinet-bot/internal/telegram/messages"
	"azadinet-bot/internal/telegram/states"
	"azadinet-bot/internal/telegram/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

type Handler struct {
	bot            view.BotAPI
	stateManager   stateManager
	catalogService catalogService
	adminPanel     adminPanel
	logger         *slog.Logger
}

func NewHandler(
	bot view.BotAPI,
	sm stateManager,
	cs catalogService,
	panel adminPanel,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		bot:            bot,
		stateManager:   sm,
		catalogService: cs,
		adminPanel:     panel,
		logger:         logger,
	}
}

// Start начинает флоу добавления конфига (только для админа)
func (h *Handler) Start(target view.Target) error {
	h.stateManager.SetState(target.ChatID, states.AdminAddConfigWaitName, &flows.AddConfigFlowData{})

	return view.Render(h.bot, target, view.Screen{
		Text:     messages.AddConfigAskName,
		Keyboard: view.Keyboard(view.Button(messages.ButtonCancel, actions.DataAdminPanel)),
	})
}

// Handle обрабатывает текстовый ввод в текущем состоянии
func (h *Handler) Handle(ctx context.Context, update *tgbotapi.Update, state states.State) error {
	if update.Message == nil || update.Message.Text == "" {
		return nil
	}
	chatID := update.Message.Chat.ID

	switch state {
	case states.AdminAddConfigWaitName:
		return h.handleNameInput(chatID, update.Message.Text)
	case states.AdminAddConfigWaitURL:
		return h.handleURLInput(ctx, chatID, update.Message.Text)
	default:
		return fmt.Errorf("unknown add config state: %s", state)
	}
}

func (h *Handler) handleNameInput(chatID int64, text string) error {
	name := strings.TrimSpace(text)
	if name == "" {
		return h.send(chatID, messages.AddConfigEmptyName)
	}

	data, err := h.stateManager.GetAddConfigData(chatID)
	if err != nil {
		data = &flows.AddConfigFlowData{}
	}
	data.Name = name

	h.stateManager.SetState(chatID, states.AdminAddConfigWaitURL, data)

	return h.send(chatID, messages.AddConfigAskURL)
}

func (h *Handler) handleURLInput(ctx context.Context, chatID int64, text string) error {
	uri := strings.TrimSpace(text)

	// невалидная ссылка: остаемся в том же состоянии
	if !catalog.ValidateURI(uri) {
		return h.send(chatID, messages.AddConfigInvalidURL)
	}

	data, err := h.stateManager.GetAddConfigData(chatID)
	if err != nil {
		h.stateManager.Clear(chatID)
		return errors.Wrap(err, "add config flow data lost")
	}

	id, err := h.catalogService.Add(ctx, data.Name, uri)
	if errors.Is(err, catalog.ErrInvalidURI) {
		return h.send(chatID, messages.AddConfigInvalidURL)
	}
	if err != nil {
		h.stateManager.Clear(chatID)
		_ = h.send(chatID, messages.Error)
		return errors.Wrap(err, "add config")
	}

	h.stateManager.Clear(chatID)

	h.logger.Info("Config added", slog.String("config_id", id), slog.String("name", data.Name))

	if err := h.send(chatID, messages.ConfigAdded(data.Name, id)); err != nil {
		return err
	}
	return h.adminPanel.SendPanel(chatID)
}

func (h *Handler) send(chatID int64, text string) error {
	_, err := h.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}
