package cmds

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"azadinet-bot/internal/stories/catalog"
	"azadinet-bot/internal/telegram/actions"
	"azadinet-bot/internal/telegram/messages"
	"azadinet-bot/internal/telegram/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// AdminCommand renders the admin panel and its catalog screens
type AdminCommand struct {
	bot            view.BotAPI
	catalogService catalogService
	userService    userService
	logger         *slog.Logger
}

func NewAdminCommand(
	bot view.BotAPI,
	catalogService catalogService,
	userService userService,
	logger *slog.Logger,
) *AdminCommand {
	return &AdminCommand{
		bot:            bot,
		catalogService: catalogService,
		userService:    userService,
		logger:         logger,
	}
}

func (c *AdminCommand) Panel(target view.Target) error {
	return view.Render(c.bot, target, view.Screen{
		Text: messages.AdminPanelTitle,
		Keyboard: view.Keyboard(
			view.Button(messages.ButtonAdminStats, actions.DataAdminStats),
			view.Button(messages.ButtonListConfigs, actions.DataAdminListConfigs),
			view.Button(messages.ButtonAddConfig, actions.DataAdminAddConfig),
			view.Button(messages.ButtonRemoveConfig, actions.DataAdminRemove),
			view.Button(messages.ButtonBroadcast, actions.DataAdminBroadcast),
			view.Button(messages.ButtonExportUsers, actions.DataAdminExportUsers),
			view.Button(messages.ButtonBack, actions.DataBack),
		),
	})
}

// SendPanel отправляет панель новым сообщением (после завершения флоу)
func (c *AdminCommand) SendPanel(chatID int64) error {
	return c.Panel(view.Chat(chatID))
}

func (c *AdminCommand) ListConfigs(ctx context.Context, target view.Target) error {
	entries := c.catalogService.List(ctx)

	text := messages.ConfigListEmpty
	if len(entries) > 0 {
		text = strings.Join(lo.Map(entries, func(e catalog.ConfigEntry, _ int) string {
			return messages.ConfigListLine(e.Name, e.ID)
		}), "\n")
	}

	return view.Render(c.bot, target, view.Screen{
		Text:     messages.ConfigListTitle + "\n\n" + text,
		Keyboard: backToPanel(),
	})
}

// RemoveMenu показывает по кнопке на каждый конфиг
func (c *AdminCommand) RemoveMenu(ctx context.Context, target view.Target) error {
	entries := c.catalogService.List(ctx)
	if len(entries) == 0 {
		return view.Render(c.bot, target, view.Screen{
			Text:     messages.RemoveConfigEmpty,
			Keyboard: backToPanel(),
		})
	}

	buttons := lo.Map(entries, func(e catalog.ConfigEntry, _ int) tgbotapi.InlineKeyboardButton {
		return view.Button(messages.ButtonRemovePrefix+e.Name, actions.AdminRemoveEntry(e.ID))
	})
	buttons = append(buttons, view.Button(messages.ButtonBack, actions.DataAdminPanel))

	return view.Render(c.bot, target, view.Screen{
		Text:     messages.RemoveConfigChoose,
		Keyboard: view.Keyboard(buttons...),
	})
}

// RemoveEntry удаляет конфиг; отсутствующий id -> тост, не ошибка
func (c *AdminCommand) RemoveEntry(ctx context.Context, target view.Target, id string) error {
	removed, err := c.catalogService.Remove(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return view.Answer(c.bot, target.CallbackID, messages.NotFound, false)
	}
	if err != nil {
		_ = view.Answer(c.bot, target.CallbackID, messages.Error, false)
		return fmt.Errorf("remove config %s: %w", id, err)
	}

	c.logger.Info("Config removed", slog.String("config_id", id), slog.String("name", removed.Name))

	return view.Render(c.bot, target, view.Screen{
		Text:     messages.ConfigRemoved(removed.Name),
		Keyboard: backToPanel(),
	})
}

// ExportUsers отправляет users.txt с одним id на строку
func (c *AdminCommand) ExportUsers(ctx context.Context, target view.Target) error {
	ids, err := c.userService.IDs(ctx)
	if err != nil {
		_ = view.Answer(c.bot, target.CallbackID, messages.Error, false)
		return fmt.Errorf("get users: %w", err)
	}

	body := strings.Join(lo.Map(ids, func(id int64, _ int) string {
		return fmt.Sprintf("%d", id)
	}), "\n")

	doc := tgbotapi.NewDocument(target.ChatID, tgbotapi.FileBytes{
		Name:  messages.UsersExportFileName,
		Bytes: []byte(body),
	})
	doc.Caption = messages.UsersExportCaption(len(ids))
	if _, err := c.bot.Send(doc); err != nil {
		_ = view.Answer(c.bot, target.CallbackID, messages.Error, false)
		return fmt.Errorf("send users export: %w", err)
	}

	return view.Answer(c.bot, target.CallbackID, messages.UsersExported, false)
}

func backToPanel() *tgbotapi.InlineKeyboardMarkup {
	return view.Keyboard(view.Button(messages.ButtonBack, actions.DataAdminPanel))
}
