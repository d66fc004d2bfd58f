package cmds

import (
	"context"
	"log/slog"

	"azadinet-bot/internal/stories/catalog"
	"azadinet-bot/internal/telegram/actions"
	"azadinet-bot/internal/telegram/messages"
	"azadinet-bot/internal/telegram/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/skip2/go-qrcode"
)

const (
	serversPerRow = 2
	qrSize        = 512
)

type ServersCommand struct {
	bot            view.BotAPI
	catalogService catalogService
	logger         *slog.Logger
}

func NewServersCommand(
	bot view.BotAPI,
	catalogService catalogService,
	logger *slog.Logger,
) *ServersCommand {
	return &ServersCommand{
		bot:            bot,
		catalogService: catalogService,
		logger:         logger,
	}
}

// Menu показывает список серверов по два в ряд в порядке каталога
func (c *ServersCommand) Menu(ctx context.Context, target view.Target) error {
	entries := c.catalogService.List(ctx)

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, chunk := range lo.Chunk(entries, serversPerRow) {
		row := lo.Map(chunk, func(e catalog.ConfigEntry, _ int) tgbotapi.InlineKeyboardButton {
			return view.Button(e.Name, actions.ShowConfig(e.ID))
		})
		rows = append(rows, row)
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(view.Button(messages.ButtonBack, actions.DataBack)))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return view.Render(c.bot, target, view.Screen{
		Text:     messages.ServersTitle,
		Keyboard: &keyboard,
	})
}

// ShowConfig отправляет QR код конфига фото-сообщением и удаляет меню
func (c *ServersCommand) ShowConfig(ctx context.Context, target view.Target, id string) error {
	entry, err := c.catalogService.Get(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return view.Answer(c.bot, target.CallbackID, messages.ServerNotFound, false)
	}
	if err != nil {
		return err
	}

	png, err := qrcode.Encode(entry.URI, qrcode.Low, qrSize)
	if err != nil {
		_ = view.Answer(c.bot, target.CallbackID, messages.Error, false)
		return errors.Wrapf(err, "encode qr for %s", id)
	}

	_ = view.Answer(c.bot, target.CallbackID, "", false)

	photo := tgbotapi.NewPhoto(target.ChatID, tgbotapi.FileBytes{Name: messages.ConfigQRFileName, Bytes: png})
	photo.Caption = messages.ConfigCaption(entry.Name)
	photo.ReplyMarkup = view.Keyboard(
		view.Button(messages.ButtonCopyConfig, actions.CopyConfig(entry.ID)),
		view.Button(messages.ButtonBack, actions.DataServers),
	)
	if _, err := c.bot.Send(photo); err != nil {
		return errors.Wrap(err, "send config qr")
	}

	for _, messageID := range []int{target.MessageID, target.DeleteID} {
		if messageID != 0 {
			_, _ = c.bot.Request(tgbotapi.NewDeleteMessage(target.ChatID, messageID))
		}
	}
	return nil
}

// CopyConfig отправляет URI конфига моноширинным текстом
func (c *ServersCommand) CopyConfig(ctx context.Context, target view.Target, id string) error {
	entry, err := c.catalogService.Get(ctx, id)
	if errors.Is(err, catalog.ErrNotFound) {
		return view.Answer(c.bot, target.CallbackID, messages.ConfigNotFound, false)
	}
	if err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(target.ChatID, messages.ConfigCode(entry.URI))
	msg.ParseMode = "Markdown"
	if _, err := c.bot.Send(msg); err != nil {
		_ = view.Answer(c.bot, target.CallbackID, messages.Error, false)
		return errors.Wrap(err, "send config uri")
	}

	return view.Answer(c.bot, target.CallbackID, messages.ConfigSent, false)
}
