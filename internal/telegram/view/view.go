// Package view renders bot screens either in place of the message that
// carried a button press or as a fresh message.
package view

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Target describes where a screen goes.
//
// MessageID != 0 edits that message in place. DeleteID != 0 removes a
// message that cannot be edited (a QR photo) after the new screen is sent.
// CallbackID, when set, is answered with an empty toast before rendering.
type Target struct {
	ChatID     int64
	MessageID  int
	DeleteID   int
	CallbackID string
}

// Chat targets a new message in chatID.
func Chat(chatID int64) Target {
	return Target{ChatID: chatID}
}

// Screen is the rendered content of one menu.
type Screen struct {
	Text           string
	ParseMode      string
	Keyboard       *tgbotapi.InlineKeyboardMarkup
	DisablePreview bool
}

// Render shows screen at target.
func Render(bot BotAPI, target Target, screen Screen) error {
	_, err := Show(bot, target, screen)
	return err
}

// Show is Render that also returns the id of the message now holding the
// screen, so later renders can edit it.
func Show(bot BotAPI, target Target, screen Screen) (int, error) {
	if target.CallbackID != "" {
		_ = Answer(bot, target.CallbackID, "", false)
	}

	if target.MessageID != 0 {
		var edit tgbotapi.EditMessageTextConfig
		if screen.Keyboard != nil {
			edit = tgbotapi.NewEditMessageTextAndMarkup(target.ChatID, target.MessageID, screen.Text, *screen.Keyboard)
		} else {
			edit = tgbotapi.NewEditMessageText(target.ChatID, target.MessageID, screen.Text)
		}
		edit.ParseMode = screen.ParseMode
		edit.DisableWebPagePreview = screen.DisablePreview

		if _, err := bot.Send(edit); err != nil {
			return 0, fmt.Errorf("edit message %d: %w", target.MessageID, err)
		}
		return target.MessageID, nil
	}

	msg := tgbotapi.NewMessage(target.ChatID, screen.Text)
	msg.ParseMode = screen.ParseMode
	msg.DisableWebPagePreview = screen.DisablePreview
	if screen.Keyboard != nil {
		msg.ReplyMarkup = *screen.Keyboard
	}
	sent, err := bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}

	if target.DeleteID != 0 {
		_, _ = bot.Request(tgbotapi.NewDeleteMessage(target.ChatID, target.DeleteID))
	}
	return sent.MessageID, nil
}

// Answer acknowledges a button press, optionally with a toast or an alert.
func Answer(bot BotAPI, callbackID, text string, alert bool) error {
	cb := tgbotapi.NewCallback(callbackID, text)
	if alert {
		cb = tgbotapi.NewCallbackWithAlert(callbackID, text)
	}
	_, err := bot.Request(cb)
	return err
}

// Keyboard builds an inline keyboard with one button per row.
func Keyboard(buttons ...tgbotapi.InlineKeyboardButton) *tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(b))
	}
	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

func Button(text, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}
