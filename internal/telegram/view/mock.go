package view

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MockBotAPI records everything sent through it. SendErr, when set, fails
// Send calls whose chat id is a key.
type MockBotAPI struct {
	mu       sync.Mutex
	Sent     []tgbotapi.Chattable
	Requests []tgbotapi.Chattable
	SendErr  map[int64]error
}

func (m *MockBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		if err := m.SendErr[msg.ChatID]; err != nil {
			return tgbotapi.Message{}, err
		}
	}
	m.Sent = append(m.Sent, c)
	return tgbotapi.Message{MessageID: len(m.Sent)}, nil
}

func (m *MockBotAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// Texts returns the text of every sent message and edit, in order.
func (m *MockBotAPI) Texts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, c := range m.Sent {
		switch v := c.(type) {
		case tgbotapi.MessageConfig:
			out = append(out, v.Text)
		case tgbotapi.EditMessageTextConfig:
			out = append(out, v.Text)
		case tgbotapi.PhotoConfig:
			out = append(out, v.Caption)
		case tgbotapi.DocumentConfig:
			out = append(out, v.Caption)
		}
	}
	return out
}

// LastText returns the text of the most recent sent message or edit.
func (m *MockBotAPI) LastText() string {
	texts := m.Texts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

// Toasts returns the texts of answered callbacks, in order.
func (m *MockBotAPI) Toasts() []tgbotapi.CallbackConfig {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []tgbotapi.CallbackConfig
	for _, c := range m.Requests {
		if cb, ok := c.(tgbotapi.CallbackConfig); ok {
			out = append(out, cb)
		}
	}
	return out
}
