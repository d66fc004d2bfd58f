package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"azadinet-bot/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const pollTimeoutSeconds = 60

type Client struct {
	api     *tgbotapi.BotAPI
	logger  *slog.Logger
	limiter *rate.Limiter
	updates tgbotapi.UpdatesChannel
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewClient(cfg config.TelegramConfig, logger *slog.Logger) (*Client, error) {
	// long polling держит запрос pollTimeoutSeconds, таймаут клиента сверху
	httpClient := &http.Client{Timeout: cfg.Timeout + pollTimeoutSeconds*time.Second}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	// Rate limiting - исходящие сообщения не чаще cfg.RateLimit в секунду
	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}

	return &Client{
		api:     bot,
		logger:  logger,
		limiter: rate.NewLimiter(limit, 1),
		ctx:     context.Background(),
	}, nil
}

// Start начинает получение обновлений (long polling)
func (c *Client) Start(ctx context.Context) error {
	c.ctx, c.cancel = context.WithCancel(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds

	c.updates = c.api.GetUpdatesChan(u)

	c.logger.Info("Telegram bot started", slog.String("username", c.api.Self.UserName))
	return nil
}

// Stop останавливает получение обновлений
func (c *Client) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
	c.api.StopReceivingUpdates()
	c.logger.Info("Telegram bot stopped")
}

// GetUpdates возвращает канал с обновлениями
func (c *Client) GetUpdates() tgbotapi.UpdatesChannel {
	return c.updates
}

// SendMessage отправляет текстовое сообщение с rate limiting
func (c *Client) SendMessage(chatID int64, text string) error {
	_, err := c.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return err
	}
	return nil
}

// Send отправляет любое сообщение с rate limiting
func (c *Client) Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error) {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return tgbotapi.Message{}, fmt.Errorf("rate limiting: %w", err)
	}

	message, err := c.api.Send(chattable)
	if err != nil {
		c.logger.Debug("Send failed", slog.Any("error", err))
		return tgbotapi.Message{}, fmt.Errorf("send: %w", err)
	}

	return message, nil
}

// Request отправляет запрос к API без ожидания сообщения в ответ
// (callback answers, delete message, set commands)
func (c *Client) Request(chattable tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	if err := c.limiter.Wait(c.ctx); err != nil {
		return nil, fmt.Errorf("rate limiting: %w", err)
	}

	resp, err := c.api.Request(chattable)
	if err != nil {
		c.logger.Debug("API request failed", slog.Any("error", err))
		return nil, fmt.Errorf("api request: %w", err)
	}

	return resp, nil
}
