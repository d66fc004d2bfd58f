package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"azadinet-bot/internal/metrics"
	"azadinet-bot/internal/telegram/actions"
	"azadinet-bot/internal/telegram/cmds"
	"azadinet-bot/internal/telegram/flows/addconfig"
	"azadinet-bot/internal/telegram/flows/sendbroadcast"
	"azadinet-bot/internal/telegram/messages"
	"azadinet-bot/internal/telegram/states"
	"azadinet-bot/internal/telegram/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	prefixAddConfigState = "aac_"
	prefixBroadcastState = "abc_"
)

type Router struct {
	bot          view.BotAPI
	stateManager stateManager
	userService  userService
	statsService statsService
	adminChecker adminChecker
	logger       *slog.Logger

	// Handlers
	addConfigHandler *addconfig.Handler
	broadcastHandler *sendbroadcast.Handler
	menuCommand      *cmds.MenuCommand
	serversCommand   *cmds.ServersCommand
	pingCommand      *cmds.PingCommand
	adminCommand     *cmds.AdminCommand
	statsCommand     *cmds.StatsCommand
}

type stateManager interface {
	GetState(chatID int64) states.State
	Clear(chatID int64)
}

type userService interface {
	Register(ctx context.Context, telegramID int64) (bool, error)
}

type statsService interface {
	CountMessage() int64
}

type adminChecker interface {
	IsAdmin(telegramID int64) bool
}

// Route обрабатывает одно обновление. Паника внутри обработчика не роняет цикл.
func (r *Router) Route(ctx context.Context, update *tgbotapi.Update) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Panic while routing update",
				slog.Int("update_id", update.UpdateID),
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())))
			err = fmt.Errorf("panic: %v", rec)
		}
	}()

	// Получаем telegram_id
	telegramID := extractUserID(update)
	if telegramID == 0 {
		return nil // Некорректный update
	}

	r.statsService.CountMessage()

	// Регистрируем пользователя при любом взаимодействии
	isNew, err := r.userService.Register(ctx, telegramID)
	if err != nil {
		r.logger.Warn("Failed to register user", slog.Int64("user_id", telegramID), slog.Any("error", err))
	} else if isNew {
		r.logger.Info("New user registered", slog.Int64("user_id", telegramID))
	}

	// ПРИОРИТЕТ: команды отменяют любой флоу
	if update.Message != nil && update.Message.IsCommand() {
		metrics.UpdatesTotal.WithLabelValues("command").Inc()
		r.stateManager.Clear(update.Message.Chat.ID)
		return r.handleCommand(update, telegramID)
	}

	if update.CallbackQuery != nil {
		metrics.UpdatesTotal.WithLabelValues("callback").Inc()
		return r.handleCallback(ctx, update.CallbackQuery)
	}

	if update.Message != nil {
		// фото, стикеры и голосовые флоу не продвигают
		if update.Message.Text == "" {
			return nil
		}
		metrics.UpdatesTotal.WithLabelValues("text").Inc()
		return r.handleText(ctx, update, telegramID)
	}

	return nil
}

func (r *Router) handleCommand(update *tgbotapi.Update, telegramID int64) error {
	chatID := update.Message.Chat.ID

	switch update.Message.Command() {
	case "start":
		return r.menuCommand.Main(view.Chat(chatID), r.adminChecker.IsAdmin(telegramID))
	case "admin":
		if !r.adminChecker.IsAdmin(telegramID) {
			_, err := r.bot.Send(tgbotapi.NewMessage(chatID, messages.PermissionDenied))
			return err
		}
		return r.adminCommand.Panel(view.Chat(chatID))
	default:
		return nil
	}
}

func (r *Router) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) error {
	if query.Message == nil {
		_ = view.Answer(r.bot, query.ID, "", false)
		return nil
	}

	target := callbackTarget(query)

	// Любая кнопка сбрасывает незавершенный флоу
	r.stateManager.Clear(target.ChatID)

	action := actions.Decode(query.Data)

	if action.Kind.AdminOnly() && !r.adminChecker.IsAdmin(query.From.ID) {
		r.logger.Warn("Admin action denied",
			slog.Int64("user_id", query.From.ID),
			slog.String("action", action.Kind.String()))
		return view.Answer(r.bot, query.ID, messages.AccessDenied, true)
	}

	switch action.Kind {
	case actions.KindMainMenu:
		return r.menuCommand.Main(target, r.adminChecker.IsAdmin(query.From.ID))
	case actions.KindSubLink:
		return r.menuCommand.SubLink(target)
	case actions.KindCopySubLink:
		return r.menuCommand.CopySubLink(query.ID)
	case actions.KindServers:
		return r.serversCommand.Menu(ctx, target)
	case actions.KindShowConfig:
		return r.serversCommand.ShowConfig(ctx, target, action.Param)
	case actions.KindCopyConfig:
		return r.serversCommand.CopyConfig(ctx, target, action.Param)
	case actions.KindTools:
		return r.menuCommand.Tools(target)
	case actions.KindPingTest:
		return r.pingCommand.Execute(ctx, target)
	case actions.KindDNSTest:
		return r.menuCommand.DNSGuide(target)
	case actions.KindIPInfo:
		return r.menuCommand.IPGuide(target)
	case actions.KindClients:
		return r.menuCommand.Clients(target)
	case actions.KindFAQ:
		return r.menuCommand.FAQ(target)
	case actions.KindFAQDetail:
		index, ok := action.FAQIndex()
		return r.menuCommand.FAQDetail(target, index, ok)
	case actions.KindAdminPanel:
		return r.adminCommand.Panel(target)
	case actions.KindAdminStats:
		return r.statsCommand.Execute(ctx, target)
	case actions.KindAdminListConfigs:
		return r.adminCommand.ListConfigs(ctx, target)
	case actions.KindAdminAddConfig:
		return r.addConfigHandler.Start(target)
	case actions.KindAdminRemoveConfig:
		return r.adminCommand.RemoveMenu(ctx, target)
	case actions.KindAdminRemoveEntry:
		return r.adminCommand.RemoveEntry(ctx, target, action.Param)
	case actions.KindAdminBroadcast:
		return r.broadcastHandler.Start(target)
	case actions.KindAdminExportUsers:
		return r.adminCommand.ExportUsers(ctx, target)
	case actions.KindUnknown:
		r.logger.Debug("Unknown callback", slog.String("data", query.Data))
		return view.Answer(r.bot, query.ID, "", false)
	default:
		return fmt.Errorf("unhandled action kind: %s", action.Kind)
	}
}

func (r *Router) handleText(ctx context.Context, update *tgbotapi.Update, telegramID int64) error {
	chatID := update.Message.Chat.ID

	state := r.stateManager.GetState(chatID)
	if !state.IsActive() {
		return nil
	}

	// Флоу только для админа: чужой ввод сбрасывает состояние
	if !r.adminChecker.IsAdmin(telegramID) {
		r.stateManager.Clear(chatID)
		_, err := r.bot.Send(tgbotapi.NewMessage(chatID, messages.AdminOnlyInput))
		return err
	}

	// Проверяем состояние флоу добавления конфига
	if strings.HasPrefix(string(state), prefixAddConfigState) {
		return r.addConfigHandler.Handle(ctx, update, state)
	}

	// Проверяем состояние флоу рассылки
	if strings.HasPrefix(string(state), prefixBroadcastState) {
		return r.broadcastHandler.Handle(ctx, update, state)
	}

	r.stateManager.Clear(chatID)
	return fmt.Errorf("no handler for state %s", state)
}

// callbackTarget edits the pressed message in place unless it holds a photo,
// which has no text to edit; then the screen is sent anew and the photo removed.
func callbackTarget(query *tgbotapi.CallbackQuery) view.Target {
	target := view.Target{
		ChatID:     query.Message.Chat.ID,
		MessageID:  query.Message.MessageID,
		CallbackID: query.ID,
	}
	if len(query.Message.Photo) > 0 || query.Message.Document != nil {
		target.DeleteID = target.MessageID
		target.MessageID = 0
	}
	return target
}

func extractUserID(update *tgbotapi.Update) int64 {
	if update.Message != nil && update.Message.From != nil {
		return update.Message.From.ID
	}
	if update.CallbackQuery != nil && update.CallbackQuery.From != nil {
		return update.CallbackQuery.From.ID
	}
	return 0
}

// NewRouter создает новый роутер с зависимостями
func NewRouter(
	bot view.BotAPI,
	stateManager stateManager,
	userService userService,
	statsService statsService,
	adminChecker adminChecker,
	logger *slog.Logger,
	addConfigHandler *addconfig.Handler,
	broadcastHandler *sendbroadcast.Handler,
	menuCommand *cmds.MenuCommand,
	serversCommand *cmds.ServersCommand,
	pingCommand *cmds.PingCommand,
	adminCommand *cmds.AdminCommand,
	statsCommand *cmds.StatsCommand,
) *Router {
	return &Router{
		bot:              bot,
		stateManager:     stateManager,
		userService:      userService,
		statsService:     statsService,
		adminChecker:     adminChecker,
		logger:           logger,
		addConfigHandler: addConfigHandler,
		broadcastHandler: broadcastHandler,
		menuCommand:      menuCommand,
		serversCommand:   serversCommand,
		pingCommand:      pingCommand,
		adminCommand:     adminCommand,
		statsCommand:     statsCommand,
	}
}

// SetupBotCommands устанавливает команды для меню бота
func (r *Router) SetupBotCommands() error {
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "منوی اصلی",
		},
	}

	_, err := r.bot.Request(tgbotapi.NewSetMyCommands(commands...))
	return err
}

// SetupAdminCommands добавляет /admin в меню команд чата админа
func (r *Router) SetupAdminCommands(adminID int64) error {
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "منوی اصلی",
		},
		{
			Command:     "admin",
			Description: "پنل مدیریت",
		},
	}

	scope := tgbotapi.NewBotCommandScopeChat(adminID)
	_, err := r.bot.Request(tgbotapi.NewSetMyCommandsWithScope(scope, commands...))
	return err
}
