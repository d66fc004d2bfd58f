package cmds

import (
	"context"
	"fmt"

	"azadinet-bot/internal/stories/stats"
	"azadinet-bot/internal/telegram/actions"
	"azadinet-bot/internal/telegram/messages"
	"azadinet-bot/internal/telegram/view"
)

type StatsCommand struct {
	bot            view.BotAPI
	userService    userService
	catalogService catalogService
	statsService   statsService
}

func NewStatsCommand(
	bot view.BotAPI,
	userService userService,
	catalogService catalogService,
	statsService statsService,
) *StatsCommand {
	return &StatsCommand{
		bot:            bot,
		userService:    userService,
		catalogService: catalogService,
		statsService:   statsService,
	}
}

// Execute показывает количество пользователей, конфигов, сообщений и аптайм
func (c *StatsCommand) Execute(ctx context.Context, target view.Target) error {
	ids, err := c.userService.IDs(ctx)
	if err != nil {
		_ = view.Answer(c.bot, target.CallbackID, messages.Error, false)
		return fmt.Errorf("get users: %w", err)
	}

	text := messages.AdminStats(
		len(ids),
		c.catalogService.Count(),
		c.statsService.Messages(),
		stats.FormatUptime(c.statsService.Uptime()),
	)

	return view.Render(c.bot, target, view.Screen{
		Text:     text,
		Keyboard: view.Keyboard(view.Button(messages.ButtonBack, actions.DataAdminPanel)),
	})
}
