package cmds

import (
	"context"
	"log/slog"
	"strings"

	"azadinet-bot/internal/stories/catalog"
	"azadinet-bot/internal/stories/probe"
	"azadinet-bot/internal/telegram/actions"
	"azadinet-bot/internal/telegram/messages"
	"azadinet-bot/internal/telegram/view"

	"github.com/samber/lo"
)

var tierIcons = map[probe.Tier]string{
	probe.TierGood: "🟢",
	probe.TierFair: "🟡",
	probe.TierPoor: "🟠",
}

type PingCommand struct {
	bot            view.BotAPI
	catalogService catalogService
	probeService   probeService
	logger         *slog.Logger
}

func NewPingCommand(
	bot view.BotAPI,
	catalogService catalogService,
	probeService probeService,
	logger *slog.Logger,
) *PingCommand {
	return &PingCommand{
		bot:            bot,
		catalogService: catalogService,
		probeService:   probeService,
		logger:         logger,
	}
}

// Execute проверяет доступность всех серверов каталога и показывает отчет
func (c *PingCommand) Execute(ctx context.Context, target view.Target) error {
	messageID, err := view.Show(c.bot, target, view.Screen{Text: messages.PingInProgress})
	if err != nil {
		return err
	}
	// отчет заменяет сообщение о проверке
	target = view.Target{ChatID: target.ChatID, MessageID: messageID}

	targets := lo.Map(c.catalogService.List(ctx), func(e catalog.ConfigEntry, _ int) probe.Target {
		return probe.Target{ID: e.ID, Name: e.Name, URI: e.URI}
	})
	results := c.probeService.Run(ctx, targets)

	c.logger.Debug("Ping test finished", slog.Int("targets", len(results)))

	return view.Render(c.bot, target, view.Screen{
		Text:     FormatPingReport(results),
		Keyboard: view.Keyboard(view.Button(messages.ButtonBack, actions.DataTools)),
	})
}

// FormatPingReport renders one line per result in the given order followed by
// the tier legend.
func FormatPingReport(results []probe.Result) string {
	lines := make([]string, 0, len(results))
	for _, res := range results {
		switch res.Tier {
		case probe.TierUnknownFormat:
			lines = append(lines, messages.PingUnknownFormat(res.Name))
		case probe.TierUnreachable:
			lines = append(lines, messages.PingUnreachable(res.Name))
		default:
			lines = append(lines, messages.PingLatency(tierIcons[res.Tier], res.Name, res.LatencyMS()))
		}
	}
	if len(lines) == 0 {
		lines = append(lines, messages.PingNoConfigs)
	}

	return messages.PingTitle + "\n\n" + strings.Join(lines, "\n") + "\n\n" + messages.PingLegend
}
