package cmds

import (
	"strings"

	"azadinet-bot/internal/content"
	"azadinet-bot/internal/telegram/actions"
	"azadinet-bot/internal/telegram/messages"
	"azadinet-bot/internal/telegram/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MenuCommand renders the public menus: main menu, subscription link,
// tools guides, clients and FAQ.
type MenuCommand struct {
	bot     view.BotAPI
	content *content.Content
	subLink string
}

func NewMenuCommand(bot view.BotAPI, c *content.Content, subLink string) *MenuCommand {
	return &MenuCommand{
		bot:     bot,
		content: c,
		subLink: subLink,
	}
}

// Main показывает главное меню; кнопка админки только для админа
func (c *MenuCommand) Main(target view.Target, isAdmin bool) error {
	buttons := []tgbotapi.InlineKeyboardButton{
		view.Button(messages.ButtonSubLink, actions.DataSubLink),
		view.Button(messages.ButtonServers, actions.DataServers),
		view.Button(messages.ButtonTools, actions.DataTools),
		view.Button(messages.ButtonClients, actions.DataClients),
		view.Button(messages.ButtonFAQ, actions.DataFAQ),
	}
	if isAdmin {
		buttons = append(buttons, view.Button(messages.ButtonAdminPanel, actions.DataAdminPanel))
	}

	return view.Render(c.bot, target, view.Screen{
		Text:     messages.MainMenu,
		Keyboard: view.Keyboard(buttons...),
	})
}

func (c *MenuCommand) SubLink(target view.Target) error {
	return view.Render(c.bot, target, view.Screen{
		Text:      messages.SubLink(c.subLink),
		ParseMode: "Markdown",
		Keyboard: view.Keyboard(
			view.Button(messages.ButtonCopyLink, actions.DataCopySubLink),
			view.Button(messages.ButtonBack, actions.DataBack),
		),
	})
}

// CopySubLink only acknowledges; the link is already on screen as a code span
func (c *MenuCommand) CopySubLink(callbackID string) error {
	return view.Answer(c.bot, callbackID, messages.SubLinkCopied, true)
}

func (c *MenuCommand) Tools(target view.Target) error {
	return view.Render(c.bot, target, view.Screen{
		Text: messages.ToolsTitle,
		Keyboard: view.Keyboard(
			view.Button(messages.ButtonPingTest, actions.DataPingTest),
			view.Button(messages.ButtonDNSTest, actions.DataDNSTest),
			view.Button(messages.ButtonIPInfo, actions.DataIPInfo),
			view.Button(messages.ButtonBack, actions.DataBack),
		),
	})
}

func (c *MenuCommand) DNSGuide(target view.Target) error {
	return view.Render(c.bot, target, view.Screen{
		Text:     messages.DNSLeakGuide(c.content.Tools.DNSLeakSites),
		Keyboard: view.Keyboard(view.Button(messages.ButtonBack, actions.DataTools)),
	})
}

func (c *MenuCommand) IPGuide(target view.Target) error {
	return view.Render(c.bot, target, view.Screen{
		Text:     strings.TrimRight(messages.IPInfoGuide(c.content.Tools.IPSites), "\n"),
		Keyboard: view.Keyboard(view.Button(messages.ButtonBack, actions.DataTools)),
	})
}

func (c *MenuCommand) Clients(target view.Target) error {
	var text strings.Builder
	text.WriteString(messages.ClientsTitle)
	text.WriteString("\n\n")
	for _, client := range c.content.Clients {
		text.WriteString(messages.ClientLine(client.Platform, client.Name, client.URL))
	}

	return view.Render(c.bot, target, view.Screen{
		Text:           text.String(),
		ParseMode:      "Markdown",
		DisablePreview: true,
		Keyboard:       view.Keyboard(view.Button(messages.ButtonBack, actions.DataBack)),
	})
}

func (c *MenuCommand) FAQ(target view.Target) error {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(c.content.FAQ)+1)
	for i, item := range c.content.FAQ {
		buttons = append(buttons, view.Button(messages.ButtonFAQPrefix+item.Question, actions.FAQDetail(i)))
	}
	buttons = append(buttons, view.Button(messages.ButtonBack, actions.DataBack))

	return view.Render(c.bot, target, view.Screen{
		Text:     messages.FAQTitle,
		Keyboard: view.Keyboard(buttons...),
	})
}

// FAQDetail показывает ответ; неизвестный индекс -> тост
func (c *MenuCommand) FAQDetail(target view.Target, index int, ok bool) error {
	item, found := c.content.FAQAt(index)
	if !ok || !found {
		return view.Answer(c.bot, target.CallbackID, messages.FAQNotFound, false)
	}

	return view.Render(c.bot, target, view.Screen{
		Text:     messages.FAQDetail(item.Question, item.Answer),
		Keyboard: view.Keyboard(view.Button(messages.ButtonBack, actions.DataFAQ)),
	})
}
