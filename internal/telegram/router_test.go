package telegram

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"azadinet-bot/internal/config"
	"azadinet-bot/internal/content"
	"azadinet-bot/internal/stories/broadcast"
	"azadinet-bot/internal/stories/catalog"
	"azadinet-bot/internal/stories/probe"
	"azadinet-bot/internal/stories/stats"
	"azadinet-bot/internal/stories/users"
	"azadinet-bot/internal/telegram/cmds"
	"azadinet-bot/internal/telegram/flows/addconfig"
	"azadinet-bot/internal/telegram/flows/sendbroadcast"
	"azadinet-bot/internal/telegram/states"
	"azadinet-bot/internal/telegram/view"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	adminID = 754
	userID  = 1001
)

type memoryStorage struct {
	users   []int64
	entries []catalog.ConfigEntry
}

func (m *memoryStorage) ListUsers(_ context.Context) ([]int64, error) {
	return slices.Clone(m.users), nil
}

func (m *memoryStorage) SaveUsers(_ context.Context, ids []int64) error {
	m.users = slices.Clone(ids)
	return nil
}

func (m *memoryStorage) LoadCatalog(_ context.Context) ([]catalog.ConfigEntry, error) {
	return slices.Clone(m.entries), nil
}

func (m *memoryStorage) SaveCatalog(_ context.Context, entries []catalog.ConfigEntry) error {
	m.entries = slices.Clone(entries)
	return nil
}

type botSender struct {
	bot *view.MockBotAPI
}

func (s botSender) SendMessage(chatID int64, text string) error {
	_, err := s.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

type fixture struct {
	router  *Router
	bot     *view.MockBotAPI
	states  *states.Manager
	storage *memoryStorage
	stats   *stats.Service
	catalog *catalog.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bot := &view.MockBotAPI{}
	storage := &memoryStorage{entries: catalog.DefaultEntries()}
	sm := states.NewManager()

	catalogService, err := catalog.NewService(context.Background(), storage)
	if err != nil {
		t.Fatalf("catalog.NewService: %v", err)
	}
	userService := users.NewService(storage)
	statsService := stats.NewService(time.Now)
	probeService := probe.NewService(nil, 50*time.Millisecond, 2, logger)
	broadcastService := broadcast.NewService(botSender{bot: bot}, userService, logger)

	c := &content.Content{FAQ: []content.FAQItem{{Question: "Q", Answer: "A"}}}
	adminCommand := cmds.NewAdminCommand(bot, catalogService, userService, logger)

	router := NewRouter(
		bot,
		sm,
		userService,
		statsService,
		NewAdminChecker(&config.TelegramConfig{AdminID: adminID}),
		logger,
		addconfig.NewHandler(bot, sm, catalogService, adminCommand, logger),
		sendbroadcast.NewHandler(bot, sm, broadcastService, adminCommand, logger),
		cmds.NewMenuCommand(bot, c, "https://example.com/sub"),
		cmds.NewServersCommand(bot, catalogService, logger),
		cmds.NewPingCommand(bot, catalogService, probeService, logger),
		adminCommand,
		cmds.NewStatsCommand(bot, userService, catalogService, statsService),
	)

	return &fixture{
		router:  router,
		bot:     bot,
		states:  sm,
		storage: storage,
		stats:   statsService,
		catalog: catalogService,
	}
}

func command(from int64, cmd string) *tgbotapi.Update {
	return &tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: from},
		Chat:      &tgbotapi.Chat{ID: from},
		Text:      "/" + cmd,
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(cmd) + 1}},
	}}
}

func text(from int64, body string) *tgbotapi.Update {
	return &tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 2,
		From:      &tgbotapi.User{ID: from},
		Chat:      &tgbotapi.Chat{ID: from},
		Text:      body,
	}}
}

func press(from int64, data string) *tgbotapi.Update {
	return &tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb-" + data,
		From: &tgbotapi.User{ID: from},
		Data: data,
		Message: &tgbotapi.Message{
			MessageID: 7,
			Chat:      &tgbotapi.Chat{ID: from},
			Text:      "menu",
		},
	}}
}

func (f *fixture) route(t *testing.T, update *tgbotapi.Update) {
	t.Helper()
	if err := f.router.Route(context.Background(), update); err != nil {
		t.Fatalf("Route: %v", err)
	}
}

func TestStartRegistersAndCounts(t *testing.T) {
	f := newFixture(t)

	f.route(t, command(userID, "start"))
	f.route(t, command(userID, "start"))
	f.route(t, press(adminID, "sublink"))

	if want := []int64{adminID, userID}; !slices.Equal(f.storage.users, want) {
		t.Errorf("registered users = %v, want %v", f.storage.users, want)
	}
	if f.stats.Messages() != 3 {
		t.Errorf("Messages() = %d, want 3", f.stats.Messages())
	}
	if !strings.Contains(f.bot.Texts()[0], "آزادی‌نت") {
		t.Errorf("first reply %q is not the main menu", f.bot.Texts()[0])
	}
}

func TestAdminCommandPermission(t *testing.T) {
	f := newFixture(t)

	f.route(t, command(userID, "admin"))
	if got := f.bot.LastText(); got != "⛔ شما دسترسی لازم را ندارید." {
		t.Errorf("non-admin /admin reply = %q", got)
	}

	f.route(t, command(adminID, "admin"))
	if got := f.bot.LastText(); got != "🛠️ پنل مدیریت:" {
		t.Errorf("admin /admin reply = %q", got)
	}
}

func TestAdminCallbackRecheckedAtDispatch(t *testing.T) {
	f := newFixture(t)

	for _, data := range []string{"admin_panel", "admin_stats", "admin_export_users", "admin_remove_us_vless_1", "admin_add_config"} {
		f.route(t, press(userID, data))
	}

	if len(f.bot.Sent) != 0 {
		t.Errorf("non-admin callbacks rendered %d screens, want 0", len(f.bot.Sent))
	}
	for _, toast := range f.bot.Toasts() {
		if !toast.ShowAlert || toast.Text == "" {
			t.Errorf("toast = %+v, want permission alert", toast)
		}
	}
	if f.catalog.Count() != 10 {
		t.Errorf("catalog count = %d, non-admin remove must not apply", f.catalog.Count())
	}
	if f.states.GetState(userID) != states.StateNone {
		t.Error("non-admin add config started a flow")
	}
}

func TestNonAdminTextWithActiveStateIsRejected(t *testing.T) {
	f := newFixture(t)
	f.states.SetState(userID, states.AdminBroadcastWaitText, nil)

	f.route(t, text(userID, "hello everyone"))

	if f.states.GetState(userID) != states.StateNone {
		t.Error("state not cleared after rejected input")
	}
	if got := f.bot.LastText(); got != "⛔ فقط مدیر می‌تواند از این بخش استفاده کند." {
		t.Errorf("reply = %q", got)
	}
	if len(f.bot.Sent) != 1 {
		t.Errorf("sent %d messages, broadcast must not run", len(f.bot.Sent))
	}
}

func TestTextWithoutStateIsIgnored(t *testing.T) {
	f := newFixture(t)

	f.route(t, text(adminID, "just chatting"))

	if len(f.bot.Sent) != 0 {
		t.Errorf("sent %d messages for idle text, want 0", len(f.bot.Sent))
	}
}

func TestAddConfigThroughRouter(t *testing.T) {
	f := newFixture(t)

	f.route(t, press(adminID, "admin_add_config"))
	f.route(t, text(adminID, "Edge Node"))
	f.route(t, text(adminID, "ftp://nope"))
	if f.states.GetState(adminID) != states.AdminAddConfigWaitURL {
		t.Fatalf("state after invalid url = %s", f.states.GetState(adminID))
	}
	f.route(t, text(adminID, "hy2://pw@edge.example.com:8443"))

	if f.catalog.Count() != 11 {
		t.Fatalf("catalog count = %d, want 11", f.catalog.Count())
	}
	added := f.storage.entries[10]
	if added.Name != "Edge Node" || !strings.HasPrefix(added.ID, "edgenode_") {
		t.Errorf("persisted entry = %+v", added)
	}
	if f.states.GetState(adminID) != states.StateNone {
		t.Errorf("state after add = %s", f.states.GetState(adminID))
	}
}

func TestCallbackCancelsPendingFlow(t *testing.T) {
	f := newFixture(t)

	f.route(t, press(adminID, "admin_add_config"))
	f.route(t, text(adminID, "Name"))
	f.route(t, press(adminID, "admin_panel"))

	if f.states.GetState(adminID) != states.StateNone {
		t.Errorf("state after cancel = %s, want none", f.states.GetState(adminID))
	}
	if f.states.GetData(adminID) != nil {
		t.Error("flow data kept after cancel")
	}
}

func TestCommandCancelsPendingFlow(t *testing.T) {
	f := newFixture(t)

	f.route(t, press(adminID, "admin_broadcast"))
	f.route(t, command(adminID, "start"))
	f.route(t, text(adminID, "not a broadcast"))

	if f.states.GetState(adminID) != states.StateNone {
		t.Errorf("state after /start = %s, want none", f.states.GetState(adminID))
	}
	if slices.Contains(f.bot.Texts(), "not a broadcast") {
		t.Fatal("broadcast ran after /start cancelled it")
	}
}

func TestBroadcastThroughRouter(t *testing.T) {
	f := newFixture(t)
	f.storage.users = []int64{1, 2, 3}
	f.bot.SendErr = map[int64]error{2: io.ErrClosedPipe}

	f.route(t, press(adminID, "admin_broadcast"))
	f.route(t, text(adminID, "news"))

	var delivered []int64
	for _, c := range f.bot.Sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok && msg.Text == "news" {
			delivered = append(delivered, msg.ChatID)
		}
	}
	// admin is registered by the interaction itself
	if want := []int64{1, 3, adminID}; !slices.Equal(delivered, want) {
		t.Errorf("delivered to %v, want %v", delivered, want)
	}
	if !slices.Contains(f.bot.Texts(), "✅ ارسال شد برای 3 کاربر") {
		t.Errorf("no success count in %q", f.bot.Texts())
	}
}

func TestPhotoDuringBroadcastIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.storage.users = []int64{1, 2, 3}

	f.route(t, press(adminID, "admin_broadcast"))
	sentBefore := len(f.bot.Sent)

	photo := &tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 3,
		From:      &tgbotapi.User{ID: adminID},
		Chat:      &tgbotapi.Chat{ID: adminID},
		Photo:     []tgbotapi.PhotoSize{{FileID: "photo", Width: 90, Height: 90}},
	}}
	f.route(t, photo)

	if got := len(f.bot.Sent); got != sentBefore {
		t.Errorf("sent %d messages after a photo, want none", got-sentBefore)
	}
	if f.states.GetState(adminID) != states.AdminBroadcastWaitText {
		t.Errorf("state after photo = %s, want %s", f.states.GetState(adminID), states.AdminBroadcastWaitText)
	}

	f.route(t, text(adminID, "news"))
	if !slices.Contains(f.bot.Texts(), "✅ ارسال شد برای 4 کاربر") {
		t.Errorf("text after photo did not broadcast: %q", f.bot.Texts())
	}
}

func TestCopySublinkIsNotAConfigLookup(t *testing.T) {
	f := newFixture(t)

	f.route(t, press(userID, "copy_sublink"))

	toasts := f.bot.Toasts()
	if len(toasts) != 1 || toasts[0].Text != "✅ لینک اشتراک در حافظه موقت کپی شد!" || !toasts[0].ShowAlert {
		t.Errorf("toasts = %+v", toasts)
	}
}

func TestPanicIsRecovered(t *testing.T) {
	f := newFixture(t)
	f.router.menuCommand = nil

	err := f.router.Route(context.Background(), command(userID, "start"))
	if err == nil || !strings.Contains(err.Error(), "panic") {
		t.Fatalf("Route error = %v, want recovered panic", err)
	}
}
