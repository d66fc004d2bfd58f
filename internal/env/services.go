package environment

import (
	"context"
	"log/slog"
	"time"

	"azadinet-bot/internal/config"
	"azadinet-bot/internal/content"
	"azadinet-bot/internal/infra/sqlite3"
	"azadinet-bot/internal/storage"
	"azadinet-bot/internal/storage/sqlstore"
	"azadinet-bot/internal/stories/broadcast"
	"azadinet-bot/internal/stories/catalog"
	"azadinet-bot/internal/stories/probe"
	"azadinet-bot/internal/stories/stats"
	"azadinet-bot/internal/stories/users"
	"azadinet-bot/internal/telegram"
	"azadinet-bot/internal/telegram/cmds"
	"azadinet-bot/internal/telegram/flows/addconfig"
	"azadinet-bot/internal/telegram/flows/sendbroadcast"
	"azadinet-bot/internal/telegram/states"
	"azadinet-bot/internal/workers"
	"azadinet-bot/internal/workers/healthcheck"

	"github.com/pkg/errors"
)

// store is what both backends provide to the catalog and user services.
type store interface {
	catalog.Storage
	users.Storage
}

type Services struct {
	TelegramRouter *telegram.Router
	WorkerManager  *workers.Manager
}

func newServices(ctx context.Context, clients *Clients, cfg *config.Config, logger *slog.Logger) (*Services, error) {
	var s Services

	if clients.TelegramBot == nil {
		return nil, errors.New("telegram bot не инициализирован")
	}

	storageImpl, err := provideStore(ctx, clients.SQLiteDB, cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	botContent, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, errors.Wrap(err, "load content")
	}

	catalogService, err := catalog.NewService(ctx, storageImpl)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}
	userService := users.NewService(storageImpl)
	probeService := probe.NewService(nil, cfg.Probe.Timeout, cfg.Probe.Concurrency, logger.WithGroup("probe"))
	broadcastService := broadcast.NewService(clients.TelegramBot, userService, logger.WithGroup("broadcast"))
	statsService := stats.NewService(time.Now)

	stateManager := states.NewManager()
	adminChecker := telegram.NewAdminChecker(&cfg.Telegram)

	menuCommand := cmds.NewMenuCommand(clients.TelegramBot, botContent, cfg.Telegram.SubscriptionLink)
	serversCommand := cmds.NewServersCommand(clients.TelegramBot, catalogService, logger)
	pingCommand := cmds.NewPingCommand(clients.TelegramBot, catalogService, probeService, logger)
	adminCommand := cmds.NewAdminCommand(clients.TelegramBot, catalogService, userService, logger)
	statsCommand := cmds.NewStatsCommand(clients.TelegramBot, userService, catalogService, statsService)

	addConfigHandler := addconfig.NewHandler(
		clients.TelegramBot,
		stateManager,
		catalogService,
		adminCommand,
		logger,
	)
	broadcastHandler := sendbroadcast.NewHandler(
		clients.TelegramBot,
		stateManager,
		broadcastService,
		adminCommand,
		logger,
	)

	s.TelegramRouter = telegram.NewRouter(
		clients.TelegramBot,
		stateManager,
		userService,
		statsService,
		adminChecker,
		logger.WithGroup("router"),
		addConfigHandler,
		broadcastHandler,
		menuCommand,
		serversCommand,
		pingCommand,
		adminCommand,
		statsCommand,
	)

	var bgWorkers []workers.Worker
	if cfg.HealthCheck.Enabled() {
		bgWorkers = append(bgWorkers, healthcheck.NewWorker(
			catalogService,
			probeService,
			clients.TelegramBot,
			cfg.Telegram.AdminID,
			cfg.HealthCheck.Schedule,
			logger.WithGroup("healthcheck"),
		))
	}
	s.WorkerManager = workers.NewManager(logger, bgWorkers...)

	return &s, nil
}

func provideStore(ctx context.Context, db *sqlite3.DB, cfg config.StoreConfig, logger *slog.Logger) (store, error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		if db == nil {
			return nil, errors.New("sqlite store selected but database is not open")
		}
		sqlStore := sqlstore.New(db.DB)
		if err := sqlStore.Migrate(ctx, catalog.DefaultEntries()); err != nil {
			return nil, errors.Wrap(err, "migrate sqlite store")
		}
		return sqlStore, nil
	default:
		return storage.New(storage.Options{
			UsersPath:   cfg.UsersPath,
			ConfigsPath: cfg.ConfigsPath,
			Logger:      logger.WithGroup("storage"),
		}), nil
	}
}
