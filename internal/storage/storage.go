package storage

import (
	"log/slog"
	"sync"

	"azadinet-bot/internal/stories/catalog"
)

// Options configures the JSON file store.
type Options struct {
	UsersPath      string
	ConfigsPath    string
	DefaultCatalog func() []catalog.ConfigEntry
	Logger         *slog.Logger
}

// storageImpl keeps users and the config catalog in two flat JSON files.
// mu serialises every read-modify-write against the files.
type storageImpl struct {
	usersPath      string
	configsPath    string
	defaultCatalog func() []catalog.ConfigEntry
	logger         *slog.Logger

	mu sync.Mutex
}

func New(opts Options) *storageImpl {
	if opts.DefaultCatalog == nil {
		opts.DefaultCatalog = catalog.DefaultEntries
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &storageImpl{
		usersPath:      opts.UsersPath,
		configsPath:    opts.ConfigsPath,
		defaultCatalog: opts.DefaultCatalog,
		logger:         opts.Logger,
	}
}
