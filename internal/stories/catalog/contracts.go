package catalog

import "context"

type (
	Storage interface {
		LoadCatalog(ctx context.Context) ([]ConfigEntry, error)
		SaveCatalog(ctx context.Context, entries []ConfigEntry) error
	}
)
