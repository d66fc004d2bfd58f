package catalog

import (
	"context"
	"slices"
	"strings"
	"sync"

	"azadinet-bot/internal/metrics"

	"github.com/pkg/errors"
)

// Service owns the in-memory catalog. Every mutation is persisted through
// Storage before the lock is released.
type Service struct {
	storage Storage
	suffix  func() int

	mu      sync.RWMutex
	entries []ConfigEntry
	index   map[string]int
}

type Option func(*Service)

// WithSuffixSource replaces the random id suffix generator.
func WithSuffixSource(fn func() int) Option {
	return func(s *Service) {
		s.suffix = fn
	}
}

// NewService loads the catalog once from storage.
func NewService(ctx context.Context, storage Storage, opts ...Option) (*Service, error) {
	s := &Service{
		storage: storage,
		suffix:  randomSuffix,
	}
	for _, opt := range opts {
		opt(s)
	}

	entries, err := storage.LoadCatalog(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog from storage")
	}

	s.replace(entries)
	return s, nil
}

func (s *Service) replace(entries []ConfigEntry) {
	s.entries = make([]ConfigEntry, 0, len(entries))
	s.index = make(map[string]int, len(entries))
	for _, e := range entries {
		if i, ok := s.index[e.ID]; ok {
			s.entries[i] = e
			continue
		}
		s.index[e.ID] = len(s.entries)
		s.entries = append(s.entries, e)
	}
	metrics.CatalogEntries.Set(float64(len(s.entries)))
}

// List returns the entries in insertion order.
func (s *Service) List(_ context.Context) []ConfigEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.entries)
}

func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

func (s *Service) Get(_ context.Context, id string) (ConfigEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return ConfigEntry{}, ErrNotFound
	}
	return s.entries[i], nil
}

// Add validates uri, appends a new entry under a freshly generated id and
// persists the catalog. The in-memory catalog is left untouched when saving fails.
func (s *Service) Add(ctx context.Context, name, uri string) (string, error) {
	name = strings.TrimSpace(name)
	uri = strings.TrimSpace(uri)

	if !ValidateURI(uri) {
		return "", ErrInvalidURI
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := generateID(name, s.suffix, func(candidate string) bool {
		_, ok := s.index[candidate]
		return ok
	})

	next := append(slices.Clone(s.entries), ConfigEntry{ID: id, Name: name, URI: uri})
	if err := s.storage.SaveCatalog(ctx, next); err != nil {
		return "", errors.Wrap(err, "failed to save catalog")
	}

	s.replace(next)
	return id, nil
}

// Remove deletes the entry with the given id and returns it. ErrNotFound is
// returned when the id is absent; callers treat it as a notice, not a failure.
func (s *Service) Remove(ctx context.Context, id string) (ConfigEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[id]
	if !ok {
		return ConfigEntry{}, ErrNotFound
	}

	removed := s.entries[i]
	next := slices.Delete(slices.Clone(s.entries), i, i+1)
	if err := s.storage.SaveCatalog(ctx, next); err != nil {
		return ConfigEntry{}, errors.Wrap(err, "failed to save catalog")
	}

	s.replace(next)
	return removed, nil
}
