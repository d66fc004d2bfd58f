package users

import (
	"context"
	"slices"
	"sync"

	"azadinet-bot/internal/metrics"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Service provides business logic for the user registry
type Service struct {
	storage Storage
	mu      sync.Mutex
}

// NewService creates a new user service
func NewService(storage Storage) *Service {
	return &Service{
		storage: storage,
	}
}

// Register добавляет пользователя в реестр, если его там еще нет.
// Возвращает true, если пользователь новый.
func (s *Service) Register(ctx context.Context, telegramID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.storage.ListUsers(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list users")
	}

	if slices.Contains(ids, telegramID) {
		return false, nil
	}

	ids = normalize(append(ids, telegramID))
	if err := s.storage.SaveUsers(ctx, ids); err != nil {
		return false, errors.Wrap(err, "failed to save users")
	}

	metrics.RegisteredUsers.Set(float64(len(ids)))
	return true, nil
}

// RegisterMany добавляет сразу несколько id одним чтением и одной записью
// хранилища. Возвращает число новых пользователей.
func (s *Service) RegisterMany(ctx context.Context, telegramIDs []int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.storage.ListUsers(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list users")
	}

	known := normalize(ids)
	added := lo.Without(lo.Uniq(telegramIDs), known...)
	if len(added) == 0 {
		return 0, nil
	}

	ids = normalize(append(known, added...))
	if err := s.storage.SaveUsers(ctx, ids); err != nil {
		return 0, errors.Wrap(err, "failed to save users")
	}

	metrics.RegisteredUsers.Set(float64(len(ids)))
	return len(added), nil
}

// All возвращает всех пользователей без повторов по возрастанию id
func (s *Service) All(ctx context.Context) ([]User, error) {
	ids, err := s.IDs(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(ids, func(id int64, _ int) User {
		return User{TelegramID: id}
	}), nil
}

// IDs возвращает отсортированные id пользователей без повторов
func (s *Service) IDs(ctx context.Context) ([]int64, error) {
	ids, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	ids = normalize(ids)
	metrics.RegisteredUsers.Set(float64(len(ids)))
	return ids, nil
}

func normalize(ids []int64) []int64 {
	out := lo.Uniq(ids)
	slices.Sort(out)
	return out
}
