package users

import "context"

type (
	Storage interface {
		ListUsers(ctx context.Context) ([]int64, error)
		SaveUsers(ctx context.Context, ids []int64) error
	}
)
