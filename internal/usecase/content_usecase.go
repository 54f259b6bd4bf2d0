package usecase

import (
	"context"
)

// ContentUsecase exposes uniform CRUD over one content collection
// (projects, news, events and so on). Public listings only surface
// active items; the admin surface sees everything.
type ContentUsecase[T any] interface {
	List(ctx context.Context, includeInactive bool) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id int64, item *T) (*T, error)
	Delete(ctx context.Context, id int64) error
}
