package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "campus/internal/delivery/context"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/usecase"

	"github.com/pkg/errors"
)

// contentService implements ContentUsecase over one ContentStore. The store
// may be the durable gorm one or the in-memory one; the rules here do not
// care which.
type contentService[T any] struct {
	store  repository.ContentStore[T]
	logger *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService[T any](store repository.ContentStore[T], logger *slog.Logger) usecase.ContentUsecase[T] {
	return &contentService[T]{store: store, logger: logger}
}

func (srv *contentService[T]) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *contentService[T]) List(ctx context.Context, includeInactive bool) ([]T, error) {
	items, err := srv.store.List(ctx, repository.ContentListOptions{ActiveOnly: !includeInactive})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list content")
	}

	return items, nil
}

func (srv *contentService[T]) Get(ctx context.Context, id int64) (*T, error) {
	item, err := srv.store.FindByID(ctx, id)
	if errors.Is(err, repository.ErrContentNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load content")
	}

	return item, nil
}

func (srv *contentService[T]) Create(ctx context.Context, item *T) (*T, error) {
	if err := srv.store.Create(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create content")
	}

	srv.log(ctx).Info("Content created", slog.String("type", fmt.Sprintf("%T", *item)))

	return item, nil
}

func (srv *contentService[T]) Update(ctx context.Context, id int64, item *T) (*T, error) {
	err := srv.store.Update(ctx, id, item)
	if errors.Is(err, repository.ErrContentNotFound) {
		return nil, domainerrors.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to update content")
	}

	return srv.Get(ctx, id)
}

func (srv *contentService[T]) Delete(ctx context.Context, id int64) error {
	err := srv.store.Delete(ctx, id)
	if errors.Is(err, repository.ErrContentNotFound) {
		return domainerrors.ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to delete content")
	}

	return nil
}
