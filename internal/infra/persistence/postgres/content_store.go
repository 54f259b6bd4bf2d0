package postgres

import (
	"context"

	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contentStore is the durable implementation of the generic content
// capability. One instance per content type, all sharing the gorm pool.
type contentStore[T any] struct {
	db *gorm.DB
}

// NewContentStore is the constructor for the gorm-backed content store.
func NewContentStore[T any](db *gorm.DB) repository.ContentStore[T] {
	return &contentStore[T]{db: db}
}

func (s *contentStore[T]) List(ctx context.Context, opts repository.ContentListOptions) ([]T, error) {
	query := s.db.WithContext(ctx).Model(new(T))
	if opts.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	var items []T
	if err := query.Order("id DESC").Find(&items).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list content")
	}

	return items, nil
}

func (s *contentStore[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	item := new(T)
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(item).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find content by id")
	}

	return item, nil
}

func (s *contentStore[T]) Create(ctx context.Context, item *T) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("duplicate content key")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required content fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create content")
	}

	return nil
}

func (s *contentStore[T]) Update(ctx context.Context, id int64, item *T) error {
	result := s.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(item)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("duplicate content key")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update content")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func (s *contentStore[T]) Delete(ctx context.Context, id int64) error {
	result := s.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete content")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}
