package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrContentNotFound is returned when a content row is absent.
var ErrContentNotFound = errors.New("content not found")

// ContentListOptions narrows a content listing.
type ContentListOptions struct {
	// ActiveOnly restricts the listing to rows whose active flag is set.
	// Public reads pass true; the admin backend lists everything.
	ActiveOnly bool
}

// ContentStore is the uniform persistence capability behind the generic
// content endpoints (projects, news, events, courses, faculty, partnerships,
// testimonials, contact messages, settings, feature flags). Two
// implementations exist: the gorm-backed durable store and an in-memory
// store for development without a database. One of them is chosen once
// at process start.
type ContentStore[T any] interface {
	List(ctx context.Context, opts ContentListOptions) ([]T, error)
	FindByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id int64, item *T) error
	Delete(ctx context.Context, id int64) error
}
