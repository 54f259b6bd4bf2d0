package repository

import (
	"context"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is returned when no user row matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines persistence operations over user accounts.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their login email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user account.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user account.
	Update(ctx context.Context, user *entity.User) error
}
