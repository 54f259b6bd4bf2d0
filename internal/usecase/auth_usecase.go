// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"campus/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the credentials required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the issued session and the identity snapshot
// stored in it.
type LoginOutput struct {
	SessionID string
	Identity  *entity.Identity
}

// AuthUsecase defines the interface for session-based authentication
// operations. This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// Login verifies credentials and issues a new session.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// AdminLogin behaves like Login but additionally requires the admin
	// role. A non-admin account gets no session.
	AdminLogin(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout destroys the session. Destroying an absent session succeeds.
	Logout(ctx context.Context, sessionID string) error

	// Authenticate resolves a session ID to the current identity. The
	// user record is re-read so a deleted user or a changed role is
	// reflected immediately. Returns (nil, nil) when the session does
	// not exist or has expired.
	Authenticate(ctx context.Context, sessionID string) (*entity.Identity, error)

	// CurrentUser returns the identity for the session, failing with an
	// authentication error when the session cannot be resolved.
	CurrentUser(ctx context.Context, sessionID string) (*entity.Identity, error)
}
