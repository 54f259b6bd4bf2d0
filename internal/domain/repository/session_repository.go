// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"campus/internal/domain/entity"
)

// SessionRepository is the durable, TTL-bounded store behind the auth
// middleware. Sessions must survive process restarts, so the implementation
// lives in the relational database next to every other record.
//
// Absence is a normal outcome: Get on a missing or expired session and
// Destroy on a missing session both succeed. Only storage faults are errors,
// and the middleware treats those as "session unavailable" rather than
// failing the request.
type SessionRepository interface {
	// Get returns the session for the given id, or nil when no live session
	// exists. An expired row is deleted on the spot instead of being
	// returned stale.
	Get(ctx context.Context, sessionID string) (*entity.Session, error)

	// Set upserts the session with ExpiresAt = now + ttl. Concurrent writes
	// for the same id (parallel tabs) must converge on a single row carrying
	// the last payload written.
	Set(ctx context.Context, sessionID string, payload entity.SessionPayload, ttl time.Duration) error

	// Destroy deletes the session row. Destroying an absent session is not
	// an error.
	Destroy(ctx context.Context, sessionID string) error

	// DeleteExpired batch-deletes every row past its expiry and returns the
	// number of rows removed. Lazy expiry in Get already guarantees no stale
	// reads; this is housekeeping to bound table growth.
	DeleteExpired(ctx context.Context) (int64, error)
}
