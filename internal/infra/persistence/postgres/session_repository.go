// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements repository.SessionRepository on the sessions
// table. Sessions live in the same relational schema as every other record
// so they survive process restarts without an extra store.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Get reads a session row. A missing row is a normal absent result, not an
// error. A row past its expiry is deleted on the spot and reported absent so
// no caller ever sees stale session data.
func (repo *sessionRepository) Get(ctx context.Context, sessionID string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", sessionID).
		First(&sessionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read session "+sessionID)
	}

	session, err := sessionM.ToDomain()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "corrupt payload for session "+sessionID)
	}

	if session.Expired(time.Now()) {
		// Lazy expiry. A failure to delete here is ignored: the row is
		// already invisible to every reader and the sweep will catch it.
		repo.db.WithContext(ctx).
			Where("id = ?", sessionID).
			Delete(&model.SessionModel{})

		return nil, nil
	}

	return session, nil
}

// Set upserts the session row with a fresh expiry. Concurrent requests for
// the same session id (parallel tabs) converge on one row holding the last
// payload written.
func (repo *sessionRepository) Set(ctx context.Context, sessionID string, payload entity.SessionPayload, ttl time.Duration) error {
	sessionM, err := model.SessionModelFromPayload(sessionID, payload, time.Now().Add(ttl))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to encode session "+sessionID)
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "expires_at", "updated_at"}),
		}).
		Create(sessionM).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to write session "+sessionID)
	}

	return nil
}

// Destroy deletes the session row. Destroying an already-absent session
// succeeds, which makes logout idempotent.
func (repo *sessionRepository) Destroy(ctx context.Context, sessionID string) error {
	err := repo.db.WithContext(ctx).
		Where("id = ?", sessionID).
		Delete(&model.SessionModel{}).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to destroy session "+sessionID)
	}

	return nil
}

// DeleteExpired batch-deletes rows past their expiry and returns the count.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&model.SessionModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}
