package model

import (
	"encoding/json"
	"time"

	"campus/internal/domain/entity"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

// SessionModel mirrors the 'sessions' table. The payload column is JSONB so
// the identity snapshot stays queryable during incident debugging.
type SessionModel struct {
	ID        string         `gorm:"type:varchar(128);primary_key"`
	Payload   datatypes.JSON `gorm:"type:jsonb;not null"`
	ExpiresAt time.Time      `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts the persistence model to a domain entity.
func (m *SessionModel) ToDomain() (*entity.Session, error) {
	if m == nil {
		return nil, nil
	}

	var payload entity.SessionPayload
	if err := json.Unmarshal(m.Payload, &payload); err != nil {
		return nil, errors.Wrap(err, "unmarshal session payload")
	}

	return &entity.Session{
		ID:        m.ID,
		Payload:   payload,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// SessionModelFromPayload builds the persistence row for an upsert.
func SessionModelFromPayload(sessionID string, payload entity.SessionPayload, expiresAt time.Time) (*SessionModel, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal session payload")
	}

	return &SessionModel{
		ID:        sessionID,
		Payload:   datatypes.JSON(raw),
		ExpiresAt: expiresAt,
	}, nil
}
