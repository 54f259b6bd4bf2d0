package entity

import (
	"time"
)

// SessionPayload is the fixed shape of data a session carries. Every reader
// and writer of session state goes through this struct; there is no ad hoc
// field bag.
type SessionPayload struct {
	Identity Identity  `json:"identity"`
	IssuedAt time.Time `json:"issuedAt"`
}

// Session binds an opaque client-held identifier to a payload with an expiry.
// A session is visible only while now < ExpiresAt; an expired row is deleted
// lazily on the next read and eventually by the periodic sweep.
type Session struct {
	ID        string         // Opaque identifier held by the client in a cookie.
	Payload   SessionPayload // Identity snapshot and issue metadata.
	ExpiresAt time.Time      // Absolute expiry; reads past this instant see nothing.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the session is past its expiry at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
