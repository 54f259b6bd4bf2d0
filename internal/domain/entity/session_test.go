package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	session := &Session{ExpiresAt: now}

	assert.False(t, session.Expired(now.Add(-time.Nanosecond)))
	assert.True(t, session.Expired(now), "expiry instant itself is already expired")
	assert.True(t, session.Expired(now.Add(time.Nanosecond)))
}
