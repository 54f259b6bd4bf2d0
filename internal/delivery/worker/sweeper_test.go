package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"campus/config"
	mockRepo "campus/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func sweeperConfig(interval time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{SweepInterval: interval}

	return cfg
}

func TestSessionSweeper_DeletesExpiredOnTick(t *testing.T) {
	var sweeps atomic.Int32

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	sessionRepo.EXPECT().
		DeleteExpired(mock.Anything).
		RunAndReturn(func(ctx context.Context) (int64, error) {
			sweeps.Add(1)
			return 3, nil
		})

	lc := fxtest.NewLifecycle(t)
	sweeper, err := NewSessionSweeper(SweeperParams{
		Lc:          lc,
		Cfg:         sweeperConfig(10 * time.Millisecond),
		SessionRepo: sessionRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sweeper.Serve(ctx) }()

	assert.Eventually(t, func() bool { return sweeps.Load() >= 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after context cancellation")
	}
}

func TestSessionSweeper_SweepFailureIsNotFatal(t *testing.T) {
	var sweeps atomic.Int32

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	sessionRepo.EXPECT().
		DeleteExpired(mock.Anything).
		RunAndReturn(func(ctx context.Context) (int64, error) {
			sweeps.Add(1)
			return 0, errors.New("deadlock detected")
		})

	lc := fxtest.NewLifecycle(t)
	sweeper, err := NewSessionSweeper(SweeperParams{
		Lc:          lc,
		Cfg:         sweeperConfig(10 * time.Millisecond),
		SessionRepo: sessionRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- sweeper.Serve(ctx) }()

	// The loop keeps ticking after a failed sweep.
	assert.Eventually(t, func() bool { return sweeps.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
