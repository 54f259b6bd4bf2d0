// Package worker hosts the background deliveries of the process.
package worker

import (
	"context"
	"log/slog"
	"time"

	"campus/config"
	"campus/internal/delivery"
	"campus/internal/domain/lifecycle"
	"campus/internal/domain/repository"

	"go.uber.org/fx"
)

// sessionSweeper periodically deletes expired session rows. Lazy expiry in
// the repository already keeps reads correct; the sweeper only bounds table
// growth, so a failed sweep is logged and retried on the next tick.
type sessionSweeper struct {
	interval    time.Duration
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
	done        chan struct{}
}

// SweeperParams holds dependencies for the session sweeper, injected by Fx.
type SweeperParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewSessionSweeper creates the session sweeper delivery.
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	s := &sessionSweeper{
		interval:    params.Cfg.Session.SweepInterval,
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
		done:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve runs the sweep loop until the process stops.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	deleted, err := s.sessionRepo.DeleteExpired(sweepCtx)
	if err != nil {
		s.logger.Error("Session sweep failed", slog.Any("error", err))

		return
	}

	if deleted > 0 {
		s.logger.Info("Session sweep removed expired sessions", slog.Int64("deleted", deleted))
	}
}

func (s *sessionSweeper) stop(_ context.Context) error {
	s.logger.Info("Stopping session sweeper")
	close(s.done)

	return nil
}
