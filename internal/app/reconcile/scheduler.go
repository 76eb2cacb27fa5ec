package reconcile

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen/quotesync/internal/domain"
)

// Runner performs sync passes. *Reconciler implements it.
type Runner interface {
	Run(ctx context.Context) domain.SyncResult
	Running() bool
}

// Scheduler fires the runner once at start, on every manual trigger and on a
// fixed interval. Interval ticks that arrive while a run is in flight are
// skipped.
type Scheduler struct {
	runner   Runner
	interval time.Duration
	logger   *slog.Logger

	wg sync.WaitGroup
}

// NewScheduler creates a scheduler. It does nothing until Start is called.
func NewScheduler(runner Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		runner:   runner,
		interval: interval,
		logger:   logger.With(slog.String("component", "reconcile.Scheduler")),
	}
}

// RunNow performs a manual run and returns its result. It works whether or
// not Start is running; a manual run arriving while another run is in
// flight joins that run.
func (s *Scheduler) RunNow(ctx context.Context) domain.SyncResult {
	s.logger.DebugContext(ctx, "sync triggered", slog.String("reason", "manual"))

	return s.runner.Run(ctx)
}

// Start blocks until ctx is cancelled, then waits for any run it started.
func (s *Scheduler) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "sync scheduler started", slog.Duration("interval", s.interval))
	s.fire(ctx, "startup")

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			s.logger.InfoContext(ctx, "sync scheduler stopped")

			return nil
		case <-ticker.C:
			if s.runner.Running() {
				s.logger.DebugContext(ctx, "skipping scheduled sync, run in flight")

				continue
			}

			s.fire(ctx, "interval")
		}
	}
}

func (s *Scheduler) fire(ctx context.Context, reason string) {
	s.wg.Go(func() {
		s.logger.DebugContext(ctx, "sync triggered", slog.String("reason", reason))
		s.runner.Run(ctx)
	})
}
