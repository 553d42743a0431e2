package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type statusRefresher interface {
	RefreshStatuses(ctx context.Context) (int, error)
}

type Options struct {
	Interval time.Duration
	// Timeout ограничивает один проход; ноль означает Interval.
	Timeout time.Duration
	// RefreshOnStart выполняет проход сразу, не дожидаясь первого тика.
	RefreshOnStart bool
}

// Scheduler moves events between UPCOMING, ONGOING and COMPLETED as time
// passes. Reads of single events and listings report the derived status, so
// a missed pass only delays what listings filtered by status return.
type Scheduler struct {
	refresher statusRefresher
	opts      Options
	logger    logger.Logger
}

func New(refresher statusRefresher, opts Options, log logger.Logger) *Scheduler {
	if opts.Timeout <= 0 {
		opts.Timeout = opts.Interval
	}
	return &Scheduler{
		refresher: refresher,
		opts:      opts,
		logger:    log,
	}
}

// Start blocks until ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started",
		logger.Duration("interval", s.opts.Interval),
		logger.Duration("timeout", s.opts.Timeout),
	)

	if s.opts.RefreshOnStart {
		s.tick(ctx)
	}

	ticker := time.NewTicker(s.opts.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	started := time.Now()
	updated, err := s.refresher.RefreshStatuses(tickCtx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("failed to refresh event statuses",
			logger.String("error", err.Error()),
			logger.Duration("elapsed", time.Since(started)),
		)
		return
	}

	if updated > 0 {
		s.logger.Info("event statuses refreshed",
			logger.Int("updated", updated),
			logger.Duration("elapsed", time.Since(started)),
		)
	}
}
