package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"creative_syncer/internal/domain"
	"creative_syncer/internal/service"
)

// Pipeline is one sync pipeline driven by the scheduler.
type Pipeline interface {
	SourceID() string
	ParseAndSync(ctx context.Context, opts service.Options) (*domain.RunResult, error)
}

// Scheduler triggers every registered pipeline on a fixed interval. The
// pipelines are independent sources and run concurrently; overlap within
// one source is prevented by the source's own run state.
type Scheduler struct {
	pipelines  []Pipeline
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(pipelines []Pipeline, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		pipelines:  pipelines,
		interval:   interval,
		runTimeout: interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"pipelines", len(s.pipelines),
	)

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	var wg sync.WaitGroup
	for _, p := range s.pipelines {
		wg.Add(1)
		go func(p Pipeline) {
			defer wg.Done()
			s.runSync(ctx, p)
		}(p)
	}
	wg.Wait()
}

func (s *Scheduler) runSync(ctx context.Context, p Pipeline) {
	syncCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := p.ParseAndSync(syncCtx, service.Options{}); err != nil {
		if errors.Is(err, domain.ErrRunInProgress) {
			s.logger.Warn("skipping tick, previous run still in progress",
				"source", p.SourceID(),
			)
			return
		}
		s.logger.Error("sync failed", "source", p.SourceID(), "error", err)
	}
}
