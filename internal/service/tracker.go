package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"creative_syncer/internal/domain"
)

// tracker drives the per-source run-state machine:
// idle -> running -> idle on success, running -> failed on error, and a
// failed source simply restarts on the next invocation. The persisted
// running status is the mutual exclusion preventing overlapping runs; the
// acquisition is a single compare-and-set, so it holds across processes.
type tracker struct {
	states SourceStateStore
	logger *slog.Logger
}

func newTracker(states SourceStateStore, logger *slog.Logger) *tracker {
	return &tracker{states: states, logger: logger}
}

// begin transitions the source to running, clearing prior error fields.
// A source already running is rejected.
func (t *tracker) begin(ctx context.Context, sourceID, displayName string) (*domain.SourceState, error) {
	state, err := t.states.Acquire(ctx, sourceID, displayName)
	if errors.Is(err, domain.ErrRunInProgress) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("acquire source state: %w", err)
	}

	t.logger.Info("run started", "cursor", cursorValue(state.LastID))
	return state, nil
}

// checkpoint persists the cursor after a fully-processed page, so a crash
// loses at most one page of progress.
func (t *tracker) checkpoint(ctx context.Context, state *domain.SourceState, lastID int64) error {
	state.LastID = &lastID
	if err := t.states.Save(ctx, state); err != nil {
		return fmt.Errorf("checkpoint cursor: %w", err)
	}
	return nil
}

// complete transitions the source back to idle.
func (t *tracker) complete(ctx context.Context, state *domain.SourceState) error {
	now := time.Now()
	state.Status = domain.SourceIdle
	state.LastRunAt = &now

	if err := t.states.Save(ctx, state); err != nil {
		return fmt.Errorf("finalize source state: %w", err)
	}
	return nil
}

// fail records the failure with stats-at-failure on the source row.
func (t *tracker) fail(ctx context.Context, state *domain.SourceState, cause error, location string, stats domain.RunStats) {
	now := time.Now()
	state.Status = domain.SourceFailed
	state.LastError = &domain.RunError{
		Message:  cause.Error(),
		Location: location,
		Stats:    stats,
	}
	state.LastErrorAt = &now

	if err := t.states.Save(ctx, state); err != nil {
		t.logger.Error("failed to persist failure state", "error", err)
	}
}

func cursorValue(lastID *int64) int64 {
	if lastID == nil {
		return 0
	}
	return *lastID
}
