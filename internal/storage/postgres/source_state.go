package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"creative_syncer/internal/domain"
)

type SourceStateStore struct {
	db *sqlx.DB
}

func NewSourceStateStore(db *sqlx.DB) *SourceStateStore {
	return &SourceStateStore{db: db}
}

// Get loads the run state for sourceID. A source that has never run gets a
// fresh idle state with a nil cursor.
func (s *SourceStateStore) Get(ctx context.Context, sourceID string) (*domain.SourceState, error) {
	var state domain.SourceState
	query := `
		SELECT id, source_id, display_name, status, last_id,
		       last_run_at, last_error, last_error_at
		FROM source_states
		WHERE source_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, sourceID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.SourceState{
			SourceID: sourceID,
			Status:   domain.SourceIdle,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Acquire flips the source to running, creating the row on first run. The
// status guard makes the transition a single compare-and-set, so two
// processes racing on the same source cannot both acquire it: the loser
// gets domain.ErrRunInProgress. Prior error fields are cleared.
func (s *SourceStateStore) Acquire(ctx context.Context, sourceID, displayName string) (*domain.SourceState, error) {
	query := `
		INSERT INTO source_states (source_id, display_name, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (source_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			status = EXCLUDED.status,
			last_error = NULL,
			last_error_at = NULL
		WHERE source_states.status <> $3
		RETURNING id, source_id, display_name, status, last_id,
		          last_run_at, last_error, last_error_at`

	var state domain.SourceState
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query,
		sourceID, displayName, domain.SourceRunning)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRunInProgress
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

// Save upserts the run state keyed by source_id.
func (s *SourceStateStore) Save(ctx context.Context, state *domain.SourceState) error {
	query := `
		INSERT INTO source_states (
			source_id, display_name, status, last_id,
			last_run_at, last_error, last_error_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (source_id) DO UPDATE SET
			display_name = EXCLUDED.display_name,
			status = EXCLUDED.status,
			last_id = EXCLUDED.last_id,
			last_run_at = EXCLUDED.last_run_at,
			last_error = EXCLUDED.last_error,
			last_error_at = EXCLUDED.last_error_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		state.SourceID,
		state.DisplayName,
		state.Status,
		state.LastID,
		state.LastRunAt,
		state.LastError,
		state.LastErrorAt,
	)
	return err
}
