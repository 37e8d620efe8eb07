package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type SourceStatus string

const (
	SourceIdle    SourceStatus = "idle"
	SourceRunning SourceStatus = "running"
	SourceFailed  SourceStatus = "failed"
)

// SourceState is the per-source run-state row. Its status field serializes
// runs: a source with status "running" must not be started again until the
// current run completes or fails.
type SourceState struct {
	ID          int64        `db:"id"`
	SourceID    string       `db:"source_id"`
	DisplayName string       `db:"display_name"`
	Status      SourceStatus `db:"status"`
	LastID      *int64       `db:"last_id"` // resume cursor, nil before the first run
	LastRunAt   *time.Time   `db:"last_run_at"`
	LastError   *RunError    `db:"last_error"`
	LastErrorAt *time.Time   `db:"last_error_at"`
}

// RunError captures enough failure context to diagnose a run without
// log-diving. Stored as JSONB on the source row.
type RunError struct {
	Message  string   `json:"message"`
	Location string   `json:"location,omitempty"`
	Stats    RunStats `json:"stats"`
}

func (e RunError) Value() (driver.Value, error) {
	return json.Marshal(e)
}

func (e *RunError) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, e)
	case string:
		return json.Unmarshal([]byte(v), e)
	case nil:
		return nil
	default:
		return fmt.Errorf("unsupported scan type for RunError: %T", src)
	}
}
