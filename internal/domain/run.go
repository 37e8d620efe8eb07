package domain

import "time"

type StopReason string

const (
	ReasonReachedEnd   StopReason = "reached_end"
	ReasonReachedLimit StopReason = "reached_limit"
	ReasonFailed       StopReason = "failed"
	ReasonCancelled    StopReason = "cancelled"
)

// Dispatch actions for downstream creative events.
const (
	EventCreated     = "created"
	EventDeactivated = "deactivated"
)

// RunStats holds the running counters of one sync execution.
type RunStats struct {
	Processed         int `json:"processed"`
	Saved             int `json:"saved"`
	DuplicatesSkipped int `json:"duplicates_skipped"`
	Errors            int `json:"errors"`
	BatchesProcessed  int `json:"batches_processed"`
}

func (s *RunStats) Add(other RunStats) {
	s.Processed += other.Processed
	s.Saved += other.Saved
	s.DuplicatesSkipped += other.DuplicatesSkipped
	s.Errors += other.Errors
	s.BatchesProcessed += other.BatchesProcessed
}

// RunResult summarizes one completed sync execution.
type RunResult struct {
	SourceID string
	Stats    RunStats

	// Snapshot reconciliation counts. Zero for cursor-based sources.
	New         int
	Deactivated int
	Unchanged   int

	// Local (internal) ids of inserted and deactivated rows, for
	// downstream dispatch.
	NewIDs         []int64
	DeactivatedIDs []int64

	FinalLastID *int64
	Reason      StopReason
	Duration    time.Duration
	DryRun      bool

	// Integrity is the post-run consistency check for snapshot sources.
	// Nil for cursor sources, dry runs, and when the check itself failed.
	Integrity *IntegrityReport
}

// IntegrityReport verifies that every persisted row of a source is
// accounted for as either active or inactive.
type IntegrityReport struct {
	Active   int64
	Inactive int64
	Total    int64
}

// Consistent reports whether the active and inactive counts cover the
// whole table slice of the source.
func (r *IntegrityReport) Consistent() bool {
	return r.Active+r.Inactive == r.Total
}
