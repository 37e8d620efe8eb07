package domain

import (
	"errors"
	"fmt"
)

// ErrRunInProgress is returned when a sync is requested for a source whose
// state row is already marked running.
var ErrRunInProgress = errors.New("sync already in progress for source")

// FetchError wraps an upstream API failure that survived the retry budget.
type FetchError struct {
	SourceID string
	Page     int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s page %d: %v", e.SourceID, e.Page, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PersistenceError wraps a storage failure inside a sync transaction.
// It is fatal to the current run.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// PreconditionError reports a violated caller contract, such as reconciling
// against a snapshot that did not crawl the upstream source to exhaustion.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition violated: " + e.Reason
}
