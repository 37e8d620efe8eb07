package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"creative_syncer/internal/domain"
)

type CreativeStore interface {
	ExistsByHash(ctx context.Context, hash string) (bool, error)
	ExistingExternalIDs(ctx context.Context, sourceID string) ([]int64, error)
	BulkUpsertByHash(ctx context.Context, creatives []domain.Creative) (int, error)
	BulkUpsertByExternalID(ctx context.Context, creatives []domain.Creative) (int, error)
	BulkUpdateStatus(ctx context.Context, sourceID string, externalIDs []int64, status domain.CreativeStatus) (int64, error)
	LocalIDsByExternalIDs(ctx context.Context, sourceID string, externalIDs []int64) ([]int64, error)
	CountByStatus(ctx context.Context, sourceID string) (map[domain.CreativeStatus]int64, error)
	CleanupInactive(ctx context.Context, sourceID string, olderThan time.Time) (int64, error)
}

type SourceStateStore interface {
	Get(ctx context.Context, sourceID string) (*domain.SourceState, error)
	Acquire(ctx context.Context, sourceID, displayName string) (*domain.SourceState, error)
	Save(ctx context.Context, state *domain.SourceState) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, sourceID, action string, creativeIDs []int64) error
	Close() error
}

// HashCache is an optional fast path in front of CreativeStore.ExistsByHash.
// It may only report false negatives, never false positives for hashes the
// store does not hold.
type HashCache interface {
	Seen(ctx context.Context, hash string) bool
	MarkSeen(ctx context.Context, hash string)
}

// CursorSource pages through an upstream API with a lastId resume token.
type CursorSource interface {
	ID() string
	Name() string
	FetchPage(ctx context.Context, lastID *int64, limit int) (*domain.Page, error)
	RateLimit(ctx context.Context) error
	TestConnection(ctx context.Context) error
}

// SnapshotSource crawls the complete currently-active item set of an
// upstream API in one run.
type SnapshotSource interface {
	ID() string
	Name() string
	FetchAll(ctx context.Context, startPage int) (*domain.Snapshot, error)
	TestConnection(ctx context.Context) error
}

// Pipeline is the surface both sync services expose to the scheduler. The
// variation between them is the reconciliation strategy: dedup-by-hash for
// cursor sources, set difference for snapshot sources.
type Pipeline interface {
	SourceID() string
	ParseAndSync(ctx context.Context, opts Options) (*domain.RunResult, error)
	DryRun(ctx context.Context, opts Options) (*domain.RunResult, error)
	TestConnection(ctx context.Context) error
}

// Options bounds one sync run.
type Options struct {
	MaxItemsPerRun int
	BatchSize      int
	StartPage      int
}
