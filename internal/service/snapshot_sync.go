package service

import (
	"context"
	"log/slog"
	"time"

	"creative_syncer/internal/config"
	"creative_syncer/internal/domain"
)

// SnapshotSyncService runs the full-snapshot ingestion pipeline: one run
// crawls the upstream source to exhaustion, reconciles the observed id set
// against persisted state by set difference, and applies the insert and
// deactivate phases inside a single transaction.
type SnapshotSyncService struct {
	source    SnapshotSource
	creatives CreativeStore
	tracker   *tracker
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.SyncConfig
}

func NewSnapshotSyncService(
	source SnapshotSource,
	creatives CreativeStore,
	states SourceStateStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SnapshotSyncService {
	logger = logger.With("source", source.ID())
	return &SnapshotSyncService{
		source:    source,
		creatives: creatives,
		tracker:   newTracker(states, logger),
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		config:    cfg,
	}
}

func (s *SnapshotSyncService) SourceID() string {
	return s.source.ID()
}

// ParseAndSync executes one full crawl-and-reconcile cycle. A source
// already running is rejected with ErrRunInProgress.
func (s *SnapshotSyncService) ParseAndSync(ctx context.Context, opts Options) (*domain.RunResult, error) {
	opts = s.withDefaults(opts)
	start := time.Now()

	s.logger.Info("starting sync",
		"source_name", s.source.Name(),
		"start_page", opts.StartPage,
	)

	state, err := s.tracker.begin(ctx, s.source.ID(), s.source.Name())
	if err != nil {
		return nil, err
	}

	result, runErr := s.run(ctx, opts, false)
	result.Duration = time.Since(start)

	finalCtx := context.WithoutCancel(ctx)

	if runErr != nil {
		result.Reason = domain.ReasonFailed
		s.tracker.fail(finalCtx, state, runErr, "snapshot run", result.Stats)
		s.logger.Error("sync failed",
			"error", runErr,
			"processed", result.Stats.Processed,
			"duration", result.Duration,
		)
		return result, runErr
	}

	if err := s.tracker.complete(finalCtx, state); err != nil {
		return result, err
	}

	result.Integrity = s.checkIntegrity(finalCtx)

	s.logger.Info("sync completed",
		"processed", result.Stats.Processed,
		"new", result.New,
		"deactivated", result.Deactivated,
		"unchanged", result.Unchanged,
		"errors", result.Stats.Errors,
		"duration", result.Duration,
	)

	return result, nil
}

// DryRun crawls and reconciles without writing: the would-be new and
// deactivated counts are computed against current persisted state.
func (s *SnapshotSyncService) DryRun(ctx context.Context, opts Options) (*domain.RunResult, error) {
	opts = s.withDefaults(opts)
	start := time.Now()

	result, runErr := s.run(ctx, opts, true)
	result.Duration = time.Since(start)
	if runErr != nil {
		result.Reason = domain.ReasonFailed
		return result, runErr
	}
	return result, nil
}

func (s *SnapshotSyncService) TestConnection(ctx context.Context) error {
	return s.source.TestConnection(ctx)
}

// checkIntegrity verifies after a run that every persisted row of this
// source is either active or inactive. A violation or a failed check is
// reported, not fatal: the run itself already committed.
func (s *SnapshotSyncService) checkIntegrity(ctx context.Context) *domain.IntegrityReport {
	counts, err := s.creatives.CountByStatus(ctx, s.source.ID())
	if err != nil {
		s.logger.Warn("integrity check failed", "error", err)
		return nil
	}

	report := &domain.IntegrityReport{
		Active:   counts[domain.StatusActive],
		Inactive: counts[domain.StatusInactive],
	}
	for _, n := range counts {
		report.Total += n
	}

	if !report.Consistent() {
		s.logger.Warn("integrity check found unaccounted rows",
			"active", report.Active,
			"inactive", report.Inactive,
			"total", report.Total,
		)
	}
	return report
}

// CleanupInactive hard-deletes creatives of this source that have been
// inactive for longer than the configured retention window.
func (s *SnapshotSyncService) CleanupInactive(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -s.config.RetentionDays)

	deleted, err := s.creatives.CleanupInactive(ctx, s.source.ID(), cutoff)
	if err != nil {
		return 0, &domain.PersistenceError{Op: "cleanup inactive", Err: err}
	}

	s.logger.Info("inactive creatives cleaned up",
		"deleted", deleted,
		"retention_days", s.config.RetentionDays,
	)
	return deleted, nil
}

func (s *SnapshotSyncService) run(ctx context.Context, opts Options, dry bool) (*domain.RunResult, error) {
	result := &domain.RunResult{
		SourceID: s.source.ID(),
		Reason:   domain.ReasonReachedEnd,
		DryRun:   dry,
	}

	snapshot, err := s.source.FetchAll(ctx, opts.StartPage)
	if err != nil {
		return result, err
	}

	result.Stats.Processed = len(snapshot.Creatives) + snapshot.Invalid
	result.Stats.Errors = snapshot.Invalid
	result.Stats.BatchesProcessed = snapshot.Pages

	if !snapshot.Complete {
		// Reconciling a partial crawl would deactivate every record the
		// crawl never reached.
		return result, &domain.PreconditionError{
			Reason: "snapshot crawl did not reach the end of pagination",
		}
	}

	apiIDs := make([]int64, 0, len(snapshot.Creatives))
	for i := range snapshot.Creatives {
		apiIDs = append(apiIDs, snapshot.Creatives[i].ExternalID)
	}

	dbIDs, err := s.creatives.ExistingExternalIDs(ctx, s.source.ID())
	if err != nil {
		return result, &domain.PersistenceError{Op: "load existing ids", Err: err}
	}

	rec := Reconcile(apiIDs, dbIDs)
	result.New = len(rec.New)
	result.Deactivated = len(rec.Deactivated)
	result.Unchanged = rec.Unchanged

	s.logger.Info("snapshot reconciled",
		"api_ids", len(apiIDs),
		"db_ids", len(dbIDs),
		"new", result.New,
		"deactivated", result.Deactivated,
		"unchanged", result.Unchanged,
	)

	if dry {
		result.Stats.Saved = len(rec.New)
		return result, nil
	}

	if err := s.applyReconciliation(ctx, snapshot, rec, result); err != nil {
		return result, err
	}

	if s.publisher != nil {
		if perr := s.publisher.Publish(ctx, s.source.ID(), domain.EventCreated, result.NewIDs); perr != nil {
			s.logger.Error("publish created event failed", "error", perr)
			result.Stats.Errors++
		}
		if perr := s.publisher.Publish(ctx, s.source.ID(), domain.EventDeactivated, result.DeactivatedIDs); perr != nil {
			s.logger.Error("publish deactivated event failed", "error", perr)
			result.Stats.Errors++
		}
	}

	return result, nil
}

// applyReconciliation commits the insert and deactivate phases atomically:
// either both land or neither does. The transaction covers only the
// in-memory-computed write set, never the HTTP crawl.
func (s *SnapshotSyncService) applyReconciliation(ctx context.Context, snapshot *domain.Snapshot, rec Reconciliation, result *domain.RunResult) error {
	// An external id crawled on two pages must insert exactly once: the
	// set is consumed as matches are taken, so only the first occurrence
	// enters the upsert statement.
	newSet := toSet(rec.New)
	toInsert := make([]domain.Creative, 0, len(rec.New))
	for i := range snapshot.Creatives {
		id := snapshot.Creatives[i].ExternalID
		if _, ok := newSet[id]; !ok {
			continue
		}
		delete(newSet, id)
		toInsert = append(toInsert, snapshot.Creatives[i])
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if len(toInsert) > 0 {
			saved, err := s.creatives.BulkUpsertByExternalID(txCtx, toInsert)
			if err != nil {
				return &domain.PersistenceError{Op: "insert new creatives", Err: err}
			}
			result.Stats.Saved = saved

			result.NewIDs, err = s.creatives.LocalIDsByExternalIDs(txCtx, s.source.ID(), rec.New)
			if err != nil {
				return &domain.PersistenceError{Op: "resolve new local ids", Err: err}
			}
		}

		if len(rec.Deactivated) > 0 {
			ids, err := s.creatives.LocalIDsByExternalIDs(txCtx, s.source.ID(), rec.Deactivated)
			if err != nil {
				return &domain.PersistenceError{Op: "resolve deactivated local ids", Err: err}
			}
			result.DeactivatedIDs = ids

			if _, err := s.creatives.BulkUpdateStatus(txCtx, s.source.ID(), rec.Deactivated, domain.StatusInactive); err != nil {
				return &domain.PersistenceError{Op: "deactivate creatives", Err: err}
			}
		}

		return nil
	})
}

func (s *SnapshotSyncService) withDefaults(opts Options) Options {
	if opts.StartPage <= 0 {
		opts.StartPage = 1
	}
	return opts
}
