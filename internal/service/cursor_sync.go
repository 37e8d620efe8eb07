package service

import (
	"context"
	"log/slog"
	"time"

	"creative_syncer/internal/config"
	"creative_syncer/internal/domain"
)

// CursorSyncService runs the cursor-paginated ingestion pipeline: pages are
// fetched behind a lastId resume token, deduplicated against the store by
// content hash, persisted in chunks, and the cursor is checkpointed after
// every fully-processed page.
type CursorSyncService struct {
	source    CursorSource
	creatives CreativeStore
	tracker   *tracker
	txManager TransactionManager
	publisher Publisher
	hashCache HashCache
	logger    *slog.Logger
	config    config.SyncConfig
}

func NewCursorSyncService(
	source CursorSource,
	creatives CreativeStore,
	states SourceStateStore,
	txManager TransactionManager,
	publisher Publisher,
	hashCache HashCache,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *CursorSyncService {
	logger = logger.With("source", source.ID())
	return &CursorSyncService{
		source:    source,
		creatives: creatives,
		tracker:   newTracker(states, logger),
		txManager: txManager,
		publisher: publisher,
		hashCache: hashCache,
		logger:    logger,
		config:    cfg,
	}
}

func (s *CursorSyncService) SourceID() string {
	return s.source.ID()
}

// ParseAndSync executes one bounded run, resuming from the persisted
// cursor. A source already running is rejected with ErrRunInProgress.
func (s *CursorSyncService) ParseAndSync(ctx context.Context, opts Options) (*domain.RunResult, error) {
	opts = s.withDefaults(opts)
	start := time.Now()

	s.logger.Info("starting sync",
		"source_name", s.source.Name(),
		"max_items_per_run", opts.MaxItemsPerRun,
		"batch_size", opts.BatchSize,
	)

	state, err := s.tracker.begin(ctx, s.source.ID(), s.source.Name())
	if err != nil {
		return nil, err
	}

	result, runErr := s.run(ctx, state, opts, false)
	result.Duration = time.Since(start)

	// Final state writes must land even when the run context was cancelled.
	finalCtx := context.WithoutCancel(ctx)

	if runErr != nil {
		result.Reason = domain.ReasonFailed
		s.tracker.fail(finalCtx, state, runErr, "cursor run loop", result.Stats)
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

	s.logger.Info("sync completed",
		"reason", result.Reason,
		"processed", result.Stats.Processed,
		"saved", result.Stats.Saved,
		"duplicates_skipped", result.Stats.DuplicatesSkipped,
		"errors", result.Stats.Errors,
		"batches", result.Stats.BatchesProcessed,
		"final_cursor", cursorValue(result.FinalLastID),
		"duration", result.Duration,
	)

	return result, nil
}

// DryRun simulates a run: pages are fetched and deduplicated, would-be save
// counts are reported, but nothing is written and the source state is left
// untouched.
func (s *CursorSyncService) DryRun(ctx context.Context, opts Options) (*domain.RunResult, error) {
	opts = s.withDefaults(opts)
	start := time.Now()

	state, err := s.tracker.states.Get(ctx, s.source.ID())
	if err != nil {
		return nil, err
	}

	result, runErr := s.run(ctx, state, opts, true)
	result.Duration = time.Since(start)
	if runErr != nil {
		result.Reason = domain.ReasonFailed
		return result, runErr
	}
	return result, nil
}

func (s *CursorSyncService) TestConnection(ctx context.Context) error {
	return s.source.TestConnection(ctx)
}

func (s *CursorSyncService) run(ctx context.Context, state *domain.SourceState, opts Options, dry bool) (*domain.RunResult, error) {
	result := &domain.RunResult{SourceID: s.source.ID(), DryRun: dry}
	currentLastID := state.LastID
	totalProcessed := 0

	for totalProcessed < opts.MaxItemsPerRun {
		if ctx.Err() != nil {
			result.Reason = domain.ReasonCancelled
			break
		}

		batchSize := opts.BatchSize
		if remaining := opts.MaxItemsPerRun - totalProcessed; batchSize > remaining {
			batchSize = remaining
		}

		page, err := s.source.FetchPage(ctx, currentLastID, batchSize)
		if err != nil {
			// Fetch failure is fatal to a cursor run: the checkpointed
			// cursor makes the next invocation resume where this one stopped.
			result.FinalLastID = currentLastID
			return result, err
		}

		if page.RawCount == 0 {
			result.Reason = domain.ReasonReachedEnd
			break
		}

		result.Stats.BatchesProcessed++

		pageStats, newIDs, err := s.processPage(ctx, page, dry)
		result.Stats.Add(pageStats)
		if err != nil {
			result.FinalLastID = currentLastID
			return result, err
		}
		result.NewIDs = append(result.NewIDs, newIDs...)

		totalProcessed += page.RawCount

		if page.MaxID > 0 {
			maxID := page.MaxID
			currentLastID = &maxID
			if !dry {
				if err := s.tracker.checkpoint(ctx, state, maxID); err != nil {
					result.FinalLastID = currentLastID
					return result, err
				}
			}
		}

		s.logger.Info("page processed",
			"batch", result.Stats.BatchesProcessed,
			"page_items", page.RawCount,
			"total_processed", totalProcessed,
			"cursor", cursorValue(currentLastID),
		)

		if totalProcessed >= opts.MaxItemsPerRun {
			result.Reason = domain.ReasonReachedLimit
			break
		}
		// A short page signals upstream exhaustion.
		if page.RawCount < batchSize {
			result.Reason = domain.ReasonReachedEnd
			break
		}

		if err := s.source.RateLimit(ctx); err != nil {
			result.Reason = domain.ReasonCancelled
			break
		}
	}

	if result.Reason == "" {
		result.Reason = domain.ReasonReachedLimit
	}
	result.FinalLastID = currentLastID
	return result, nil
}

// processPage filters duplicates and persists the remainder of one page in
// a single transaction. In dry mode it only counts what would be saved.
func (s *CursorSyncService) processPage(ctx context.Context, page *domain.Page, dry bool) (domain.RunStats, []int64, error) {
	stats := domain.RunStats{
		Processed: page.RawCount,
		Errors:    page.Invalid,
	}

	// A page can repeat a record; the upsert statement cannot touch the
	// same conflict key twice, so repeats are skipped here.
	seen := make(map[string]struct{}, len(page.Creatives))

	var toSave []domain.Creative
	for i := range page.Creatives {
		creative := &page.Creatives[i]

		if _, repeat := seen[creative.ContentHash]; repeat {
			stats.DuplicatesSkipped++
			continue
		}

		dup, err := s.isDuplicate(ctx, creative.ContentHash)
		if err != nil {
			s.logger.Error("dedup lookup failed",
				"external_id", creative.ExternalID,
				"error", err,
			)
			stats.Errors++
			continue
		}
		if dup {
			stats.DuplicatesSkipped++
			continue
		}

		seen[creative.ContentHash] = struct{}{}
		toSave = append(toSave, *creative)
	}

	if dry {
		stats.Saved = len(toSave)
		return stats, nil, nil
	}
	if len(toSave) == 0 {
		return stats, nil, nil
	}

	var localIDs []int64
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		saved, err := s.creatives.BulkUpsertByHash(txCtx, toSave)
		if err != nil {
			return &domain.PersistenceError{Op: "bulk upsert", Err: err}
		}
		stats.Saved = saved

		externalIDs := make([]int64, len(toSave))
		for i := range toSave {
			externalIDs[i] = toSave[i].ExternalID
		}

		localIDs, err = s.creatives.LocalIDsByExternalIDs(txCtx, s.source.ID(), externalIDs)
		if err != nil {
			return &domain.PersistenceError{Op: "resolve local ids", Err: err}
		}
		return nil
	})
	if err != nil {
		return stats, nil, err
	}

	if s.hashCache != nil {
		for i := range toSave {
			s.hashCache.MarkSeen(ctx, toSave[i].ContentHash)
		}
	}

	if s.publisher != nil {
		if perr := s.publisher.Publish(ctx, s.source.ID(), domain.EventCreated, localIDs); perr != nil {
			s.logger.Error("publish created event failed", "error", perr)
			stats.Errors++
		}
	}

	return stats, localIDs, nil
}

func (s *CursorSyncService) isDuplicate(ctx context.Context, hash string) (bool, error) {
	if s.hashCache != nil && s.hashCache.Seen(ctx, hash) {
		return true, nil
	}
	return s.creatives.ExistsByHash(ctx, hash)
}

func (s *CursorSyncService) withDefaults(opts Options) Options {
	if opts.MaxItemsPerRun <= 0 {
		opts.MaxItemsPerRun = s.config.MaxItemsPerRun
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = s.config.BatchSize
	}
	return opts
}
