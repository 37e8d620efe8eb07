package service_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"creative_syncer/internal/config"
	"creative_syncer/internal/domain"
	"creative_syncer/internal/service"
	"creative_syncer/internal/service/mocks"
)

type SnapshotSyncTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	source    *mocks.MockSnapshotSource
	creatives *mocks.MockCreativeStore
	states    *mocks.MockSourceStateStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *service.SnapshotSyncService
	cfg     config.SyncConfig
	logger  *slog.Logger

	savedStates []domain.SourceState
}

func (s *SnapshotSyncTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.source = mocks.NewMockSnapshotSource(s.ctrl)
	s.creatives = mocks.NewMockCreativeStore(s.ctrl)
	s.states = mocks.NewMockSourceStateStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.cfg = config.SyncConfig{
		Interval:      30 * time.Minute,
		RetentionDays: 30,
	}

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.source.EXPECT().ID().Return("pushhouse").AnyTimes()
	s.source.EXPECT().Name().Return("Push.House").AnyTimes()

	s.savedStates = nil
	s.states.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, state *domain.SourceState) error {
			s.savedStates = append(s.savedStates, *state)
			return nil
		},
	).AnyTimes()

	s.service = service.NewSnapshotSyncService(
		s.source,
		s.creatives,
		s.states,
		s.txManager,
		s.publisher,
		s.logger,
		s.cfg,
	)
}

func (s *SnapshotSyncTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSnapshotSyncTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotSyncTestSuite))
}

// makeSnapshot builds a complete snapshot holding the given external ids.
func makeSnapshot(ids ...int64) *domain.Snapshot {
	snapshot := &domain.Snapshot{Pages: 1, Complete: true}
	for _, id := range ids {
		c := domain.Creative{
			SourceID:    "pushhouse",
			ExternalID:  id,
			Title:       fmt.Sprintf("ad %d", id),
			CountryCode: "DE",
			AdNetwork:   "pushhouse",
			Format:      domain.FormatPush,
			Status:      domain.StatusActive,
		}
		c.ContentHash = domain.ContentHash(&c)
		snapshot.Creatives = append(snapshot.Creatives, c)
	}
	return snapshot
}

func (s *SnapshotSyncTestSuite) expectAcquired() {
	s.states.EXPECT().Acquire(gomock.Any(), "pushhouse", "Push.House").Return(
		&domain.SourceState{SourceID: "pushhouse", Status: domain.SourceRunning}, nil,
	)
}

func (s *SnapshotSyncTestSuite) expectIntegrityCounts(active, inactive int64) {
	s.creatives.EXPECT().CountByStatus(gomock.Any(), "pushhouse").Return(
		map[domain.CreativeStatus]int64{
			domain.StatusActive:   active,
			domain.StatusInactive: inactive,
		}, nil,
	)
}

func (s *SnapshotSyncTestSuite) expectTransactionPassthrough() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *SnapshotSyncTestSuite) TestParseAndSync_Reconciles() {
	ctx := context.Background()

	// DB holds {1,2,3,4}, the API snapshot holds {3,4,5}: 5 is new,
	// 1 and 2 disappeared upstream, 3 and 4 stay untouched.
	s.expectAcquired()
	s.source.EXPECT().FetchAll(gomock.Any(), 1).Return(makeSnapshot(3, 4, 5), nil)
	s.creatives.EXPECT().ExistingExternalIDs(gomock.Any(), "pushhouse").Return([]int64{1, 2, 3, 4}, nil)

	s.expectTransactionPassthrough()
	s.creatives.EXPECT().BulkUpsertByExternalID(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, creatives []domain.Creative) (int, error) {
			s.Require().Len(creatives, 1)
			s.Equal(int64(5), creatives[0].ExternalID)
			return 1, nil
		},
	)
	s.creatives.EXPECT().LocalIDsByExternalIDs(gomock.Any(), "pushhouse", []int64{5}).Return([]int64{105}, nil)
	s.creatives.EXPECT().LocalIDsByExternalIDs(gomock.Any(), "pushhouse", []int64{1, 2}).Return([]int64{101, 102}, nil)
	s.creatives.EXPECT().BulkUpdateStatus(gomock.Any(), "pushhouse", []int64{1, 2}, domain.StatusInactive).Return(int64(2), nil)

	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventCreated, []int64{105}).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventDeactivated, []int64{101, 102}).Return(nil)
	s.expectIntegrityCounts(3, 2)

	result, err := s.service.ParseAndSync(ctx, service.Options{})

	s.NoError(err)
	s.Equal(1, result.New)
	s.Equal(2, result.Deactivated)
	s.Equal(2, result.Unchanged)
	s.Equal(1, result.Stats.Saved)
	s.Equal([]int64{105}, result.NewIDs)
	s.Equal([]int64{101, 102}, result.DeactivatedIDs)
	s.Equal(domain.SourceIdle, s.savedStates[len(s.savedStates)-1].Status)

	s.Require().NotNil(result.Integrity)
	s.Equal(int64(3), result.Integrity.Active)
	s.Equal(int64(2), result.Integrity.Inactive)
	s.Equal(int64(5), result.Integrity.Total)
	s.True(result.Integrity.Consistent())
}

func (s *SnapshotSyncTestSuite) TestParseAndSync_FirstRunAllNew() {
	ctx := context.Background()

	s.expectAcquired()
	s.source.EXPECT().FetchAll(gomock.Any(), 1).Return(makeSnapshot(10, 11), nil)
	s.creatives.EXPECT().ExistingExternalIDs(gomock.Any(), "pushhouse").Return(nil, nil)

	s.expectTransactionPassthrough()
	s.creatives.EXPECT().BulkUpsertByExternalID(gomock.Any(), gomock.Len(2)).Return(2, nil)
	s.creatives.EXPECT().LocalIDsByExternalIDs(gomock.Any(), "pushhouse", []int64{10, 11}).Return([]int64{110, 111}, nil)

	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventCreated, []int64{110, 111}).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventDeactivated, gomock.Len(0)).Return(nil)
	s.expectIntegrityCounts(2, 0)

	result, err := s.service.ParseAndSync(ctx, service.Options{})

	s.NoError(err)
	s.Equal(2, result.New)
	s.Equal(0, result.Deactivated)
	s.Equal(0, result.Unchanged)
}

func (s *SnapshotSyncTestSuite) TestParseAndSync_NoChanges() {
	ctx := context.Background()

	s.expectAcquired()
	s.source.EXPECT().FetchAll(gomock.Any(), 1).Return(makeSnapshot(1, 2), nil)
	s.creatives.EXPECT().ExistingExternalIDs(gomock.Any(), "pushhouse").Return([]int64{1, 2}, nil)

	s.expectTransactionPassthrough()
	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventCreated, gomock.Len(0)).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventDeactivated, gomock.Len(0)).Return(nil)
	s.expectIntegrityCounts(2, 0)

	result, err := s.service.ParseAndSync(ctx, service.Options{})

	s.NoError(err)
	s.Equal(0, result.New)
	s.Equal(0, result.Deactivated)
	s.Equal(2, result.Unchanged)
}

func (s *SnapshotSyncTestSuite) TestParseAndSync_RepeatedExternalIDInsertedOnce() {
	ctx := context.Background()

	// The same ad can show up on two crawled pages. Both copies share the
	// conflict key (source_id, external_id), so only the first occurrence
	// may enter the upsert statement.
	snapshot := makeSnapshot(7, 7)

	s.expectAcquired()
	s.source.EXPECT().FetchAll(gomock.Any(), 1).Return(snapshot, nil)
	s.creatives.EXPECT().ExistingExternalIDs(gomock.Any(), "pushhouse").Return(nil, nil)

	s.expectTransactionPassthrough()
	s.creatives.EXPECT().BulkUpsertByExternalID(gomock.Any(), gomock.Len(1)).Return(1, nil)
	s.creatives.EXPECT().LocalIDsByExternalIDs(gomock.Any(), "pushhouse", []int64{7}).Return([]int64{107}, nil)

	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventCreated, []int64{107}).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventDeactivated, gomock.Len(0)).Return(nil)
	s.expectIntegrityCounts(1, 0)

	result, err := s.service.ParseAndSync(ctx, service.Options{})

	s.NoError(err)
	s.Equal(1, result.New)
	s.Equal(1, result.Stats.Saved)
	s.Equal([]int64{107}, result.NewIDs)
}

func (s *SnapshotSyncTestSuite) TestParseAndSync_IntegrityViolationReported() {
	ctx := context.Background()

	s.expectAcquired()
	s.source.EXPECT().FetchAll(gomock.Any(), 1).Return(makeSnapshot(1), nil)
	s.creatives.EXPECT().ExistingExternalIDs(gomock.Any(), "pushhouse").Return([]int64{1}, nil)

	s.expectTransactionPassthrough()
	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventCreated, gomock.Len(0)).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventDeactivated, gomock.Len(0)).Return(nil)

	// A row holding a status outside active/inactive must be flagged, not
	// fail the already-committed run.
	s.creatives.EXPECT().CountByStatus(gomock.Any(), "pushhouse").Return(
		map[domain.CreativeStatus]int64{
			domain.StatusActive:          1,
			domain.CreativeStatus("new"): 1,
		}, nil,
	)

	result, err := s.service.ParseAndSync(ctx, service.Options{})

	s.NoError(err)
	s.Require().NotNil(result.Integrity)
	s.Equal(int64(1), result.Integrity.Active)
	s.Equal(int64(0), result.Integrity.Inactive)
	s.Equal(int64(2), result.Integrity.Total)
	s.False(result.Integrity.Consistent())
}

func (s *SnapshotSyncTestSuite) TestParseAndSync_IntegrityCheckErrorNonFatal() {
	ctx := context.Background()

	s.expectAcquired()
	s.source.EXPECT().FetchAll(gomock.Any(), 1).Return(makeSnapshot(1), nil)
	s.creatives.EXPECT().ExistingExternalIDs(gomock.Any(), "pushhouse").Return([]int64{1}, nil)

	s.expectTransactionPassthrough()
	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventCreated, gomock.Len(0)).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), "pushhouse", domain.EventDeactivated, gomock.Len(0)).Return(nil)
	s.creatives.EXPECT().CountByStatus(gomock.Any(), "pushhouse").
		Return(nil, errors.New("connection reset"))

	result, err := s.service.ParseAndSync(ctx, service.Options{})

	s.NoError(err)
	s.Nil(result.Integrity)
	s.Equal(domain.SourceIdle, s.savedStates[len(s.savedStates)-1].Status)
}

func (s *SnapshotSyncTestSuite) TestParseAndSync_IncompleteSnapshotRefused() {
	ctx := context.Background()

	partial := makeSnapshot(1, 2)
	partial.Complete = false

	s.expectAcquired()
	s.source.EXPECT().FetchAll(gomock.Any(), 1).Return(partial, nil)

	result, err := s.service.ParseAndSync(ctx, service.Options{})

	var perr *domain.PreconditionError
	s.ErrorAs(err, &perr)
	s.Equal(domain.ReasonFailed, result.Reason)
	s.Equal(domain.SourceFailed, s.savedStates[len(s.savedStates)-1].Status)
}

func (s *SnapshotSyncTestSuite) TestParseAndSync_FetchFailureMarksSourceFailed() {
	ctx := context.Background()
	fetchErr := &domain.FetchError{SourceID: "pushhouse", Page: 1, Err: errors.New("server error: 503")}

	s.expectAcquired()
	s.source.EXPECT().FetchAll(gomock.Any(), 1).Return(nil, fetchErr)

	_, err := s.service.ParseAndSync(ctx, service.Options{})

	s.Error(err)

	final := s.savedStates[len(s.savedStates)-1]
	s.Equal(domain.SourceFailed, final.Status)
	s.Require().NotNil(final.LastError)
	s.Contains(final.LastError.Message, "server error: 503")
}

func (s *SnapshotSyncTestSuite) TestParseAndSync_DeactivateFailureAbortsTransaction() {
	ctx := context.Background()

	s.expectAcquired()
	s.source.EXPECT().FetchAll(gomock.Any(), 1).Return(makeSnapshot(3, 5), nil)
	s.creatives.EXPECT().ExistingExternalIDs(gomock.Any(), "pushhouse").Return([]int64{1, 3}, nil)

	s.expectTransactionPassthrough()
	s.creatives.EXPECT().BulkUpsertByExternalID(gomock.Any(), gomock.Len(1)).Return(1, nil)
	s.creatives.EXPECT().LocalIDsByExternalIDs(gomock.Any(), "pushhouse", []int64{5}).Return([]int64{105}, nil)
	s.creatives.EXPECT().LocalIDsByExternalIDs(gomock.Any(), "pushhouse", []int64{1}).Return([]int64{101}, nil)
	s.creatives.EXPECT().BulkUpdateStatus(gomock.Any(), "pushhouse", []int64{1}, domain.StatusInactive).
		Return(int64(0), errors.New("connection reset"))

	// No events may go out for a rolled-back write set.
	_, err := s.service.ParseAndSync(ctx, service.Options{})

	var perr *domain.PersistenceError
	s.ErrorAs(err, &perr)
	s.Equal(domain.SourceFailed, s.savedStates[len(s.savedStates)-1].Status)
}

func (s *SnapshotSyncTestSuite) TestParseAndSync_RejectsConcurrentRun() {
	ctx := context.Background()

	s.states.EXPECT().Acquire(gomock.Any(), "pushhouse", "Push.House").Return(
		nil, domain.ErrRunInProgress,
	)

	result, err := s.service.ParseAndSync(ctx, service.Options{})

	s.Nil(result)
	s.ErrorIs(err, domain.ErrRunInProgress)
	s.Empty(s.savedStates)
}

func (s *SnapshotSyncTestSuite) TestDryRun_CountsWithoutWriting() {
	ctx := context.Background()

	s.source.EXPECT().FetchAll(gomock.Any(), 1).Return(makeSnapshot(3, 4, 5), nil)
	s.creatives.EXPECT().ExistingExternalIDs(gomock.Any(), "pushhouse").Return([]int64{1, 2, 3, 4}, nil)

	result, err := s.service.DryRun(ctx, service.Options{})

	s.NoError(err)
	s.True(result.DryRun)
	s.Equal(1, result.New)
	s.Equal(2, result.Deactivated)
	s.Equal(2, result.Unchanged)
	s.Equal(1, result.Stats.Saved)
	s.Empty(s.savedStates)
}

func (s *SnapshotSyncTestSuite) TestCleanupInactive() {
	ctx := context.Background()

	s.creatives.EXPECT().CleanupInactive(gomock.Any(), "pushhouse", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, olderThan time.Time) (int64, error) {
			expected := time.Now().AddDate(0, 0, -s.cfg.RetentionDays)
			s.WithinDuration(expected, olderThan, time.Minute)
			return 7, nil
		},
	)

	deleted, err := s.service.CleanupInactive(ctx)

	s.NoError(err)
	s.Equal(int64(7), deleted)
}

func (s *SnapshotSyncTestSuite) TestCleanupInactive_WrapsStorageError() {
	ctx := context.Background()

	s.creatives.EXPECT().CleanupInactive(gomock.Any(), "pushhouse", gomock.Any()).
		Return(int64(0), errors.New("relation does not exist"))

	_, err := s.service.CleanupInactive(ctx)

	var perr *domain.PersistenceError
	s.ErrorAs(err, &perr)
}
