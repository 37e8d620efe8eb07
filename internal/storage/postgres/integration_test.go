//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"creative_syncer/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB

	creatives *CreativeStore
	states    *SourceStateStore
	txManager *TransactionManager
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(RunMigrations(db))

	s.creatives = NewCreativeStore(db, 100)
	s.states = NewSourceStateStore(db)
	s.txManager = NewTransactionManager(db)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM creatives")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM source_states")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func ptrTo[T any](v T) *T { return &v }

func testCreative(sourceID string, externalID int64) domain.Creative {
	c := domain.Creative{
		SourceID:          sourceID,
		ExternalID:        externalID,
		Title:             fmt.Sprintf("creative %d", externalID),
		Text:              "body",
		CountryCode:       "US",
		AdNetwork:         "rollerads",
		Format:            domain.FormatPush,
		Status:            domain.StatusActive,
		IconURL:           "https://cdn.example.com/icon.png",
		ExternalCreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	c.ContentHash = domain.ContentHash(&c)
	return c
}

func (s *PostgresIntegrationSuite) TestBulkUpsertByHash_InsertAndUpdate() {
	creatives := []domain.Creative{
		testCreative("feedhouse", 1),
		testCreative("feedhouse", 2),
	}

	saved, err := s.creatives.BulkUpsertByHash(s.ctx, creatives)
	s.Require().NoError(err)
	s.Equal(2, saved)

	exists, err := s.creatives.ExistsByHash(s.ctx, creatives[0].ContentHash)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.creatives.ExistsByHash(s.ctx, "0000000000000000000000000000000000000000000000000000000000000000")
	s.Require().NoError(err)
	s.False(exists)

	// Same hash again must not create a second row.
	_, err = s.creatives.BulkUpsertByHash(s.ctx, creatives[:1])
	s.Require().NoError(err)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT count(*) FROM creatives"))
	s.Equal(2, count)
}

func (s *PostgresIntegrationSuite) TestBulkUpsertByExternalID_UpdatesChangedContent() {
	original := testCreative("pushhouse", 10)
	_, err := s.creatives.BulkUpsertByExternalID(s.ctx, []domain.Creative{original})
	s.Require().NoError(err)

	changed := original
	changed.Title = "new title"
	changed.ContentHash = domain.ContentHash(&changed)

	_, err = s.creatives.BulkUpsertByExternalID(s.ctx, []domain.Creative{changed})
	s.Require().NoError(err)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT count(*) FROM creatives"))
	s.Equal(1, count)

	var title string
	s.Require().NoError(s.db.GetContext(s.ctx, &title,
		"SELECT title FROM creatives WHERE source_id = 'pushhouse' AND external_id = 10"))
	s.Equal("new title", title)
}

func (s *PostgresIntegrationSuite) TestExistingExternalIDs_ScopedBySource() {
	_, err := s.creatives.BulkUpsertByExternalID(s.ctx, []domain.Creative{
		testCreative("pushhouse", 1),
		testCreative("pushhouse", 2),
		testCreative("feedhouse", 3),
	})
	s.Require().NoError(err)

	ids, err := s.creatives.ExistingExternalIDs(s.ctx, "pushhouse")
	s.Require().NoError(err)
	s.ElementsMatch([]int64{1, 2}, ids)
}

func (s *PostgresIntegrationSuite) TestBulkUpdateStatus_AndCounts() {
	_, err := s.creatives.BulkUpsertByExternalID(s.ctx, []domain.Creative{
		testCreative("pushhouse", 1),
		testCreative("pushhouse", 2),
		testCreative("pushhouse", 3),
	})
	s.Require().NoError(err)

	updated, err := s.creatives.BulkUpdateStatus(s.ctx, "pushhouse", []int64{1, 2}, domain.StatusInactive)
	s.Require().NoError(err)
	s.Equal(int64(2), updated)

	counts, err := s.creatives.CountByStatus(s.ctx, "pushhouse")
	s.Require().NoError(err)
	s.Equal(int64(1), counts[domain.StatusActive])
	s.Equal(int64(2), counts[domain.StatusInactive])
}

func (s *PostgresIntegrationSuite) TestLocalIDsByExternalIDs() {
	_, err := s.creatives.BulkUpsertByExternalID(s.ctx, []domain.Creative{
		testCreative("pushhouse", 1),
		testCreative("pushhouse", 2),
	})
	s.Require().NoError(err)

	ids, err := s.creatives.LocalIDsByExternalIDs(s.ctx, "pushhouse", []int64{1, 2, 99})
	s.Require().NoError(err)
	s.Len(ids, 2)

	ids, err = s.creatives.LocalIDsByExternalIDs(s.ctx, "pushhouse", nil)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *PostgresIntegrationSuite) TestCleanupInactive_RespectsCutoff() {
	_, err := s.creatives.BulkUpsertByExternalID(s.ctx, []domain.Creative{
		testCreative("pushhouse", 1),
		testCreative("pushhouse", 2),
	})
	s.Require().NoError(err)

	_, err = s.creatives.BulkUpdateStatus(s.ctx, "pushhouse", []int64{1}, domain.StatusInactive)
	s.Require().NoError(err)

	// Age the inactive row past the retention window.
	_, err = s.db.ExecContext(s.ctx,
		"UPDATE creatives SET updated_at = now() - interval '40 days' WHERE external_id = 1")
	s.Require().NoError(err)

	deleted, err := s.creatives.CleanupInactive(s.ctx, "pushhouse", time.Now().AddDate(0, 0, -30))
	s.Require().NoError(err)
	s.Equal(int64(1), deleted)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT count(*) FROM creatives"))
	s.Equal(1, count)
}

func (s *PostgresIntegrationSuite) TestSourceState_FreshSourceIsIdle() {
	state, err := s.states.Get(s.ctx, "never-ran")
	s.Require().NoError(err)
	s.Equal(domain.SourceIdle, state.Status)
	s.Nil(state.LastID)
	s.Nil(state.LastError)
}

func (s *PostgresIntegrationSuite) TestSourceState_RoundTrip() {
	lastID := int64(4200)
	now := time.Now().UTC().Truncate(time.Millisecond)

	state := &domain.SourceState{
		SourceID:    "feedhouse",
		DisplayName: "FeedHouse",
		Status:      domain.SourceFailed,
		LastID:      &lastID,
		LastRunAt:   &now,
		LastError: &domain.RunError{
			Message:  "server error: 502",
			Location: "cursor run loop",
			Stats:    domain.RunStats{Processed: 100, Saved: 80, Errors: 1},
		},
		LastErrorAt: &now,
	}

	s.Require().NoError(s.states.Save(s.ctx, state))

	loaded, err := s.states.Get(s.ctx, "feedhouse")
	s.Require().NoError(err)
	s.Equal(domain.SourceFailed, loaded.Status)
	s.Equal(int64(4200), *loaded.LastID)
	s.Require().NotNil(loaded.LastError)
	s.Equal("server error: 502", loaded.LastError.Message)
	s.Equal(80, loaded.LastError.Stats.Saved)

	// Second save updates in place.
	state.Status = domain.SourceIdle
	state.LastError = nil
	state.LastErrorAt = nil
	s.Require().NoError(s.states.Save(s.ctx, state))

	loaded, err = s.states.Get(s.ctx, "feedhouse")
	s.Require().NoError(err)
	s.Equal(domain.SourceIdle, loaded.Status)
	s.Nil(loaded.LastError)
}

func (s *PostgresIntegrationSuite) TestSourceState_AcquireIsExclusive() {
	state, err := s.states.Acquire(s.ctx, "feedhouse", "FeedHouse")
	s.Require().NoError(err)
	s.Equal(domain.SourceRunning, state.Status)
	s.Nil(state.LastID)

	// A second acquire must lose while the first run still holds the row.
	_, err = s.states.Acquire(s.ctx, "feedhouse", "FeedHouse")
	s.ErrorIs(err, domain.ErrRunInProgress)

	state.Status = domain.SourceIdle
	s.Require().NoError(s.states.Save(s.ctx, state))

	state, err = s.states.Acquire(s.ctx, "feedhouse", "FeedHouse")
	s.Require().NoError(err)
	s.Equal(domain.SourceRunning, state.Status)
}

func (s *PostgresIntegrationSuite) TestSourceState_AcquireClearsPriorFailure() {
	now := time.Now().UTC()
	s.Require().NoError(s.states.Save(s.ctx, &domain.SourceState{
		SourceID:    "feedhouse",
		DisplayName: "FeedHouse",
		Status:      domain.SourceFailed,
		LastID:      ptrTo(int64(700)),
		LastError:   &domain.RunError{Message: "server error: 502"},
		LastErrorAt: &now,
	}))

	state, err := s.states.Acquire(s.ctx, "feedhouse", "FeedHouse")
	s.Require().NoError(err)
	s.Equal(domain.SourceRunning, state.Status)
	s.Equal(int64(700), *state.LastID)
	s.Nil(state.LastError)
	s.Nil(state.LastErrorAt)
}

func (s *PostgresIntegrationSuite) TestWithTransaction_RollsBackOnError() {
	err := s.txManager.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if _, uerr := s.creatives.BulkUpsertByExternalID(txCtx, []domain.Creative{
			testCreative("pushhouse", 1),
		}); uerr != nil {
			return uerr
		}
		return errors.New("forced rollback")
	})
	s.Require().Error(err)

	var count int
	s.Require().NoError(s.db.GetContext(s.ctx, &count, "SELECT count(*) FROM creatives"))
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestWithTransaction_CommitsInsertAndDeactivateTogether() {
	_, err := s.creatives.BulkUpsertByExternalID(s.ctx, []domain.Creative{
		testCreative("pushhouse", 1),
		testCreative("pushhouse", 2),
	})
	s.Require().NoError(err)

	err = s.txManager.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if _, uerr := s.creatives.BulkUpsertByExternalID(txCtx, []domain.Creative{
			testCreative("pushhouse", 3),
		}); uerr != nil {
			return uerr
		}
		_, uerr := s.creatives.BulkUpdateStatus(txCtx, "pushhouse", []int64{1, 2}, domain.StatusInactive)
		return uerr
	})
	s.Require().NoError(err)

	counts, err := s.creatives.CountByStatus(s.ctx, "pushhouse")
	s.Require().NoError(err)
	s.Equal(int64(1), counts[domain.StatusActive])
	s.Equal(int64(2), counts[domain.StatusInactive])
}
