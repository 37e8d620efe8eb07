package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"creative_syncer/internal/domain"
)

const creativeColumns = `source_id, external_id, title, text, country_code, ad_network,
	format, status, icon_url, image_url, target_url, cpc, is_adult,
	content_hash, external_created_at`

type CreativeStore struct {
	db        *sqlx.DB
	chunkSize int
}

func NewCreativeStore(db *sqlx.DB, chunkSize int) *CreativeStore {
	if chunkSize <= 0 {
		chunkSize = 100
	}
	return &CreativeStore{db: db, chunkSize: chunkSize}
}

// ExistsByHash reports whether a creative with the given content hash is
// already persisted. The hash includes the source name, so the lookup is
// global.
func (s *CreativeStore) ExistsByHash(ctx context.Context, hash string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		"SELECT EXISTS (SELECT 1 FROM creatives WHERE content_hash = $1)", hash)
	return exists, err
}

// ExistingExternalIDs returns every external id persisted for sourceID,
// regardless of status.
func (s *CreativeStore) ExistingExternalIDs(ctx context.Context, sourceID string) ([]int64, error) {
	var ids []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		"SELECT external_id FROM creatives WHERE source_id = $1", sourceID)
	return ids, err
}

// BulkUpsertByHash inserts creatives in fixed-size chunks, keyed on the
// content hash. A record already present updates in place, so a race with
// another run does not error.
func (s *CreativeStore) BulkUpsertByHash(ctx context.Context, creatives []domain.Creative) (int, error) {
	return s.bulkUpsert(ctx, creatives, "(content_hash)")
}

// BulkUpsertByExternalID inserts creatives in fixed-size chunks, keyed on
// (source_id, external_id).
func (s *CreativeStore) BulkUpsertByExternalID(ctx context.Context, creatives []domain.Creative) (int, error) {
	return s.bulkUpsert(ctx, creatives, "(source_id, external_id)")
}

func (s *CreativeStore) bulkUpsert(ctx context.Context, creatives []domain.Creative, conflictTarget string) (int, error) {
	if len(creatives) == 0 {
		return 0, nil
	}

	exec := GetExecutor(ctx, s.db)
	inserted := 0

	for start := 0; start < len(creatives); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(creatives) {
			end = len(creatives)
		}
		chunk := creatives[start:end]

		query, args := buildUpsertQuery(chunk, conflictTarget)
		if _, err := exec.ExecContext(ctx, query, args...); err != nil {
			return inserted, fmt.Errorf("upsert chunk [%d:%d]: %w", start, end, err)
		}
		inserted += len(chunk)
	}

	return inserted, nil
}

func buildUpsertQuery(chunk []domain.Creative, conflictTarget string) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO creatives (")
	sb.WriteString(creativeColumns)
	sb.WriteString(") VALUES ")

	const fieldCount = 15
	args := make([]interface{}, 0, len(chunk)*fieldCount)

	for i, c := range chunk {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < fieldCount; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*fieldCount+j+1)
		}
		sb.WriteString(")")
		args = append(args,
			c.SourceID, c.ExternalID, c.Title, c.Text, c.CountryCode, c.AdNetwork,
			c.Format, c.Status, c.IconURL, c.ImageURL, c.TargetURL, c.CPC, c.IsAdult,
			c.ContentHash, c.ExternalCreatedAt,
		)
	}

	sb.WriteString(" ON CONFLICT ")
	sb.WriteString(conflictTarget)
	sb.WriteString(` DO UPDATE SET
		title = EXCLUDED.title,
		text = EXCLUDED.text,
		country_code = EXCLUDED.country_code,
		ad_network = EXCLUDED.ad_network,
		format = EXCLUDED.format,
		status = EXCLUDED.status,
		icon_url = EXCLUDED.icon_url,
		image_url = EXCLUDED.image_url,
		target_url = EXCLUDED.target_url,
		cpc = EXCLUDED.cpc,
		is_adult = EXCLUDED.is_adult,
		content_hash = EXCLUDED.content_hash,
		updated_at = now()`)

	return sb.String(), args
}

// BulkUpdateStatus flips the status of the given external ids, scoped to
// sourceID, in fixed-size chunks. Returns the number of rows updated.
func (s *CreativeStore) BulkUpdateStatus(ctx context.Context, sourceID string, externalIDs []int64, status domain.CreativeStatus) (int64, error) {
	if len(externalIDs) == 0 {
		return 0, nil
	}

	exec := GetExecutor(ctx, s.db)
	var updated int64

	for start := 0; start < len(externalIDs); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(externalIDs) {
			end = len(externalIDs)
		}

		res, err := exec.ExecContext(ctx,
			`UPDATE creatives SET status = $1, updated_at = now()
			 WHERE source_id = $2 AND external_id = ANY($3)`,
			status, sourceID, pq.Array(externalIDs[start:end]),
		)
		if err != nil {
			return updated, fmt.Errorf("update status chunk [%d:%d]: %w", start, end, err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return updated, err
		}
		updated += n
	}

	return updated, nil
}

// LocalIDsByExternalIDs resolves internal row ids for downstream dispatch.
func (s *CreativeStore) LocalIDsByExternalIDs(ctx context.Context, sourceID string, externalIDs []int64) ([]int64, error) {
	if len(externalIDs) == 0 {
		return nil, nil
	}

	var ids []int64
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		"SELECT id FROM creatives WHERE source_id = $1 AND external_id = ANY($2)",
		sourceID, pq.Array(externalIDs))
	return ids, err
}

// CountByStatus returns per-status row counts for one source.
func (s *CreativeStore) CountByStatus(ctx context.Context, sourceID string) (map[domain.CreativeStatus]int64, error) {
	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx,
		"SELECT status, count(*) FROM creatives WHERE source_id = $1 GROUP BY status", sourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.CreativeStatus]int64)
	for rows.Next() {
		var status domain.CreativeStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// CleanupInactive hard-deletes rows that have been inactive since before
// the cutoff. This is the only path that deletes creatives.
func (s *CreativeStore) CleanupInactive(ctx context.Context, sourceID string, olderThan time.Time) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM creatives
		 WHERE source_id = $1 AND status = $2 AND updated_at < $3`,
		sourceID, domain.StatusInactive, olderThan,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
