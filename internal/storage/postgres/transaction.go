package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// txContextKey carries the open transaction of a sync write phase.
type txContextKey struct{}

// TransactionManager brackets the write phase of a sync run. Store methods
// resolve their executor through GetExecutor, so the bulk upserts, local
// id lookups and status updates issued inside one callback land in the
// same transaction and commit or roll back together.
type TransactionManager struct {
	db *sqlx.DB
}

func NewTransactionManager(db *sqlx.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithTransaction runs fn with a transaction carried on its context. An
// error from fn rolls the write phase back and is returned unchanged, so
// callers keep the typed errors the callback produced.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := tm.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin write phase: %w", err)
	}

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit write phase: %w", err)
	}
	return nil
}

// GetExecutor returns the transaction carried by ctx, falling back to the
// connection pool for reads issued outside a write phase.
func GetExecutor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx, ok := ctx.Value(txContextKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return db
}
