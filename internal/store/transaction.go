package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vitalage/bioage-api/internal/platform/logger"
)

// RunInTransaction executes fn inside a database transaction. It commits when
// fn returns nil and rolls back when fn returns an error or panics. The panic
// is re-raised after rollback so it is never silently swallowed.
//
// The check-in pipeline relies on this: reading the profile FOR UPDATE,
// appending the entry, and writing the advanced state must be atomic.
func RunInTransaction(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx *sql.Tx) error) error {
	log := logger.FromContextOrDefault(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				log.Error("failed to rollback transaction after panic",
					"panic", p,
					"rollback_error", rbErr)
			}
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			log.Error("failed to rollback transaction",
				"original_error", err,
				"rollback_error", rbErr)
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
