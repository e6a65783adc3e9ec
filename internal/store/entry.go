package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

// EntryStore defines persistence for the append-only check-in history.
// Entries are never updated or deleted once appended.
type EntryStore interface {
	// Append saves a new entry. Returns ErrDuplicateEntry when an entry for
	// the same (user, day) already exists; the unique index is the final
	// guard against double check-ins.
	Append(ctx context.Context, entry *domain.Entry) error

	// Exists reports whether an entry exists for the user on the given day.
	Exists(ctx context.Context, userID uuid.UUID, day daykey.Key) (bool, error)

	// Get retrieves the entry for one day. Returns ErrEntryNotFound when the
	// user did not check in that day.
	Get(ctx context.Context, userID uuid.UUID, day daykey.Key) (*domain.Entry, error)

	// ListRange retrieves entries with from <= day <= to, ordered by day
	// ascending. An empty range yields an empty slice, not an error.
	ListRange(ctx context.Context, userID uuid.UUID, from, to daykey.Key) ([]domain.Entry, error)

	// ListAll retrieves the user's full history ordered by day ascending.
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Entry, error)

	// ListLast retrieves the most recent n entries, returned in ascending
	// day order.
	ListLast(ctx context.Context, userID uuid.UUID, n int) ([]domain.Entry, error)

	// WithTx returns a store whose operations run within the transaction.
	WithTx(tx *sql.Tx) EntryStore
}
