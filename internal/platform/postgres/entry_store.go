package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
	"github.com/vitalage/bioage-api/internal/store"
)

// PostgresEntryStore implements the store.EntryStore interface using a
// PostgreSQL database as the storage backend. The check-in history is
// append-only; there are no update or delete operations. Metrics, result and
// state snapshots are JSONB documents read and written whole.
//
// The unique index on (user_id, day) is the last line of defense against
// double check-ins; the service layer checks first, but a concurrent insert
// still surfaces here as ErrDuplicateEntry.
type PostgresEntryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresEntryStore creates a new PostgreSQL implementation of the
// EntryStore interface. If logger is nil, a default logger will be used.
func NewPostgresEntryStore(db store.DBTX, logger *slog.Logger) *PostgresEntryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresEntryStore{
		db:     db,
		logger: logger.With(slog.String("component", "entry_store")),
	}
}

// Ensure PostgresEntryStore implements store.EntryStore interface
var _ store.EntryStore = (*PostgresEntryStore)(nil)

const entryColumns = "id, user_id, day, metrics, result, state, created_at"

// Append implements store.EntryStore.Append
func (s *PostgresEntryStore) Append(ctx context.Context, entry *domain.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	metricsJSON, err := json.Marshal(entry.Metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}
	resultJSON, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal score result: %w", err)
	}
	stateJSON, err := json.Marshal(entry.State)
	if err != nil {
		return fmt.Errorf("failed to marshal age state: %w", err)
	}

	query := `
		INSERT INTO entries (id, user_id, day, metrics, result, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Day, metricsJSON, resultJSON, stateJSON,
		entry.CreatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrDuplicateEntry
		}
		return MapError(err)
	}

	return nil
}

// Exists implements store.EntryStore.Exists
func (s *PostgresEntryStore) Exists(ctx context.Context, userID uuid.UUID, day daykey.Key) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM entries WHERE user_id = $1 AND day = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, userID, day).Scan(&exists); err != nil {
		return false, MapError(err)
	}
	return exists, nil
}

// Get implements store.EntryStore.Get
func (s *PostgresEntryStore) Get(ctx context.Context, userID uuid.UUID, day daykey.Key) (*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = $1 AND day = $2
	`
	row := s.db.QueryRowContext(ctx, query, userID, day)

	entry, err := scanEntry(row.Scan)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrEntryNotFound
		}
		return nil, MapError(err)
	}
	return entry, nil
}

// ListRange implements store.EntryStore.ListRange
func (s *PostgresEntryStore) ListRange(ctx context.Context, userID uuid.UUID, from, to daykey.Key) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = $1 AND day >= $2 AND day <= $3
		ORDER BY day ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, MapError(err)
	}
	return collectEntries(rows)
}

// ListAll implements store.EntryStore.ListAll
func (s *PostgresEntryStore) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = $1
		ORDER BY day ASC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	return collectEntries(rows)
}

// ListLast implements store.EntryStore.ListLast
func (s *PostgresEntryStore) ListLast(ctx context.Context, userID uuid.UUID, n int) ([]domain.Entry, error) {
	// Fetch the newest n in descending order, then flip to ascending.
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE user_id = $1
		ORDER BY day DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, userID, n)
	if err != nil {
		return nil, MapError(err)
	}
	entries, err := collectEntries(rows)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// WithTx implements store.EntryStore.WithTx
func (s *PostgresEntryStore) WithTx(tx *sql.Tx) store.EntryStore {
	return &PostgresEntryStore{
		db:     tx,
		logger: s.logger,
	}
}

func scanEntry(scan func(dest ...any) error) (*domain.Entry, error) {
	var (
		entry       domain.Entry
		metricsJSON []byte
		resultJSON  []byte
		stateJSON   []byte
	)
	err := scan(&entry.ID, &entry.UserID, &entry.Day,
		&metricsJSON, &resultJSON, &stateJSON, &entry.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(metricsJSON, &entry.Metrics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metrics: %w", err)
	}
	if err := json.Unmarshal(resultJSON, &entry.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score result: %w", err)
	}
	if err := json.Unmarshal(stateJSON, &entry.State); err != nil {
		return nil, fmt.Errorf("failed to unmarshal age state: %w", err)
	}
	return &entry, nil
}

func collectEntries(rows *sql.Rows) ([]domain.Entry, error) {
	defer func() { _ = rows.Close() }()

	entries := make([]domain.Entry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, MapError(err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return entries, nil
}
