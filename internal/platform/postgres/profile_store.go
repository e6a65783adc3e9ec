package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/store"
)

// PostgresUserProfileStore implements the store.UserProfileStore interface
// using a PostgreSQL database as the storage backend. The running AgeState is
// stored as a JSONB document; it is always read and written whole, so the
// database never needs to understand its shape.
type PostgresUserProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserProfileStore creates a new PostgreSQL implementation of the
// UserProfileStore interface. If logger is nil, a default logger will be used.
func NewPostgresUserProfileStore(db store.DBTX, logger *slog.Logger) *PostgresUserProfileStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserProfileStore{
		db:     db,
		logger: logger.With(slog.String("component", "profile_store")),
	}
}

// Ensure PostgresUserProfileStore implements store.UserProfileStore interface
var _ store.UserProfileStore = (*PostgresUserProfileStore)(nil)

// Create implements store.UserProfileStore.Create
func (s *PostgresUserProfileStore) Create(ctx context.Context, profile *domain.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	stateJSON, err := json.Marshal(profile.State)
	if err != nil {
		return fmt.Errorf("failed to marshal age state: %w", err)
	}

	query := `
		INSERT INTO user_profiles (user_id, birth_date, timezone, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.ExecContext(ctx, query,
		profile.UserID, profile.BirthDate, profile.Timezone, stateJSON,
		profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByUserID implements store.UserProfileStore.GetByUserID
func (s *PostgresUserProfileStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	query := `
		SELECT user_id, birth_date, timezone, state, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`
	return s.scanProfile(s.db.QueryRowContext(ctx, query, userID))
}

// GetForUpdate implements store.UserProfileStore.GetForUpdate. The row lock
// serializes concurrent check-ins for the same user: the second transaction
// blocks here until the first commits, then sees its state.
func (s *PostgresUserProfileStore) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	query := `
		SELECT user_id, birth_date, timezone, state, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
		FOR UPDATE
	`
	return s.scanProfile(s.db.QueryRowContext(ctx, query, userID))
}

// Update implements store.UserProfileStore.Update
func (s *PostgresUserProfileStore) Update(ctx context.Context, profile *domain.UserProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	stateJSON, err := json.Marshal(profile.State)
	if err != nil {
		return fmt.Errorf("failed to marshal age state: %w", err)
	}

	profile.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE user_profiles
		SET timezone = $2, state = $3, updated_at = $4
		WHERE user_id = $1
	`
	result, err := s.db.ExecContext(ctx, query,
		profile.UserID, profile.Timezone, stateJSON, profile.UpdatedAt)
	if err != nil {
		return MapError(err)
	}
	if err := CheckRowsAffected(result, "profile"); err != nil {
		return store.ErrProfileNotFound
	}

	return nil
}

// WithTx implements store.UserProfileStore.WithTx
func (s *PostgresUserProfileStore) WithTx(tx *sql.Tx) store.UserProfileStore {
	return &PostgresUserProfileStore{
		db:     tx,
		logger: s.logger,
	}
}

func (s *PostgresUserProfileStore) scanProfile(row *sql.Row) (*domain.UserProfile, error) {
	var (
		profile   domain.UserProfile
		stateJSON []byte
	)
	err := row.Scan(&profile.UserID, &profile.BirthDate, &profile.Timezone,
		&stateJSON, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrProfileNotFound
		}
		return nil, MapError(err)
	}

	if err := json.Unmarshal(stateJSON, &profile.State); err != nil {
		return nil, fmt.Errorf("failed to unmarshal age state: %w", err)
	}
	return &profile, nil
}
