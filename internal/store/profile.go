package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain"
)

// UserProfileStore defines persistence for onboarding profiles and the
// running AgeState they carry.
type UserProfileStore interface {
	// Create saves a new profile. Returns ErrDuplicate when a profile already
	// exists for the user; onboarding happens at most once.
	Create(ctx context.Context, profile *domain.UserProfile) error

	// GetByUserID retrieves a profile. Returns ErrProfileNotFound when the
	// user has not onboarded.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)

	// GetForUpdate retrieves a profile with a row lock, serializing
	// concurrent check-ins for the same user. Must be called inside a
	// transaction; returns ErrProfileNotFound when the user has not
	// onboarded.
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)

	// Update persists the advanced AgeState. Returns ErrProfileNotFound when
	// the profile does not exist.
	Update(ctx context.Context, profile *domain.UserProfile) error

	// WithTx returns a store whose operations run within the transaction.
	WithTx(tx *sql.Tx) UserProfileStore
}
