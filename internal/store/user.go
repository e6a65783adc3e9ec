package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain"
)

// UserStore defines persistence for user accounts.
type UserStore interface {
	// Create saves a new user. The plaintext Password on the domain object is
	// hashed before storage and cleared afterwards. Returns ErrEmailExists
	// when the email is already registered.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by unique ID. Returns ErrUserNotFound when no
	// user exists with the given ID.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email address. Returns ErrUserNotFound
	// when no user exists with the given email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a store whose operations run within the transaction.
	WithTx(tx *sql.Tx) UserStore
}
