package store

import (
	"errors"
	"fmt"
)

// Common store errors. Postgres adapters translate driver errors into these
// sentinels so that services and handlers never inspect driver types.
var (
	// ErrNotFound indicates that a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate indicates a uniqueness violation on insert or update.
	ErrDuplicate = errors.New("duplicate record")

	// Entity-specific wrappers. Each wraps the generic sentinel so both
	// errors.Is(err, ErrUserNotFound) and errors.Is(err, ErrNotFound) hold.
	ErrUserNotFound    = fmt.Errorf("user: %w", ErrNotFound)
	ErrProfileNotFound = fmt.Errorf("profile: %w", ErrNotFound)
	ErrEntryNotFound   = fmt.Errorf("entry: %w", ErrNotFound)

	ErrEmailExists    = fmt.Errorf("email: %w", ErrDuplicate)
	ErrDuplicateEntry = fmt.Errorf("entry day: %w", ErrDuplicate)
)

// StoreError wraps a driver-level error with a stable message while keeping
// the cause available through errors.Unwrap.
type StoreError struct {
	// Message is safe to log and to compare in tests.
	Message string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a StoreError with a formatted message.
func NewStoreError(err error, format string, args ...any) *StoreError {
	return &StoreError{
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// IsNotFoundError reports whether err is any of the not-found sentinels.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any of the duplicate sentinels.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
