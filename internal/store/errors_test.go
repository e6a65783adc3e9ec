package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalage/bioage-api/internal/store"
)

func TestSentinelWrapping(t *testing.T) {
	t.Parallel()

	// Entity sentinels must satisfy both the specific and generic checks.
	assert.ErrorIs(t, store.ErrUserNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrProfileNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrEntryNotFound, store.ErrNotFound)
	assert.ErrorIs(t, store.ErrEmailExists, store.ErrDuplicate)
	assert.ErrorIs(t, store.ErrDuplicateEntry, store.ErrDuplicate)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsNotFoundError(store.ErrNotFound))
	assert.True(t, store.IsNotFoundError(store.ErrEntryNotFound))
	assert.True(t, store.IsNotFoundError(fmt.Errorf("outer: %w", store.ErrProfileNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrDuplicate))
	assert.False(t, store.IsNotFoundError(errors.New("unrelated")))
	assert.False(t, store.IsNotFoundError(nil))
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	assert.True(t, store.IsDuplicateError(store.ErrDuplicate))
	assert.True(t, store.IsDuplicateError(store.ErrDuplicateEntry))
	assert.False(t, store.IsDuplicateError(store.ErrNotFound))
	assert.False(t, store.IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")
	err := store.NewStoreError(cause, "failed to append entry for day %s", "2025-06-02")

	assert.Contains(t, err.Error(), "failed to append entry for day 2025-06-02")
	assert.Contains(t, err.Error(), "connection reset")
	assert.ErrorIs(t, err, cause)

	bare := store.NewStoreError(nil, "no cause")
	assert.Equal(t, "no cause", bare.Error())
}
