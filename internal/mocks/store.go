// Package mocks provides in-memory implementations of the store interfaces
// for service-level tests. They honor the same error taxonomy as the
// postgres implementations, including the unique (user, day) guard on
// entries.
package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
	"github.com/vitalage/bioage-api/internal/store"
)

// MemoryUserStore is an in-memory store.UserStore.
type MemoryUserStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]domain.User
	byEmail map[string]uuid.UUID
}

// NewMemoryUserStore creates an empty MemoryUserStore.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		byID:    make(map[uuid.UUID]domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

var _ store.UserStore = (*MemoryUserStore)(nil)

// Create stores the user, treating the plaintext password as already hashed.
func (s *MemoryUserStore) Create(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return store.ErrEmailExists
	}
	if user.HashedPassword == "" {
		user.HashedPassword = "hashed:" + user.Password
	}
	user.Password = ""
	s.byID[user.ID] = *user
	s.byEmail[user.Email] = user.ID
	return nil
}

// GetByID implements store.UserStore.GetByID.
func (s *MemoryUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.GetByEmail.
func (s *MemoryUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user := s.byID[id]
	return &user, nil
}

// WithTx returns the store itself; the in-memory store has no transactions.
func (s *MemoryUserStore) WithTx(*sql.Tx) store.UserStore { return s }

// MemoryProfileStore is an in-memory store.UserProfileStore.
type MemoryProfileStore struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]domain.UserProfile

	// UpdateErr, when set, is returned by Update to simulate write failures.
	UpdateErr error
}

// NewMemoryProfileStore creates an empty MemoryProfileStore.
func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[uuid.UUID]domain.UserProfile)}
}

var _ store.UserProfileStore = (*MemoryProfileStore)(nil)

// Create implements store.UserProfileStore.Create.
func (s *MemoryProfileStore) Create(_ context.Context, profile *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.profiles[profile.UserID]; exists {
		return store.ErrDuplicate
	}
	s.profiles[profile.UserID] = *profile
	return nil
}

// GetByUserID implements store.UserProfileStore.GetByUserID.
func (s *MemoryProfileStore) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(userID)
}

// GetForUpdate behaves like GetByUserID; the single mutex already serializes
// concurrent callers.
func (s *MemoryProfileStore) GetForUpdate(_ context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(userID)
}

// Update implements store.UserProfileStore.Update.
func (s *MemoryProfileStore) Update(_ context.Context, profile *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	if _, exists := s.profiles[profile.UserID]; !exists {
		return store.ErrProfileNotFound
	}
	s.profiles[profile.UserID] = *profile
	return nil
}

// WithTx returns the store itself.
func (s *MemoryProfileStore) WithTx(*sql.Tx) store.UserProfileStore { return s }

func (s *MemoryProfileStore) get(userID uuid.UUID) (*domain.UserProfile, error) {
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, store.ErrProfileNotFound
	}
	return &profile, nil
}

// MemoryEntryStore is an in-memory store.EntryStore.
type MemoryEntryStore struct {
	mu      sync.Mutex
	entries map[uuid.UUID]map[daykey.Key]domain.Entry

	// AppendErr, when set, is returned by Append to simulate write failures.
	AppendErr error
}

// NewMemoryEntryStore creates an empty MemoryEntryStore.
func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{entries: make(map[uuid.UUID]map[daykey.Key]domain.Entry)}
}

var _ store.EntryStore = (*MemoryEntryStore)(nil)

// Append implements store.EntryStore.Append.
func (s *MemoryEntryStore) Append(_ context.Context, entry *domain.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.AppendErr != nil {
		return s.AppendErr
	}
	byDay, ok := s.entries[entry.UserID]
	if !ok {
		byDay = make(map[daykey.Key]domain.Entry)
		s.entries[entry.UserID] = byDay
	}
	if _, exists := byDay[entry.Day]; exists {
		return store.ErrDuplicateEntry
	}
	byDay[entry.Day] = *entry
	return nil
}

// Exists implements store.EntryStore.Exists.
func (s *MemoryEntryStore) Exists(_ context.Context, userID uuid.UUID, day daykey.Key) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.entries[userID][day]
	return exists, nil
}

// Get implements store.EntryStore.Get.
func (s *MemoryEntryStore) Get(_ context.Context, userID uuid.UUID, day daykey.Key) (*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID][day]
	if !ok {
		return nil, store.ErrEntryNotFound
	}
	return &entry, nil
}

// ListRange implements store.EntryStore.ListRange.
func (s *MemoryEntryStore) ListRange(_ context.Context, userID uuid.UUID, from, to daykey.Key) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Entry, 0)
	for day, entry := range s.entries[userID] {
		if day >= from && day <= to {
			out = append(out, entry)
		}
	}
	sortByDay(out)
	return out, nil
}

// ListAll implements store.EntryStore.ListAll.
func (s *MemoryEntryStore) ListAll(_ context.Context, userID uuid.UUID) ([]domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Entry, 0, len(s.entries[userID]))
	for _, entry := range s.entries[userID] {
		out = append(out, entry)
	}
	sortByDay(out)
	return out, nil
}

// ListLast implements store.EntryStore.ListLast.
func (s *MemoryEntryStore) ListLast(ctx context.Context, userID uuid.UUID, n int) ([]domain.Entry, error) {
	all, err := s.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

// WithTx returns the store itself.
func (s *MemoryEntryStore) WithTx(*sql.Tx) store.EntryStore { return s }

func sortByDay(entries []domain.Entry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].Day < entries[j].Day })
}
