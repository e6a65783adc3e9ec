package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

// Common validation errors for Entry.
var (
	ErrEmptyEntryID     = errors.New("entry ID cannot be empty")
	ErrEmptyEntryUserID = errors.New("entry user ID cannot be empty")
	ErrEmptyEntryDay    = errors.New("entry day cannot be empty")
	ErrEntryDayMismatch = errors.New("entry day must match its metrics day")
)

// Entry is the immutable record of one applied daily check-in: the metrics
// snapshot, the score it produced, and the AgeState after applying it.
// At most one Entry exists per (user, day); the history is append-only and
// never mutated after creation.
type Entry struct {
	ID      uuid.UUID    `json:"id"`
	UserID  uuid.UUID    `json:"user_id"`
	Day     daykey.Key   `json:"day"`
	Metrics DailyMetrics `json:"metrics"`
	Result  ScoreResult  `json:"result"`
	State   AgeState     `json:"state"`

	CreatedAt time.Time `json:"created_at"`
}

// NewEntry assembles the immutable record for one applied check-in.
func NewEntry(userID uuid.UUID, metrics DailyMetrics, result ScoreResult, state AgeState) (*Entry, error) {
	entry := &Entry{
		ID:        uuid.New(),
		UserID:    userID,
		Day:       metrics.Day,
		Metrics:   metrics,
		Result:    result,
		State:     state,
		CreatedAt: time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the Entry has valid data.
func (e *Entry) Validate() error {
	if e.ID == uuid.Nil {
		return ErrEmptyEntryID
	}
	if e.UserID == uuid.Nil {
		return ErrEmptyEntryUserID
	}
	if e.Day == "" {
		return ErrEmptyEntryDay
	}
	if e.Day != e.Metrics.Day {
		return ErrEntryDayMismatch
	}
	if _, err := daykey.Parse(string(e.Day)); err != nil {
		return err
	}
	return e.State.Validate()
}
