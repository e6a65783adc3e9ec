package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
	"github.com/vitalage/bioage-api/internal/store"
)

// CheckInService applies one daily check-in: score the metrics, advance the
// running AgeState, and append the immutable entry. The whole pipeline runs
// in a single transaction with the profile row locked, so concurrent
// check-ins for the same user serialize and exactly one entry per day wins.
type CheckInService interface {
	// CheckIn scores metrics for the user's current calendar day and applies
	// the result. Returns ErrNotOnboarded when no profile exists and
	// ErrDuplicateCheckIn when the day already has an entry.
	CheckIn(ctx context.Context, userID uuid.UUID, metrics domain.DailyMetrics) (*domain.Entry, error)
}

// CheckInServiceImpl implements the CheckInService interface
type CheckInServiceImpl struct {
	db           *sql.DB
	entryStore   store.EntryStore
	profileStore store.UserProfileStore
	engine       bioage.Service
	clock        daykey.Clock
	logger       *slog.Logger
}

// NewCheckInService creates a new CheckInService. A nil db runs the pipeline
// without a transaction, which only the in-memory test stores support.
func NewCheckInService(
	db *sql.DB,
	entryStore store.EntryStore,
	profileStore store.UserProfileStore,
	engine bioage.Service,
	clock daykey.Clock,
	logger *slog.Logger,
) CheckInService {
	if entryStore == nil {
		panic("entryStore cannot be nil")
	}
	if profileStore == nil {
		panic("profileStore cannot be nil")
	}
	if engine == nil {
		panic("engine cannot be nil")
	}
	if clock == nil {
		clock = daykey.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CheckInServiceImpl{
		db:           db,
		entryStore:   entryStore,
		profileStore: profileStore,
		engine:       engine,
		clock:        clock,
		logger:       logger.With(slog.String("component", "checkin_service")),
	}
}

// CheckIn applies one daily check-in atomically.
func (s *CheckInServiceImpl) CheckIn(ctx context.Context, userID uuid.UUID, metrics domain.DailyMetrics) (*domain.Entry, error) {
	var created *domain.Entry

	err := s.runInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		profileStore := s.profileStore.WithTx(tx)
		entryStore := s.entryStore.WithTx(tx)

		// The row lock serializes concurrent check-ins for this user.
		profile, err := profileStore.GetForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrProfileNotFound) {
				return ErrNotOnboarded
			}
			return fmt.Errorf("failed to lock profile: %w", err)
		}

		today, err := daykey.Today(s.clock, profile.Timezone)
		if err != nil {
			return fmt.Errorf("failed to resolve current day: %w", err)
		}
		metrics.Day = today

		exists, err := entryStore.Exists(ctx, userID, today)
		if err != nil {
			return fmt.Errorf("failed to check for existing entry: %w", err)
		}
		if exists {
			return ErrDuplicateCheckIn
		}

		result := s.engine.Score(metrics)

		nextState, anomaly, err := s.engine.Advance(profile.State, result, today)
		if err != nil {
			return fmt.Errorf("failed to advance age state: %w", err)
		}
		if anomaly != nil {
			// Anomalies are applied but flagged; they usually mean clock
			// skew or a timezone change between check-ins.
			s.logger.Warn("streak anomaly during check-in",
				"user_id", userID,
				"kind", anomaly.Kind,
				"gap_days", anomaly.GapDays)
		}

		entry, err := domain.NewEntry(userID, metrics, result, nextState)
		if err != nil {
			return err
		}

		if err := entryStore.Append(ctx, entry); err != nil {
			if errors.Is(err, store.ErrDuplicateEntry) {
				// Lost the race to a concurrent insert; the unique index is
				// the final guard.
				return ErrDuplicateCheckIn
			}
			return fmt.Errorf("failed to append entry: %w", err)
		}

		profile.State = nextState
		if err := profileStore.Update(ctx, profile); err != nil {
			return fmt.Errorf("failed to update profile state: %w", err)
		}

		created = entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("check-in applied",
		"user_id", userID,
		"day", created.Day,
		"delta_years", created.Result.DeltaYears)
	return created, nil
}

func (s *CheckInServiceImpl) runInTransaction(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return store.RunInTransaction(ctx, s.db, fn)
}
