package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
	"github.com/vitalage/bioage-api/internal/store"
)

// ErrInvalidRange indicates an unknown summary range name.
var ErrInvalidRange = errors.New("invalid summary range")

// SummaryView is a range summary plus its chart buckets. Days is populated
// for weekly and monthly ranges, Months for the yearly range.
type SummaryView struct {
	bioage.Summary

	Days   []bioage.DayBucket   `json:"days,omitempty"`
	Months []bioage.MonthBucket `json:"months,omitempty"`
}

// SummaryService aggregates applied deltas over calendar ranges anchored at
// the user's current day.
type SummaryService interface {
	// GetSummary aggregates the named range ("weekly", "monthly" or
	// "yearly"). Returns ErrNotOnboarded when no profile exists.
	GetSummary(ctx context.Context, userID uuid.UUID, rangeName string) (*SummaryView, error)
}

// SummaryServiceImpl implements the SummaryService interface
type SummaryServiceImpl struct {
	entryStore   store.EntryStore
	profileStore store.UserProfileStore
	clock        daykey.Clock
	logger       *slog.Logger
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(
	entryStore store.EntryStore,
	profileStore store.UserProfileStore,
	clock daykey.Clock,
	logger *slog.Logger,
) SummaryService {
	if entryStore == nil {
		panic("entryStore cannot be nil")
	}
	if profileStore == nil {
		panic("profileStore cannot be nil")
	}
	if clock == nil {
		clock = daykey.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SummaryServiceImpl{
		entryStore:   entryStore,
		profileStore: profileStore,
		clock:        clock,
		logger:       logger.With(slog.String("component", "summary_service")),
	}
}

// GetSummary aggregates the named calendar range.
func (s *SummaryServiceImpl) GetSummary(ctx context.Context, userID uuid.UUID, rangeName string) (*SummaryView, error) {
	profile, err := s.profileStore.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, ErrNotOnboarded
		}
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}

	today, err := daykey.Today(s.clock, profile.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current day: %w", err)
	}

	from, to, err := rangeBounds(rangeName, today)
	if err != nil {
		return nil, err
	}

	rangeEntries, err := s.entryStore.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list range entries: %w", err)
	}

	// Lifetime magnitudes need the full history, not just the range.
	allEntries, err := s.entryStore.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	view := &SummaryView{
		Summary: bioage.Summarize(profile.State, rangeEntries, allEntries),
	}

	switch rangeName {
	case "weekly", "monthly":
		days, err := daykey.Range(from, to)
		if err != nil {
			return nil, err
		}
		view.Days = bioage.AggregateDays(rangeEntries, days)
	case "yearly":
		months, err := daykey.MonthsOfYear(today)
		if err != nil {
			return nil, err
		}
		view.Months = bioage.AggregateMonths(rangeEntries, months)
	}

	return view, nil
}

// rangeBounds maps a range name to inclusive day bounds containing today.
// The week starts on Monday; month and year follow the calendar.
func rangeBounds(rangeName string, today daykey.Key) (daykey.Key, daykey.Key, error) {
	switch rangeName {
	case "weekly":
		from, err := daykey.StartOfWeek(today)
		if err != nil {
			return "", "", err
		}
		to, err := from.AddDays(6)
		if err != nil {
			return "", "", err
		}
		return from, to, nil
	case "monthly":
		from, err := daykey.StartOfMonth(today)
		if err != nil {
			return "", "", err
		}
		to, err := daykey.EndOfMonth(today)
		if err != nil {
			return "", "", err
		}
		return from, to, nil
	case "yearly":
		from, err := daykey.StartOfYear(today)
		if err != nil {
			return "", "", err
		}
		to, err := daykey.EndOfYear(today)
		if err != nil {
			return "", "", err
		}
		return from, to, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRange, rangeName)
	}
}
