package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/store"
)

// ErrInvalidWindow indicates an unknown trend window name.
var ErrInvalidWindow = errors.New("invalid trend window")

// defaultChartPoints caps how many points a trend response carries; longer
// histories are downsampled.
const defaultChartPoints = 30

// TrendService computes biological-age movement over fixed windows.
type TrendService interface {
	// GetTrend analyzes the user's recent history over the named window
	// ("weekly", "monthly" or "yearly"). Returns ErrNotOnboarded when no
	// profile exists.
	GetTrend(ctx context.Context, userID uuid.UUID, window string) (*bioage.Trend, error)
}

// TrendServiceImpl implements the TrendService interface
type TrendServiceImpl struct {
	entryStore   store.EntryStore
	profileStore store.UserProfileStore
	params       *bioage.Params
	logger       *slog.Logger
}

// NewTrendService creates a new TrendService.
func NewTrendService(
	entryStore store.EntryStore,
	profileStore store.UserProfileStore,
	params *bioage.Params,
	logger *slog.Logger,
) TrendService {
	if entryStore == nil {
		panic("entryStore cannot be nil")
	}
	if profileStore == nil {
		panic("profileStore cannot be nil")
	}
	if params == nil {
		params = bioage.NewDefaultParams()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TrendServiceImpl{
		entryStore:   entryStore,
		profileStore: profileStore,
		params:       params,
		logger:       logger.With(slog.String("component", "trend_service")),
	}
}

// WindowDays maps a window name to its length in check-ins.
func WindowDays(window string) (int, error) {
	switch window {
	case "weekly":
		return bioage.WindowWeek, nil
	case "monthly":
		return bioage.WindowMonth, nil
	case "yearly":
		return bioage.WindowYear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidWindow, window)
	}
}

// GetTrend analyzes the user's recent history over the named window.
func (s *TrendServiceImpl) GetTrend(ctx context.Context, userID uuid.UUID, window string) (*bioage.Trend, error) {
	windowDays, err := WindowDays(window)
	if err != nil {
		return nil, err
	}

	if _, err := s.profileStore.GetByUserID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, ErrNotOnboarded
		}
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}

	entries, err := s.entryStore.ListLast(ctx, userID, windowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	trend := bioage.AnalyzeTrend(entries, windowDays, defaultChartPoints, s.params)
	return &trend, nil
}
