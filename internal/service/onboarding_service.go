package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
	"github.com/vitalage/bioage-api/internal/store"
)

// OnboardingService establishes a user's baseline biological age from the
// one-time questionnaire.
type OnboardingService interface {
	// Onboard scores the questionnaire and creates the profile. Returns
	// ErrAlreadyOnboarded when the user already has one; the baseline is
	// never recomputed.
	Onboard(ctx context.Context, userID uuid.UUID, birthDate time.Time, timezone string, answers bioage.OnboardingAnswers) (*domain.UserProfile, error)

	// GetProfile retrieves the user's profile. Returns ErrNotOnboarded when
	// none exists.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
}

// OnboardingServiceImpl implements the OnboardingService interface
type OnboardingServiceImpl struct {
	profileStore store.UserProfileStore
	engine       bioage.Service
	clock        daykey.Clock
	logger       *slog.Logger
}

// NewOnboardingService creates a new OnboardingService
func NewOnboardingService(
	profileStore store.UserProfileStore,
	engine bioage.Service,
	clock daykey.Clock,
	logger *slog.Logger,
) OnboardingService {
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

	return &OnboardingServiceImpl{
		profileStore: profileStore,
		engine:       engine,
		clock:        clock,
		logger:       logger.With(slog.String("component", "onboarding_service")),
	}
}

// Onboard scores the questionnaire and persists the initial profile.
func (s *OnboardingServiceImpl) Onboard(
	ctx context.Context,
	userID uuid.UUID,
	birthDate time.Time,
	timezone string,
	answers bioage.OnboardingAnswers,
) (*domain.UserProfile, error) {
	chronoAge := domain.AgeYearsAt(birthDate, s.clock.Now().UTC())

	baseline, err := s.engine.BaselineAge(chronoAge, answers)
	if err != nil {
		return nil, err
	}

	state := domain.NewAgeState(chronoAge, baseline)
	profile, err := domain.NewUserProfile(userID, birthDate, timezone, state)
	if err != nil {
		return nil, err
	}

	if err := s.profileStore.Create(ctx, profile); err != nil {
		if store.IsDuplicateError(err) {
			return nil, ErrAlreadyOnboarded
		}
		s.logger.Error("failed to create profile", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Info("user onboarded",
		"user_id", userID,
		"baseline_biological_age", baseline)
	return profile, nil
}

// GetProfile retrieves the user's profile.
func (s *OnboardingServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	profile, err := s.profileStore.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return nil, ErrNotOnboarded
		}
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}
	return profile, nil
}
