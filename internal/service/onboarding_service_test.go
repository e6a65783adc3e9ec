package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/mocks"
	"github.com/vitalage/bioage-api/internal/service"
)

// fixedClock pins the current instant for deterministic day resolution.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// juneClock resolves to 2025-06-02 in UTC.
var juneClock = fixedClock{now: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)}

func neutralAnswers() bioage.OnboardingAnswers {
	return bioage.OnboardingAnswers{}
}

func favorableAnswers() bioage.OnboardingAnswers {
	return bioage.OnboardingAnswers{
		Sleep:             2,
		MovementFrequency: 2,
		MovementIntensity: 2,
		MetabolicEnergy:   2,
		MetabolicWeight:   2,
		MetabolicAppetite: 2,
		Nutrition:         2,
		StressLoad:        2,
		StressRecovery:    2,
		StressMood:        2,
	}
}

func TestOnboard(t *testing.T) {
	t.Parallel()

	profiles := mocks.NewMemoryProfileStore()
	svc := service.NewOnboardingService(profiles, bioage.NewDefaultService(), juneClock, nil)

	userID := uuid.New()
	birthDate := time.Date(1985, 6, 2, 0, 0, 0, 0, time.UTC)

	profile, err := svc.Onboard(context.Background(), userID, birthDate, "UTC", favorableAnswers())
	require.NoError(t, err)

	// All-favorable answers pull the baseline the full offset below the
	// chronological age of 40.
	assert.InDelta(t, 40, profile.State.ChronologicalAgeYears, 0.01)
	assert.InDelta(t, 35, profile.State.BaselineBiologicalAgeYears, 0.01)
	assert.Equal(t, profile.State.BaselineBiologicalAgeYears, profile.State.CurrentBiologicalAgeYears)
	assert.Less(t, profile.State.AgingDebtYears, 0.0)
	assert.Nil(t, profile.State.LastCheckInDay)
}

func TestOnboardHappensAtMostOnce(t *testing.T) {
	t.Parallel()

	profiles := mocks.NewMemoryProfileStore()
	svc := service.NewOnboardingService(profiles, bioage.NewDefaultService(), juneClock, nil)

	userID := uuid.New()
	birthDate := time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC)

	first, err := svc.Onboard(context.Background(), userID, birthDate, "UTC", neutralAnswers())
	require.NoError(t, err)

	_, err = svc.Onboard(context.Background(), userID, birthDate, "UTC", favorableAnswers())
	assert.ErrorIs(t, err, service.ErrAlreadyOnboarded)

	// The original baseline survives the rejected second attempt.
	kept, err := svc.GetProfile(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, first.State.BaselineBiologicalAgeYears, kept.State.BaselineBiologicalAgeYears)
}

func TestOnboardRejectsOutOfRangeAnswers(t *testing.T) {
	t.Parallel()

	svc := service.NewOnboardingService(mocks.NewMemoryProfileStore(), bioage.NewDefaultService(), juneClock, nil)

	bad := neutralAnswers()
	bad.StressMood = 5
	_, err := svc.Onboard(context.Background(), uuid.New(), time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), "UTC", bad)
	assert.ErrorIs(t, err, bioage.ErrAnswerOutOfRange)
}

func TestGetProfileNotOnboarded(t *testing.T) {
	t.Parallel()

	svc := service.NewOnboardingService(mocks.NewMemoryProfileStore(), bioage.NewDefaultService(), juneClock, nil)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, service.ErrNotOnboarded)
}
