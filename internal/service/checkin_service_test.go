package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/mocks"
	"github.com/vitalage/bioage-api/internal/service"
)

// checkInFixture wires the check-in service against in-memory stores with an
// onboarded user.
type checkInFixture struct {
	userID   uuid.UUID
	entries  *mocks.MemoryEntryStore
	profiles *mocks.MemoryProfileStore
	clock    *mutableClock
	svc      service.CheckInService
}

type mutableClock struct {
	now time.Time
}

func (c *mutableClock) Now() time.Time { return c.now }

func newCheckInFixture(t *testing.T) *checkInFixture {
	t.Helper()

	entries := mocks.NewMemoryEntryStore()
	profiles := mocks.NewMemoryProfileStore()
	clock := &mutableClock{now: juneClock.now}
	engine := bioage.NewDefaultService()

	onboarding := service.NewOnboardingService(profiles, engine, clock, nil)
	userID := uuid.New()
	_, err := onboarding.Onboard(context.Background(), userID,
		time.Date(1985, 6, 2, 0, 0, 0, 0, time.UTC), "UTC", neutralAnswers())
	require.NoError(t, err)

	return &checkInFixture{
		userID:   userID,
		entries:  entries,
		profiles: profiles,
		clock:    clock,
		svc:      service.NewCheckInService(nil, entries, profiles, engine, clock, nil),
	}
}

func goodDayMetrics() domain.DailyMetrics {
	return domain.DailyMetrics{
		SleepHours:      7.5,
		Steps:           12500,
		VigorousMinutes: 35,
		ProcessedFood:   1,
		AlcoholUnits:    0,
		StressLevel:     2,
		BedtimeHour:     22,
	}
}

func TestCheckIn(t *testing.T) {
	t.Parallel()
	f := newCheckInFixture(t)

	entry, err := f.svc.CheckIn(context.Background(), f.userID, goodDayMetrics())
	require.NoError(t, err)

	// The service stamps the entry with the user's current calendar day.
	assert.Equal(t, "2025-06-02", string(entry.Day))
	assert.Negative(t, entry.Result.DeltaYears, "a good day rejuvenates")
	assert.Equal(t, 1, entry.State.RejuvenationStreakDays)

	// The persisted profile carries the advanced state.
	profile, err := f.profiles.GetByUserID(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, entry.State, profile.State)
	require.NotNil(t, profile.State.LastCheckInDay)
	assert.Equal(t, entry.Day, *profile.State.LastCheckInDay)
}

func TestCheckInDuplicateDayLeavesStateUnchanged(t *testing.T) {
	t.Parallel()
	f := newCheckInFixture(t)

	first, err := f.svc.CheckIn(context.Background(), f.userID, goodDayMetrics())
	require.NoError(t, err)

	_, err = f.svc.CheckIn(context.Background(), f.userID, goodDayMetrics())
	assert.ErrorIs(t, err, service.ErrDuplicateCheckIn)

	profile, err := f.profiles.GetByUserID(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, first.State, profile.State, "rejected duplicate must not move the state")

	all, err := f.entries.ListAll(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCheckInConsecutiveDays(t *testing.T) {
	t.Parallel()
	f := newCheckInFixture(t)

	_, err := f.svc.CheckIn(context.Background(), f.userID, goodDayMetrics())
	require.NoError(t, err)

	f.clock.now = f.clock.now.Add(24 * time.Hour)
	second, err := f.svc.CheckIn(context.Background(), f.userID, goodDayMetrics())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-03", string(second.Day))
	assert.Equal(t, 2, second.State.RejuvenationStreakDays)
	assert.Equal(t, 2, second.State.TotalRejuvenationDays)
}

func TestCheckInMissedDayRestartsStreak(t *testing.T) {
	t.Parallel()
	f := newCheckInFixture(t)

	_, err := f.svc.CheckIn(context.Background(), f.userID, goodDayMetrics())
	require.NoError(t, err)

	f.clock.now = f.clock.now.Add(3 * 24 * time.Hour)
	later, err := f.svc.CheckIn(context.Background(), f.userID, goodDayMetrics())
	require.NoError(t, err)

	assert.Equal(t, 1, later.State.RejuvenationStreakDays, "gap restarts the streak at one")
	assert.Equal(t, 2, later.State.TotalRejuvenationDays)
}

func TestCheckInNotOnboarded(t *testing.T) {
	t.Parallel()

	svc := service.NewCheckInService(nil,
		mocks.NewMemoryEntryStore(), mocks.NewMemoryProfileStore(),
		bioage.NewDefaultService(), juneClock, nil)

	_, err := svc.CheckIn(context.Background(), uuid.New(), goodDayMetrics())
	assert.ErrorIs(t, err, service.ErrNotOnboarded)
}

func TestCheckInAppendFailureDoesNotPersistState(t *testing.T) {
	t.Parallel()
	f := newCheckInFixture(t)

	before, err := f.profiles.GetByUserID(context.Background(), f.userID)
	require.NoError(t, err)

	f.entries.AppendErr = errors.New("disk full")
	_, err = f.svc.CheckIn(context.Background(), f.userID, goodDayMetrics())
	require.Error(t, err)

	after, err := f.profiles.GetByUserID(context.Background(), f.userID)
	require.NoError(t, err)
	assert.Equal(t, before.State, after.State)
}

func TestCheckInCoercesMalformedMetrics(t *testing.T) {
	t.Parallel()
	f := newCheckInFixture(t)

	metrics := goodDayMetrics()
	metrics.Steps = -100
	metrics.StressLevel = 99

	entry, err := f.svc.CheckIn(context.Background(), f.userID, metrics)
	require.NoError(t, err, "malformed numbers coerce, they never fail a check-in")
	assert.NotNil(t, entry)
}
