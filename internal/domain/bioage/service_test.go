package bioage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

func daykeyOf(s string) daykey.Key {
	return daykey.Key(s)
}

func TestAdvanceSequence(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	// Three consecutive daily deltas from a 40.0 baseline must walk the
	// running sum through 39.95, 39.92, 39.94 with streaks 1, 2, 0.
	state := domain.NewAgeState(40, 40)

	steps := []struct {
		day            string
		delta          float64
		expectedAge    float64
		expectedStreak int
	}{
		{"2025-06-02", -0.05, 39.95, 1},
		{"2025-06-03", -0.03, 39.92, 2},
		{"2025-06-04", 0.02, 39.94, 0},
	}

	for _, step := range steps {
		next, anomaly, err := svc.Advance(state, domain.ScoreResult{DeltaYears: step.delta}, daykeyOf(step.day))
		require.NoError(t, err)
		require.Nil(t, anomaly)

		assert.InDelta(t, step.expectedAge, next.CurrentBiologicalAgeYears, 1e-9, "age after %s", step.day)
		assert.Equal(t, step.expectedStreak, next.RejuvenationStreakDays, "rejuvenation streak after %s", step.day)
		state = next
	}

	assert.Equal(t, 1, state.AccelerationStreakDays)
	assert.Equal(t, 2, state.TotalRejuvenationDays)
	assert.Equal(t, 1, state.TotalAccelerationDays)
}

func TestAdvanceRunningSumInvariant(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	state := domain.NewAgeState(45, 43.5)
	deltas := []float64{-0.05, 0.1, -0.2, 0.03, -0.01, 0, 0.15, -0.3}

	var sum float64
	day := daykeyOf("2025-01-01")
	for _, delta := range deltas {
		next, _, err := svc.Advance(state, domain.ScoreResult{DeltaYears: delta}, day)
		require.NoError(t, err)
		sum += delta
		state = next
		var errAdd error
		day, errAdd = day.AddDays(1)
		require.NoError(t, errAdd)
	}

	assert.InDelta(t, 43.5+sum, state.CurrentBiologicalAgeYears, 1e-9,
		"current age must equal baseline plus the sum of applied deltas")
	assert.InDelta(t, state.CurrentBiologicalAgeYears-45, state.AgingDebtYears, 1e-9)
}

func TestAdvanceSignedDebt(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	// Debt goes negative when the user is biologically younger; it is never
	// clamped at zero.
	state := domain.NewAgeState(40, 40)
	next, _, err := svc.Advance(state, domain.ScoreResult{DeltaYears: -0.25}, daykeyOf("2025-06-02"))
	require.NoError(t, err)
	assert.Less(t, next.AgingDebtYears, 0.0)
	assert.InDelta(t, -0.25, next.AgingDebtYears, 1e-9)
}

func TestAdvanceAnomalyKeepsStreaksAndMarker(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	state := domain.NewAgeState(40, 40)
	first, anomaly, err := svc.Advance(state, domain.ScoreResult{DeltaYears: -0.05}, daykeyOf("2025-06-05"))
	require.NoError(t, err)
	require.Nil(t, anomaly)

	// Clock skew: the next apply targets an earlier calendar day.
	skewed, anomaly, err := svc.Advance(first, domain.ScoreResult{DeltaYears: -0.05}, daykeyOf("2025-06-02"))
	require.NoError(t, err)
	require.NotNil(t, anomaly)
	assert.Equal(t, AnomalyNegativeGap, anomaly.Kind)

	// Streaks and the last check-in marker are frozen; the delta still
	// applies so the running sum holds for the appended entry.
	assert.Equal(t, first.RejuvenationStreakDays, skewed.RejuvenationStreakDays)
	assert.Equal(t, first.TotalRejuvenationDays, skewed.TotalRejuvenationDays)
	require.NotNil(t, skewed.LastCheckInDay)
	assert.Equal(t, *first.LastCheckInDay, *skewed.LastCheckInDay)
	assert.InDelta(t, first.CurrentBiologicalAgeYears-0.05, skewed.CurrentBiologicalAgeYears, 1e-9)
}

func TestBaselineAgeRejectsInvalidAnswers(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	bad := allAnswers(0)
	bad.Sleep = -2
	_, err := svc.BaselineAge(40, bad)
	assert.ErrorIs(t, err, ErrAnswerOutOfRange)
}

func TestNewServiceWithParams(t *testing.T) {
	t.Parallel()

	_, err := NewServiceWithParams(nil)
	assert.ErrorIs(t, err, ErrNilParams)

	svc, err := NewServiceWithParams(NewParams(ParamsConfig{DailyDeltaCapYears: 0.1}))
	require.NoError(t, err)

	result := svc.Score(badDay())
	assert.LessOrEqual(t, math.Abs(result.DeltaYears), 0.1)
}
