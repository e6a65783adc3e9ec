package domain

import (
	"errors"

	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

// Common validation errors for AgeState.
var (
	ErrNegativeStreak          = errors.New("streak counters cannot be negative")
	ErrConflictingStreaks      = errors.New("rejuvenation and acceleration streaks are mutually exclusive")
	ErrNegativeTotals          = errors.New("streak totals cannot be negative")
	ErrInvalidBiologicalAge    = errors.New("biological age must be positive")
	ErrInvalidChronologicalAge = errors.New("chronological age must be positive")
)

// AgeState is the per-user running biological-age state. It is created once
// at onboarding and advanced by exactly one calendar day per check-in.
//
// CurrentBiologicalAgeYears is maintained as an incremental running sum of
// baseline plus every applied delta, in chronological order; it is never
// recomputed from history on the hot path but must always equal that sum.
//
// AgingDebtYears is SIGNED: current minus chronological, negative when the
// user is biologically younger than their calendar age. It is never clamped.
type AgeState struct {
	ChronologicalAgeYears      float64 `json:"chronological_age_years"`
	BaselineBiologicalAgeYears float64 `json:"baseline_biological_age_years"`
	CurrentBiologicalAgeYears  float64 `json:"current_biological_age_years"`
	AgingDebtYears             float64 `json:"aging_debt_years"`

	// Active streaks are mutually exclusive: at most one is non-zero.
	RejuvenationStreakDays int `json:"rejuvenation_streak_days"`
	AccelerationStreakDays int `json:"acceleration_streak_days"`

	// Lifetime totals are monotonic.
	TotalRejuvenationDays int `json:"total_rejuvenation_days"`
	TotalAccelerationDays int `json:"total_acceleration_days"`

	// LastCheckInDay is nil until the first daily check-in is applied.
	LastCheckInDay *daykey.Key `json:"last_check_in_day,omitempty"`
}

// NewAgeState seeds the state at onboarding from the chronological age and
// the baseline produced by the onboarding scorer.
func NewAgeState(chronologicalAgeYears, baselineBiologicalAgeYears float64) AgeState {
	return AgeState{
		ChronologicalAgeYears:      chronologicalAgeYears,
		BaselineBiologicalAgeYears: baselineBiologicalAgeYears,
		CurrentBiologicalAgeYears:  baselineBiologicalAgeYears,
		AgingDebtYears:             baselineBiologicalAgeYears - chronologicalAgeYears,
	}
}

// Validate checks the AgeState invariants.
func (s AgeState) Validate() error {
	if s.ChronologicalAgeYears <= 0 {
		return ErrInvalidChronologicalAge
	}
	if s.BaselineBiologicalAgeYears <= 0 || s.CurrentBiologicalAgeYears <= 0 {
		return ErrInvalidBiologicalAge
	}
	if s.RejuvenationStreakDays < 0 || s.AccelerationStreakDays < 0 {
		return ErrNegativeStreak
	}
	if s.RejuvenationStreakDays > 0 && s.AccelerationStreakDays > 0 {
		return ErrConflictingStreaks
	}
	if s.TotalRejuvenationDays < 0 || s.TotalAccelerationDays < 0 {
		return ErrNegativeTotals
	}
	return nil
}
