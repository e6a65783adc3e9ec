package bioage

import (
	"errors"
	"fmt"
)

// Common validation errors for onboarding answers.
var (
	ErrAnswerOutOfRange = errors.New("onboarding answer out of range")
)

// answerMin and answerMax bound each normalized onboarding answer.
// +1 is the most favorable extreme, -1 the least favorable.
const (
	answerMin = -1.0
	answerMax = 1.0
)

// OnboardingAnswers are the ten normalized questionnaire answers, each in
// [-1, 1]. The API layer is responsible for mapping raw questionnaire options
// onto this scale; the engine never sees raw request bodies.
type OnboardingAnswers struct {
	Sleep float64 `json:"sleep"`

	MovementFrequency float64 `json:"movement_frequency"`
	MovementIntensity float64 `json:"movement_intensity"`

	MetabolicEnergy   float64 `json:"metabolic_energy"`
	MetabolicWeight   float64 `json:"metabolic_weight"`
	MetabolicAppetite float64 `json:"metabolic_appetite"`

	Nutrition float64 `json:"nutrition"`

	StressLoad     float64 `json:"stress_load"`
	StressRecovery float64 `json:"stress_recovery"`
	StressMood     float64 `json:"stress_mood"`
}

// Validate checks that every answer is within the normalized range.
func (a OnboardingAnswers) Validate() error {
	fields := map[string]float64{
		"sleep":              a.Sleep,
		"movement_frequency": a.MovementFrequency,
		"movement_intensity": a.MovementIntensity,
		"metabolic_energy":   a.MetabolicEnergy,
		"metabolic_weight":   a.MetabolicWeight,
		"metabolic_appetite": a.MetabolicAppetite,
		"nutrition":          a.Nutrition,
		"stress_load":        a.StressLoad,
		"stress_recovery":    a.StressRecovery,
		"stress_mood":        a.StressMood,
	}
	for name, v := range fields {
		if v < answerMin || v > answerMax {
			return fmt.Errorf("%w: %s=%v", ErrAnswerOutOfRange, name, v)
		}
	}
	return nil
}

// categoryScores collapses the ten answers into the five weighted categories.
// Movement averages its two answers; metabolic and stress average three each.
func categoryScores(a OnboardingAnswers) map[Category]float64 {
	return map[Category]float64{
		CategorySleep:     a.Sleep,
		CategoryMovement:  (a.MovementFrequency + a.MovementIntensity) / 2,
		CategoryMetabolic: (a.MetabolicEnergy + a.MetabolicWeight + a.MetabolicAppetite) / 3,
		CategoryNutrition: a.Nutrition,
		CategoryStress:    (a.StressLoad + a.StressRecovery + a.StressMood) / 3,
	}
}

// TotalScore computes the weighted onboarding total, clamped to [-1, 1].
// With default weights the clamp is a safety net: weights sum to 1 and each
// category is already within [-1, 1].
func TotalScore(a OnboardingAnswers, params *Params) float64 {
	var total float64
	for category, score := range categoryScores(a) {
		total += params.CategoryWeights[category] * score
	}
	return clamp(total, -1, 1)
}

// BAOYears converts the onboarding total into the Biological Age Offset.
// A favorable total (positive) produces a negative offset: the user starts
// biologically younger than their calendar age. The result is clamped to
// ±MaxOffsetYears and cannot exceed the bound even at all-extreme inputs.
func BAOYears(a OnboardingAnswers, params *Params) float64 {
	offset := -TotalScore(a, params) * params.MaxOffsetYears
	return clamp(offset, -params.MaxOffsetYears, params.MaxOffsetYears)
}

// BaselineBiologicalAge seeds the baseline from the chronological age and
// the onboarding answers. Pure; no side effects.
func BaselineBiologicalAge(chronologicalAgeYears float64, a OnboardingAnswers, params *Params) float64 {
	return chronologicalAgeYears + BAOYears(a, params)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
