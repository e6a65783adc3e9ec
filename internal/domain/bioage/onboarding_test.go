package bioage

import (
	"math"
	"testing"
)

func allAnswers(v float64) OnboardingAnswers {
	return OnboardingAnswers{
		Sleep:             v,
		MovementFrequency: v,
		MovementIntensity: v,
		MetabolicEnergy:   v,
		MetabolicWeight:   v,
		MetabolicAppetite: v,
		Nutrition:         v,
		StressLoad:        v,
		StressRecovery:    v,
		StressMood:        v,
	}
}

func TestDefaultCategoryWeightsSumToOne(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	var sum float64
	for _, w := range params.CategoryWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("Expected category weights to sum to 1, got %v", sum)
	}
}

func TestBAOYears(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		answers  OnboardingAnswers
		expected float64
	}{
		{
			name:     "all answers at most favorable extreme",
			answers:  allAnswers(1),
			expected: -params.MaxOffsetYears,
		},
		{
			name:     "all answers at least favorable extreme",
			answers:  allAnswers(-1),
			expected: params.MaxOffsetYears,
		},
		{
			name:     "neutral answers produce zero offset",
			answers:  allAnswers(0),
			expected: 0,
		},
		{
			name: "mixed answers weight categories correctly",
			answers: OnboardingAnswers{
				Sleep: 1, // sleep category alone: 0.25 weight
			},
			expected: -0.25 * params.MaxOffsetYears,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BAOYears(tc.answers, params)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Expected BAO %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestBaselineBiologicalAge(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	// Most favorable extreme at chronological age 40 pins the baseline at
	// exactly 40 minus the maximum offset.
	baseline := BaselineBiologicalAge(40, allAnswers(1), params)
	expected := 40 - params.MaxOffsetYears
	if math.Abs(baseline-expected) > 1e-9 {
		t.Errorf("Expected baseline %v, got %v", expected, baseline)
	}
}

func TestBAOYearsNeverExceedsClamp(t *testing.T) {
	t.Parallel()

	// Even with exaggerated weights the offset must stay inside the bound.
	params := NewParams(ParamsConfig{
		SleepWeight:     1,
		MovementWeight:  1,
		MetabolicWeight: 1,
		NutritionWeight: 1,
		StressWeight:    1,
	})

	if got := BAOYears(allAnswers(1), params); got < -params.MaxOffsetYears {
		t.Errorf("BAO %v exceeds clamp %v", got, -params.MaxOffsetYears)
	}
	if got := BAOYears(allAnswers(-1), params); got > params.MaxOffsetYears {
		t.Errorf("BAO %v exceeds clamp %v", got, params.MaxOffsetYears)
	}
}

func TestOnboardingAnswersValidate(t *testing.T) {
	t.Parallel()

	if err := allAnswers(1).Validate(); err != nil {
		t.Errorf("Expected extreme answers to validate, got %v", err)
	}

	bad := allAnswers(0)
	bad.Nutrition = 1.5
	if err := bad.Validate(); err == nil {
		t.Error("Expected out-of-range answer to fail validation")
	}
}
