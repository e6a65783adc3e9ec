package bioage

import (
	"math"
	"reflect"
	"testing"

	"github.com/vitalage/bioage-api/internal/domain"
)

// goodDay is a day that lands in the favorable band of every metric.
func goodDay() domain.DailyMetrics {
	return domain.DailyMetrics{
		Day:             "2025-06-02",
		SleepHours:      8,
		Steps:           13000,
		VigorousMinutes: 40,
		ProcessedFood:   1,
		AlcoholUnits:    0,
		StressLevel:     2,
		BedtimeHour:     22,
	}
}

// badDay lands in the worst band of every metric and trips both flags.
func badDay() domain.DailyMetrics {
	return domain.DailyMetrics{
		Day:             "2025-06-02",
		SleepHours:      4,
		Steps:           1200,
		VigorousMinutes: 0,
		ProcessedFood:   9,
		AlcoholUnits:    6,
		StressLevel:     9.5,
		LateCaffeine:    true,
		LateScreen:      true,
		BedtimeHour:     2.5,
	}
}

func TestScoreDailyBands(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name          string
		metrics       domain.DailyMetrics
		expectedScore float64
	}{
		{
			name:          "all favorable bands clamp at score maximum",
			metrics:       goodDay(),
			expectedScore: params.ScoreMax, // raw 10 touches the clamp exactly
		},
		{
			name:          "all unfavorable bands clamp at score minimum",
			metrics:       badDay(),
			expectedScore: params.ScoreMin, // raw -12 clamps to -10
		},
		{
			name: "moderate day scores near zero",
			metrics: domain.DailyMetrics{
				Day:           "2025-06-02",
				SleepHours:    6.5, // +1
				Steps:         6000,
				ProcessedFood: 4,
				AlcoholUnits:  1, // -1
				StressLevel:   5,
				BedtimeHour:   23.5,
			},
			expectedScore: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ScoreDaily(tc.metrics, params)
			if result.Score != tc.expectedScore {
				t.Errorf("Expected score %v, got %v (reasons %v)", tc.expectedScore, result.Score, result.Reasons)
			}
		})
	}
}

func TestScoreDailyDeltaBounded(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	for _, metrics := range []domain.DailyMetrics{goodDay(), badDay()} {
		result := ScoreDaily(metrics, params)
		if math.Abs(result.DeltaYears) > params.DailyDeltaCapYears {
			t.Errorf("Delta %v exceeds cap %v", result.DeltaYears, params.DailyDeltaCapYears)
		}
	}
}

func TestScoreDailyDeltaSignOpposesScore(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	good := ScoreDaily(goodDay(), params)
	if good.Score <= 0 || good.DeltaYears >= 0 {
		t.Errorf("Good day should rejuvenate: score=%v delta=%v", good.Score, good.DeltaYears)
	}

	bad := ScoreDaily(badDay(), params)
	if bad.Score >= 0 || bad.DeltaYears <= 0 {
		t.Errorf("Bad day should age: score=%v delta=%v", bad.Score, bad.DeltaYears)
	}
}

func TestScoreDailyDeterministic(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	first := ScoreDaily(badDay(), params)
	second := ScoreDaily(badDay(), params)

	if first.Score != second.Score || first.DeltaYears != second.DeltaYears {
		t.Errorf("Scoring is not deterministic: %+v vs %+v", first, second)
	}
	if !reflect.DeepEqual(first.Reasons, second.Reasons) {
		t.Errorf("Reason order is not stable: %v vs %v", first.Reasons, second.Reasons)
	}
}

func TestScoreDailyCoercesMalformedInput(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	metrics := domain.DailyMetrics{
		Day:           "2025-06-02",
		SleepHours:    math.NaN(),
		Steps:         -500,
		ProcessedFood: math.Inf(1),
		AlcoholUnits:  -3,
		StressLevel:   99,
		BedtimeHour:   -1,
	}

	// Must not panic and must produce a bounded result.
	result := ScoreDaily(metrics, params)
	if math.IsNaN(result.Score) || math.IsNaN(result.DeltaYears) {
		t.Fatalf("Coercion failed, got NaN in result %+v", result)
	}
	if result.Score < params.ScoreMin || result.Score > params.ScoreMax {
		t.Errorf("Score %v outside [%v, %v]", result.Score, params.ScoreMin, params.ScoreMax)
	}
}

func TestScoreDailyReasonTags(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	result := ScoreDaily(goodDay(), params)
	expected := []string{
		"sleep:optimal",
		"steps:high",
		"vigorous:full",
		"food:clean",
		"alcohol:none",
		"stress:low",
		"bedtime:consistent",
	}
	if !reflect.DeepEqual(result.Reasons, expected) {
		t.Errorf("Expected reasons %v, got %v", expected, result.Reasons)
	}
}
