package domain_test

import (
	"math"
	"testing"

	"github.com/vitalage/bioage-api/internal/domain"
)

func TestDailyMetricsNormalized(t *testing.T) {
	t.Parallel()

	metrics := domain.DailyMetrics{
		Day:             "2025-06-02",
		SleepHours:      math.NaN(),
		Steps:           -500,
		VigorousMinutes: 10_000,
		ProcessedFood:   -1,
		AlcoholUnits:    math.Inf(1),
		StressLevel:     42,
		BedtimeHour:     -3,
		LateCaffeine:    true,
	}

	got := metrics.Normalized()

	if got.SleepHours != 0 {
		t.Errorf("Expected NaN sleep hours to coerce to 0, got %v", got.SleepHours)
	}
	if got.Steps != 0 {
		t.Errorf("Expected negative steps to coerce to 0, got %v", got.Steps)
	}
	if got.VigorousMinutes != 0 {
		t.Errorf("Expected out-of-range vigorous minutes to coerce to 0, got %v", got.VigorousMinutes)
	}
	if got.AlcoholUnits != 0 {
		t.Errorf("Expected infinite alcohol units to coerce to 0, got %v", got.AlcoholUnits)
	}
	if got.StressLevel != 0 {
		t.Errorf("Expected out-of-range stress to coerce to 0, got %v", got.StressLevel)
	}
	if got.BedtimeHour != 0 {
		t.Errorf("Expected negative bedtime hour to coerce to 0, got %v", got.BedtimeHour)
	}
	if !got.LateCaffeine {
		t.Error("Expected boolean flags to pass through untouched")
	}
	if got.Day != metrics.Day {
		t.Errorf("Expected day to pass through, got %q", got.Day)
	}
}
