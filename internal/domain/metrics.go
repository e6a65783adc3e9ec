package domain

import (
	"math"

	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

// DailyMetrics is one day's worth of health measurements, keyed by the
// calendar day in the user's timezone. A metrics snapshot is immutable once
// it has been scored into an Entry.
type DailyMetrics struct {
	Day             daykey.Key `json:"day"`
	SleepHours      float64    `json:"sleep_hours"`
	Steps           int        `json:"steps"`
	VigorousMinutes int        `json:"vigorous_minutes"`
	ProcessedFood   float64    `json:"processed_food"` // 0 (whole foods) .. 10 (mostly processed)
	AlcoholUnits    float64    `json:"alcohol_units"`
	StressLevel     float64    `json:"stress_level"` // 0 (calm) .. 10 (overwhelmed)
	LateCaffeine    bool       `json:"late_caffeine"`
	LateScreen      bool       `json:"late_screen"`
	BedtimeHour     float64    `json:"bedtime_hour"` // hour of day, 0..24
}

// Plausible upper bounds for metric coercion. Values beyond these are treated
// as input noise rather than rejected, so a check-in always scores.
const (
	maxSleepHours      = 24
	maxSteps           = 200000
	maxVigorousMinutes = 24 * 60
	maxProcessedFood   = 10
	maxAlcoholUnits    = 50
	maxStressLevel     = 10
	maxBedtimeHour     = 24
)

// Normalized returns a copy with every numeric field coerced into its
// plausible range. Non-finite or negative values collapse to zero. Scoring
// downstream never fails on malformed numbers; a logged-in user's check-in
// must always produce a result.
func (m DailyMetrics) Normalized() DailyMetrics {
	out := m
	out.SleepHours = coerce(m.SleepHours, maxSleepHours)
	out.Steps = coerceInt(m.Steps, maxSteps)
	out.VigorousMinutes = coerceInt(m.VigorousMinutes, maxVigorousMinutes)
	out.ProcessedFood = coerce(m.ProcessedFood, maxProcessedFood)
	out.AlcoholUnits = coerce(m.AlcoholUnits, maxAlcoholUnits)
	out.StressLevel = coerce(m.StressLevel, maxStressLevel)
	out.BedtimeHour = coerce(m.BedtimeHour, maxBedtimeHour)
	return out
}

func coerce(v, max float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > max {
		return 0
	}
	return v
}

func coerceInt(v, max int) int {
	if v < 0 || v > max {
		return 0
	}
	return v
}
