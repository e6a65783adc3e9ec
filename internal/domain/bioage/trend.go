package bioage

import (
	"math"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

// Supported trend windows, in days.
const (
	WindowWeek  = 7
	WindowMonth = 30
	WindowYear  = 365
)

// minProjectionDeltas is the qualifying-delta count below which the yearly
// window falls back to a projection instead of a direct value.
const minProjectionDeltas = 7

// maxProjectionSamples caps how many recent qualifying deltas feed the
// yearly projection average.
const maxProjectionSamples = 30

// TrendPoint is one chart sample: the biological age at the end of a day.
type TrendPoint struct {
	Day           daykey.Key `json:"day"`
	BiologicalAge float64    `json:"biological_age"`
}

// Trend is the bounded-window trend over a user's entry history.
//
// Value is nil when no meaningful figure can be computed (fewer than two
// entries, or a yearly projection with no qualifying deltas). Available is
// true only when the full window is covered by history; a partial best-effort
// value is still returned with Available=false. Projection marks the yearly
// fallback, where Value extrapolates the recent average daily delta across a
// full year rather than measuring one.
type Trend struct {
	Value      *float64     `json:"value"`
	Available  bool         `json:"available"`
	Projection bool         `json:"projection"`
	Points     []TrendPoint `json:"points"`
}

// AnalyzeTrend computes the biological-age trend over the trailing window of
// windowDays calendar entries, downsampled to at most samples chart points.
// Entries must be in ascending day order. All reported values are rounded to
// two decimals, half away from zero.
func AnalyzeTrend(entries []domain.Entry, windowDays, samples int, params *Params) Trend {
	trend := Trend{Points: chartPoints(entries, windowDays, samples)}

	if len(entries) >= windowDays {
		v := round2(age(entries[len(entries)-1]) - age(entries[len(entries)-windowDays]))
		trend.Value = &v
		trend.Available = true
		return trend
	}

	// The yearly window projects forward when the history holds too few
	// informative deltas to measure anything directly.
	if windowDays == WindowYear {
		if qualifying := qualifyingDeltas(entries, params); len(qualifying) < minProjectionDeltas {
			trend.Projection = true
			if len(qualifying) > 0 {
				n := len(qualifying)
				if n > maxProjectionSamples {
					qualifying = qualifying[n-maxProjectionSamples:]
				}
				v := round2(mean(qualifying) * WindowYear)
				trend.Value = &v
			}
			return trend
		}
	}

	// Best-effort partial trend over whatever history exists.
	if len(entries) >= 2 {
		v := round2(age(entries[len(entries)-1]) - age(entries[0]))
		trend.Value = &v
	}
	return trend
}

// qualifyingDeltas returns, in order, the daily deltas that are non-zero
// beyond the neutral epsilon.
func qualifyingDeltas(entries []domain.Entry, params *Params) []float64 {
	deltas := make([]float64, 0, len(entries))
	for _, e := range entries {
		if math.Abs(e.Result.DeltaYears) > params.NeutralEpsilon {
			deltas = append(deltas, e.Result.DeltaYears)
		}
	}
	return deltas
}

// chartPoints downsamples the trailing window of entries to at most samples
// evenly spaced points, always keeping the most recent entry.
func chartPoints(entries []domain.Entry, windowDays, samples int) []TrendPoint {
	window := entries
	if len(window) > windowDays {
		window = window[len(window)-windowDays:]
	}
	if len(window) == 0 {
		return nil
	}
	if samples <= 0 || samples >= len(window) {
		points := make([]TrendPoint, 0, len(window))
		for _, e := range window {
			points = append(points, TrendPoint{Day: e.Day, BiologicalAge: round2(age(e))})
		}
		return points
	}

	points := make([]TrendPoint, 0, samples)
	step := float64(len(window)-1) / float64(samples-1)
	for i := 0; i < samples; i++ {
		e := window[int(math.Round(float64(i)*step))]
		points = append(points, TrendPoint{Day: e.Day, BiologicalAge: round2(age(e))})
	}
	return points
}

func age(e domain.Entry) float64 {
	return e.State.CurrentBiologicalAgeYears
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
