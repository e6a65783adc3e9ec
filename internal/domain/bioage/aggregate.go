package bioage

import (
	"math"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

// DisplayDelta converts an internal signed delta to its external
// representation. Internally, positive delta years mean aging and negative
// mean rejuvenation; every externally reported value inverts that sign so
// that positive reads as progress. This is the only place the inversion
// lives — callers must never inline a negation.
func DisplayDelta(internalDeltaYears float64) float64 {
	return -internalDeltaYears
}

// DayBucket is one calendar day in an aggregated series. Value is nil when
// no check-in happened that day — absence is distinct from a zero change and
// must never be reported as 0.
type DayBucket struct {
	Day   daykey.Key `json:"day"`
	Value *float64   `json:"value"`
}

// MonthBucket is one calendar month in an aggregated series. Value is the
// net displayed delta for the month, nil when the month holds no check-ins.
// AvgPerCheckIn is the displayed average delta per check-in for the month.
type MonthBucket struct {
	Month         string   `json:"month"`
	Value         *float64 `json:"value"`
	AvgPerCheckIn *float64 `json:"avg_per_check_in"`
}

// Summary describes a range of entry history together with lifetime context.
// All delta fields are externally signed (positive = rejuvenation).
type Summary struct {
	// NetLifetimeDeltaYears is the baseline offset plus every applied daily
	// delta, sign-inverted for display.
	NetLifetimeDeltaYears float64 `json:"net_lifetime_delta_years"`

	// TotalRejuvenationYears and TotalAgingYears accumulate the magnitudes
	// of negative and positive internal deltas separately over the lifetime.
	TotalRejuvenationYears float64 `json:"total_rejuvenation_years"`
	TotalAgingYears        float64 `json:"total_aging_years"`

	// CheckInCount is scoped to the queried range.
	CheckInCount int `json:"check_in_count"`

	// AvgDeltaPerCheckIn is the displayed average daily delta across the
	// queried range, nil when the range holds no check-ins.
	AvgDeltaPerCheckIn *float64 `json:"avg_delta_per_check_in,omitempty"`
}

// AggregateDays buckets entries into the enumerated calendar days, including
// empty buckets. Entries outside the enumerated days are ignored; days carry
// the displayed (sign-inverted) delta of their single check-in.
func AggregateDays(entries []domain.Entry, days []daykey.Key) []DayBucket {
	byDay := make(map[daykey.Key]float64, len(entries))
	for _, e := range entries {
		byDay[e.Day] = DisplayDelta(e.Result.DeltaYears)
	}

	buckets := make([]DayBucket, 0, len(days))
	for _, day := range days {
		bucket := DayBucket{Day: day}
		if v, ok := byDay[day]; ok {
			rounded := round2(v)
			bucket.Value = &rounded
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// AggregateMonths buckets entries into the enumerated "2006-01" months,
// including empty buckets. Each month reports the net displayed delta and
// the displayed average delta per check-in.
func AggregateMonths(entries []domain.Entry, months []string) []MonthBucket {
	sums := make(map[string]float64, len(months))
	counts := make(map[string]int, len(months))
	for _, e := range entries {
		month := e.Day.MonthKey()
		sums[month] += e.Result.DeltaYears
		counts[month]++
	}

	buckets := make([]MonthBucket, 0, len(months))
	for _, month := range months {
		bucket := MonthBucket{Month: month}
		if n := counts[month]; n > 0 {
			net := round2(DisplayDelta(sums[month]))
			avg := round2(DisplayDelta(sums[month] / float64(n)))
			bucket.Value = &net
			bucket.AvgPerCheckIn = &avg
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}

// Summarize builds the range summary. rangeEntries are the check-ins within
// the queried calendar range; allEntries is the full lifetime history used
// for the accumulated magnitudes. The lifetime net delta also folds in the
// onboarding baseline offset.
func Summarize(state domain.AgeState, rangeEntries, allEntries []domain.Entry) Summary {
	var rejuvenation, aging float64
	for _, e := range allEntries {
		if e.Result.DeltaYears < 0 {
			rejuvenation += math.Abs(e.Result.DeltaYears)
		} else {
			aging += e.Result.DeltaYears
		}
	}

	// By the running-sum invariant this equals the baseline offset plus
	// every applied daily delta.
	lifetimeNet := state.CurrentBiologicalAgeYears - state.ChronologicalAgeYears

	summary := Summary{
		NetLifetimeDeltaYears:  round2(DisplayDelta(lifetimeNet)),
		TotalRejuvenationYears: round2(rejuvenation),
		TotalAgingYears:        round2(aging),
		CheckInCount:           len(rangeEntries),
	}

	if len(rangeEntries) > 0 {
		var sum float64
		for _, e := range rangeEntries {
			sum += e.Result.DeltaYears
		}
		avg := round2(DisplayDelta(sum / float64(len(rangeEntries))))
		summary.AvgDeltaPerCheckIn = &avg
	}

	return summary
}
