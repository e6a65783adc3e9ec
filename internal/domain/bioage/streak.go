package bioage

import (
	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

// AnomalyKind classifies non-fatal streak calculation anomalies. Anomalies
// are reported to the caller for logging; they never abort a check-in and
// always leave the counters unchanged.
type AnomalyKind string

// Possible anomaly kinds.
const (
	// AnomalySameDay means the gap between check-ins was zero. The duplicate
	// guard upstream makes this unreachable in practice.
	AnomalySameDay AnomalyKind = "same_day"

	// AnomalyNegativeGap means today precedes the last check-in, which can
	// only happen under clock skew or a corrupted profile.
	AnomalyNegativeGap AnomalyKind = "negative_gap"
)

// Anomaly describes a streak transition that was skipped.
type Anomaly struct {
	Kind    AnomalyKind
	GapDays int
}

// StreakCounters bundles the four streak fields of AgeState so the
// transition function stays independent of the rest of the state.
type StreakCounters struct {
	RejuvenationStreakDays int
	AccelerationStreakDays int
	TotalRejuvenationDays  int
	TotalAccelerationDays  int
}

// CountersFrom extracts the streak counters from an AgeState.
func CountersFrom(state domain.AgeState) StreakCounters {
	return StreakCounters{
		RejuvenationStreakDays: state.RejuvenationStreakDays,
		AccelerationStreakDays: state.AccelerationStreakDays,
		TotalRejuvenationDays:  state.TotalRejuvenationDays,
		TotalAccelerationDays:  state.TotalAccelerationDays,
	}
}

// NextStreaks advances the streak counters for a check-in on today's
// calendar day, given the previous check-in day (nil for the first ever
// check-in) and the signed daily delta.
//
// Transition rules, on calendar-day gaps in the user's timezone:
//   - no prior check-in, or gap >= 2: the active streak restarts at 1 for a
//     non-neutral delta (never resumes at the old count, never resets to 0).
//   - gap == 1: a non-neutral delta extends the matching streak and resets
//     the opposite one; a neutral delta resets both.
//   - gap == 0 or gap < 0: counters are left unchanged and an Anomaly is
//     returned for logging.
//
// Deltas with magnitude below params.NeutralEpsilon count as neutral and
// never touch the lifetime totals.
func NextStreaks(
	prev StreakCounters,
	lastCheckIn *daykey.Key,
	today daykey.Key,
	deltaYears float64,
	params *Params,
) (StreakCounters, *Anomaly, error) {
	if lastCheckIn != nil {
		gap, err := daykey.GapDays(*lastCheckIn, today)
		if err != nil {
			return prev, nil, err
		}
		switch {
		case gap == 0:
			return prev, &Anomaly{Kind: AnomalySameDay, GapDays: gap}, nil
		case gap < 0:
			return prev, &Anomaly{Kind: AnomalyNegativeGap, GapDays: gap}, nil
		case gap == 1:
			return applyConsecutive(prev, deltaYears, params), nil, nil
		}
		// gap >= 2 falls through to the restart case
	}
	return applyRestart(prev, deltaYears, params), nil, nil
}

// applyConsecutive handles a check-in exactly one day after the previous one.
func applyConsecutive(prev StreakCounters, deltaYears float64, params *Params) StreakCounters {
	next := prev
	switch {
	case deltaYears < -params.NeutralEpsilon:
		next.RejuvenationStreakDays++
		next.AccelerationStreakDays = 0
		next.TotalRejuvenationDays++
	case deltaYears > params.NeutralEpsilon:
		next.AccelerationStreakDays++
		next.RejuvenationStreakDays = 0
		next.TotalAccelerationDays++
	default:
		next.RejuvenationStreakDays = 0
		next.AccelerationStreakDays = 0
	}
	return next
}

// applyRestart handles the first check-in ever and check-ins after a gap of
// two or more days, which are treated identically.
func applyRestart(prev StreakCounters, deltaYears float64, params *Params) StreakCounters {
	next := prev
	next.RejuvenationStreakDays = 0
	next.AccelerationStreakDays = 0
	switch {
	case deltaYears < -params.NeutralEpsilon:
		next.RejuvenationStreakDays = 1
		next.TotalRejuvenationDays++
	case deltaYears > params.NeutralEpsilon:
		next.AccelerationStreakDays = 1
		next.TotalAccelerationDays++
	}
	return next
}
