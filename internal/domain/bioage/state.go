package bioage

import (
	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

// NextState advances an AgeState by one applied daily result, following the
// immutable update pattern: the previous state is copied, never modified.
//
// The current biological age is an incremental running sum — previous value
// plus this delta — and must always equal baseline plus the sum of every
// applied delta. Aging debt is recomputed from the new current age and stays
// signed; it is never clamped at zero.
func NextState(
	prev domain.AgeState,
	result domain.ScoreResult,
	streaks StreakCounters,
	today daykey.Key,
) domain.AgeState {
	next := prev

	next.CurrentBiologicalAgeYears = prev.CurrentBiologicalAgeYears + result.DeltaYears
	next.AgingDebtYears = next.CurrentBiologicalAgeYears - next.ChronologicalAgeYears

	next.RejuvenationStreakDays = streaks.RejuvenationStreakDays
	next.AccelerationStreakDays = streaks.AccelerationStreakDays
	next.TotalRejuvenationDays = streaks.TotalRejuvenationDays
	next.TotalAccelerationDays = streaks.TotalAccelerationDays

	day := today
	next.LastCheckInDay = &day

	return next
}
