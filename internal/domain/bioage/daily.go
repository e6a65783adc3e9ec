package bioage

import (
	"github.com/vitalage/bioage-api/internal/domain"
)

// Band thresholds for daily metric scoring. Bands within a metric are
// mutually exclusive and evaluated top-down in the order written here, so the
// first matching band wins. These cutoffs are fixed; tuning happens through
// Params (clamps and the points-to-years transform), not by editing bands per
// deployment.
const (
	sleepOptimalMin = 7.0
	sleepOptimalMax = 9.0
	sleepNearMin    = 6.0
	sleepNearMax    = 10.0
	sleepShortMin   = 5.0

	stepsHigh     = 12000
	stepsGood     = 8000
	stepsModerate = 5000

	vigorousFull    = 30
	vigorousPartial = 15

	processedFoodClean    = 2.0
	processedFoodModerate = 5.0
	processedFoodHeavy    = 7.0

	alcoholModerate = 2.0

	stressLow      = 3.0
	stressModerate = 6.0
	stressHigh     = 8.0

	bedtimeEarlyMin = 21.0
	bedtimeEarlyMax = 23.0
	bedtimeLateMax  = 24.0
	bedtimePreMin   = 20.0
)

// Flat point penalties for the boolean evening flags.
const (
	lateCaffeinePenalty = -1.0
	lateScreenPenalty   = -1.0
)

// bandHit is one band's contribution to the daily score.
type bandHit struct {
	points float64
	reason string
}

// ScoreDaily evaluates one day's metrics against the fixed threshold bands
// and produces the score, the bounded daily delta, and the ordered reason
// tags. Metrics are scored independently of each other and of history; the
// function is pure and deterministic, and it never fails: the metrics are
// normalized first so malformed numbers score as absent (zero).
func ScoreDaily(metrics domain.DailyMetrics, params *Params) domain.ScoreResult {
	m := metrics.Normalized()

	hits := []bandHit{
		scoreSleep(m.SleepHours),
		scoreSteps(m.Steps),
		scoreVigorous(m.VigorousMinutes),
		scoreProcessedFood(m.ProcessedFood),
		scoreAlcohol(m.AlcoholUnits),
		scoreStress(m.StressLevel),
		scoreBedtime(m.BedtimeHour),
	}
	if m.LateCaffeine {
		hits = append(hits, bandHit{lateCaffeinePenalty, "caffeine:late"})
	}
	if m.LateScreen {
		hits = append(hits, bandHit{lateScreenPenalty, "screen:late"})
	}

	var score float64
	reasons := make([]string, 0, len(hits))
	for _, hit := range hits {
		if hit.points == 0 {
			continue
		}
		score += hit.points
		reasons = append(reasons, hit.reason)
	}
	score = clamp(score, params.ScoreMin, params.ScoreMax)

	// Good behavior (positive score) reduces biological age.
	delta := clamp(-score*params.YearsPerPoint, -params.DailyDeltaCapYears, params.DailyDeltaCapYears)

	return domain.ScoreResult{
		Score:      score,
		DeltaYears: delta,
		Reasons:    reasons,
	}
}

func scoreSleep(hours float64) bandHit {
	switch {
	case hours >= sleepOptimalMin && hours <= sleepOptimalMax:
		return bandHit{2, "sleep:optimal"}
	case hours >= sleepNearMin && hours <= sleepNearMax:
		return bandHit{1, "sleep:near_optimal"}
	case hours >= sleepShortMin:
		return bandHit{-1, "sleep:short"}
	default:
		return bandHit{-2, "sleep:poor"}
	}
}

func scoreSteps(steps int) bandHit {
	switch {
	case steps >= stepsHigh:
		return bandHit{2, "steps:high"}
	case steps >= stepsGood:
		return bandHit{1, "steps:good"}
	case steps >= stepsModerate:
		return bandHit{0, "steps:moderate"}
	default:
		return bandHit{-1, "steps:low"}
	}
}

func scoreVigorous(minutes int) bandHit {
	switch {
	case minutes >= vigorousFull:
		return bandHit{2, "vigorous:full"}
	case minutes >= vigorousPartial:
		return bandHit{1, "vigorous:partial"}
	default:
		return bandHit{0, "vigorous:none"}
	}
}

func scoreProcessedFood(level float64) bandHit {
	switch {
	case level <= processedFoodClean:
		return bandHit{1, "food:clean"}
	case level <= processedFoodModerate:
		return bandHit{0, "food:moderate"}
	case level <= processedFoodHeavy:
		return bandHit{-1, "food:processed"}
	default:
		return bandHit{-2, "food:heavily_processed"}
	}
}

func scoreAlcohol(units float64) bandHit {
	switch {
	case units == 0:
		return bandHit{1, "alcohol:none"}
	case units <= alcoholModerate:
		return bandHit{-1, "alcohol:moderate"}
	default:
		return bandHit{-2, "alcohol:heavy"}
	}
}

func scoreStress(level float64) bandHit {
	switch {
	case level <= stressLow:
		return bandHit{1, "stress:low"}
	case level <= stressModerate:
		return bandHit{0, "stress:moderate"}
	case level <= stressHigh:
		return bandHit{-1, "stress:high"}
	default:
		return bandHit{-2, "stress:severe"}
	}
}

func scoreBedtime(hour float64) bandHit {
	switch {
	case hour >= bedtimeEarlyMin && hour <= bedtimeEarlyMax:
		return bandHit{1, "bedtime:consistent"}
	case hour > bedtimeEarlyMax && hour <= bedtimeLateMax:
		return bandHit{0, "bedtime:late"}
	case hour >= bedtimePreMin && hour < bedtimeEarlyMin:
		return bandHit{0, "bedtime:early"}
	default:
		return bandHit{-1, "bedtime:irregular"}
	}
}
