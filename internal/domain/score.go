package domain

// ScoreResult is the output of scoring one day's metrics.
//
// Score is an explainability artifact only: it is a signed points total in a
// bounded range whose sole purpose is to make DeltaYears traceable to the
// contributing bands. DeltaYears is the single authoritative value for state
// transitions. Positive DeltaYears ages the user; negative rejuvenates.
// External representations invert this sign (see bioage.DisplayDelta).
type ScoreResult struct {
	Score      float64  `json:"score"`
	DeltaYears float64  `json:"delta_years"`
	Reasons    []string `json:"reasons"`
}
