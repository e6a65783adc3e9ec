package bioage

import (
	"errors"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

// Common errors.
var (
	ErrNilParams = errors.New("engine params cannot be nil")
)

// Scorer is the replaceable daily scoring policy. The state machine is
// formula-agnostic: it consumes whatever ScoreResult the configured Scorer
// produces and only trusts DeltaYears for state transitions.
type Scorer interface {
	// Score evaluates one day's metrics. Implementations must be pure and
	// must never fail: malformed numeric input is coerced, not rejected.
	Score(metrics domain.DailyMetrics) domain.ScoreResult
}

// Service bundles the engine operations behind one interface so callers
// depend on behavior, not on the band tables.
type Service interface {
	Scorer

	// BaselineAge computes the onboarding baseline biological age.
	BaselineAge(chronologicalAgeYears float64, answers OnboardingAnswers) (float64, error)

	// Advance applies one scored day to the previous state: streak
	// transition, running-sum update, signed debt recompute. The returned
	// anomaly, when non-nil, must be logged by the caller and never aborts.
	Advance(prev domain.AgeState, result domain.ScoreResult, today daykey.Key) (domain.AgeState, *Anomaly, error)

	// Params exposes the engine configuration for read-side consumers
	// (trend windows, neutral epsilon).
	Params() *Params
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates an engine service with default parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates an engine service with custom parameters.
func NewServiceWithParams(params *Params) (Service, error) {
	if params == nil {
		return nil, ErrNilParams
	}
	return &defaultService{params: params}, nil
}

// Score implements Scorer using the fixed threshold bands.
func (s *defaultService) Score(metrics domain.DailyMetrics) domain.ScoreResult {
	return ScoreDaily(metrics, s.params)
}

// BaselineAge implements Service.
func (s *defaultService) BaselineAge(chronologicalAgeYears float64, answers OnboardingAnswers) (float64, error) {
	if err := answers.Validate(); err != nil {
		return 0, err
	}
	return BaselineBiologicalAge(chronologicalAgeYears, answers, s.params), nil
}

// Advance implements Service.
func (s *defaultService) Advance(
	prev domain.AgeState,
	result domain.ScoreResult,
	today daykey.Key,
) (domain.AgeState, *Anomaly, error) {
	streaks, anomaly, err := NextStreaks(CountersFrom(prev), prev.LastCheckInDay, today, result.DeltaYears, s.params)
	if err != nil {
		return prev, nil, err
	}
	next := NextState(prev, result, streaks, today)
	if anomaly != nil {
		// Streak counters and the last check-in marker stay frozen on an
		// anomaly, but the delta still applies: the running-sum invariant
		// holds for every appended entry. The caller logs the anomaly and
		// processing continues.
		next.LastCheckInDay = prev.LastCheckInDay
	}
	return next, anomaly, nil
}

// Params implements Service.
func (s *defaultService) Params() *Params {
	return s.params
}
