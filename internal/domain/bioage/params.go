package bioage

// Category identifies one of the five onboarding questionnaire categories.
type Category string

// Onboarding categories.
const (
	CategorySleep     Category = "sleep"
	CategoryMovement  Category = "movement"
	CategoryMetabolic Category = "metabolic"
	CategoryNutrition Category = "nutrition"
	CategoryStress    Category = "stress"
)

// Params defines all configurable parameters for the biological-age engine.
type Params struct {
	// MaxOffsetYears bounds the onboarding baseline offset in either direction.
	MaxOffsetYears float64

	// DailyDeltaCapYears bounds the magnitude of a single day's adjustment.
	DailyDeltaCapYears float64

	// ScoreMin and ScoreMax bound the explainability score.
	ScoreMin float64
	ScoreMax float64

	// YearsPerPoint is the linear transform from score points to delta years.
	// Delta sign is the inverse of the score sign: good behavior (positive
	// score) rejuvenates (negative delta).
	YearsPerPoint float64

	// NeutralEpsilon is the magnitude below which a delta counts as neutral
	// for streak purposes.
	NeutralEpsilon float64

	// CategoryWeights distribute the onboarding total across the five
	// categories. They must sum to 1.
	CategoryWeights map[Category]float64
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance.
type ParamsConfig struct {
	MaxOffsetYears     float64
	DailyDeltaCapYears float64
	YearsPerPoint      float64
	NeutralEpsilon     float64

	// Category weights
	SleepWeight     float64
	MovementWeight  float64
	MetabolicWeight float64
	NutritionWeight float64
	StressWeight    float64
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		MaxOffsetYears:     5.0,
		DailyDeltaCapYears: 0.3,
		ScoreMin:           -10,
		ScoreMax:           10,
		YearsPerPoint:      0.03,
		NeutralEpsilon:     1e-4,

		CategoryWeights: map[Category]float64{
			CategorySleep:     0.25,
			CategoryMovement:  0.25,
			CategoryMetabolic: 0.20,
			CategoryNutrition: 0.15,
			CategoryStress:    0.15,
		},
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero-valued fields keep their defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MaxOffsetYears > 0 {
		params.MaxOffsetYears = config.MaxOffsetYears
	}
	if config.DailyDeltaCapYears > 0 {
		params.DailyDeltaCapYears = config.DailyDeltaCapYears
	}
	if config.YearsPerPoint > 0 {
		params.YearsPerPoint = config.YearsPerPoint
	}
	if config.NeutralEpsilon > 0 {
		params.NeutralEpsilon = config.NeutralEpsilon
	}

	if config.SleepWeight > 0 {
		params.CategoryWeights[CategorySleep] = config.SleepWeight
	}
	if config.MovementWeight > 0 {
		params.CategoryWeights[CategoryMovement] = config.MovementWeight
	}
	if config.MetabolicWeight > 0 {
		params.CategoryWeights[CategoryMetabolic] = config.MetabolicWeight
	}
	if config.NutritionWeight > 0 {
		params.CategoryWeights[CategoryNutrition] = config.NutritionWeight
	}
	if config.StressWeight > 0 {
		params.CategoryWeights[CategoryStress] = config.StressWeight
	}

	return params
}
