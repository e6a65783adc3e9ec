package api

import (
	"github.com/google/uuid"

	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
)

// RegisterRequest is the payload for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest is the payload for authenticating.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the issued token after registration or login.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Token  string    `json:"token"`
}

// OnboardRequest is the one-time questionnaire payload. BirthDate uses the
// same YYYY-MM-DD layout as day keys. Answers are the normalized [-2, 2]
// questionnaire values.
type OnboardRequest struct {
	BirthDate string                   `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Timezone  string                   `json:"timezone"`
	Answers   bioage.OnboardingAnswers `json:"answers"`
}

// ProfileResponse is the onboarded profile with its running state. Ages are
// reported as-is; DisplayedNetYears is the sign-flipped lifetime delta, where
// positive means biologically younger than the calendar says.
type ProfileResponse struct {
	UserID            uuid.UUID       `json:"user_id"`
	BirthDate         string          `json:"birth_date"`
	Timezone          string          `json:"timezone"`
	State             domain.AgeState `json:"state"`
	DisplayedNetYears float64         `json:"displayed_net_years"`
}

// CheckInRequest is one day's metrics. The server resolves the calendar day
// from the user's timezone; any client-supplied day is ignored.
type CheckInRequest struct {
	Metrics domain.DailyMetrics `json:"metrics"`
}

// CheckInResponse reports the applied check-in. DeltaYears is the displayed
// delta: positive means the day rejuvenated.
type CheckInResponse struct {
	Day        daykey.Key      `json:"day"`
	Score      float64         `json:"score"`
	DeltaYears float64         `json:"delta_years"`
	Reasons    []string        `json:"reasons"`
	State      domain.AgeState `json:"state"`
}
