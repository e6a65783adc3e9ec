package api

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/vitalage/bioage-api/internal/api/shared"
	"github.com/vitalage/bioage-api/internal/domain"
	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
	"github.com/vitalage/bioage-api/internal/service"
)

// OnboardingHandler handles the one-time questionnaire and profile reads.
type OnboardingHandler struct {
	onboarding service.OnboardingService
	validator  *validator.Validate
}

// NewOnboardingHandler creates a new OnboardingHandler with the given dependencies.
func NewOnboardingHandler(onboarding service.OnboardingService) *OnboardingHandler {
	if onboarding == nil {
		panic("onboarding cannot be nil")
	}
	return &OnboardingHandler{
		onboarding: onboarding,
		validator:  validator.New(),
	}
}

// Onboard handles POST /onboarding.
func (h *OnboardingHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req OnboardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	birthDate, err := time.Parse(daykey.Layout, req.BirthDate)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Birth date must use YYYY-MM-DD")
		return
	}

	profile, err := h.onboarding.Onboard(r.Context(), userID, birthDate, req.Timezone, req.Answers)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, toProfileResponse(profile))
}

// GetProfile handles GET /profile.
func (h *OnboardingHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	profile, err := h.onboarding.GetProfile(r.Context(), userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, toProfileResponse(profile))
}

func toProfileResponse(profile *domain.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:    profile.UserID,
		BirthDate: profile.BirthDate.Format(daykey.Layout),
		Timezone:  profile.Timezone,
		State:     profile.State,
		// Positive reads as "years younger than the calendar".
		DisplayedNetYears: bioage.DisplayDelta(profile.State.AgingDebtYears),
	}
}
