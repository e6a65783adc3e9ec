package api

import (
	"net/http"

	"github.com/vitalage/bioage-api/internal/api/shared"
	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/service"
)

// CheckInHandler handles daily check-in requests.
type CheckInHandler struct {
	checkIn service.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler with the given dependencies.
func NewCheckInHandler(checkIn service.CheckInService) *CheckInHandler {
	if checkIn == nil {
		panic("checkIn cannot be nil")
	}
	return &CheckInHandler{checkIn: checkIn}
}

// CheckIn handles POST /checkins. Metric values are coerced rather than
// rejected, so the only client errors here are malformed JSON and flow
// errors (not onboarded, duplicate day).
func (h *CheckInHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req CheckInRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := h.checkIn.CheckIn(r.Context(), userID, req.Metrics)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CheckInResponse{
		Day:   entry.Day,
		Score: entry.Result.Score,
		// The sign flips at the boundary: positive means rejuvenation.
		DeltaYears: bioage.DisplayDelta(entry.Result.DeltaYears),
		Reasons:    entry.Result.Reasons,
		State:      entry.State,
	})
}
