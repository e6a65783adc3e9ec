package api

import (
	"net/http"

	"github.com/vitalage/bioage-api/internal/api/shared"
	"github.com/vitalage/bioage-api/internal/service"
)

// InsightsHandler serves trends and range summaries.
type InsightsHandler struct {
	trends    service.TrendService
	summaries service.SummaryService
}

// NewInsightsHandler creates a new InsightsHandler with the given dependencies.
func NewInsightsHandler(trends service.TrendService, summaries service.SummaryService) *InsightsHandler {
	if trends == nil {
		panic("trends cannot be nil")
	}
	if summaries == nil {
		panic("summaries cannot be nil")
	}
	return &InsightsHandler{
		trends:    trends,
		summaries: summaries,
	}
}

// GetTrend handles GET /trends?window=weekly|monthly|yearly.
func (h *InsightsHandler) GetTrend(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	window := r.URL.Query().Get("window")
	if window == "" {
		window = "weekly"
	}

	trend, err := h.trends.GetTrend(r.Context(), userID, window)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, trend)
}

// GetSummary handles GET /summary?range=weekly|monthly|yearly.
func (h *InsightsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	rangeName := r.URL.Query().Get("range")
	if rangeName == "" {
		rangeName = "weekly"
	}

	view, err := h.summaries.GetSummary(r.Context(), userID, rangeName)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, view)
}
