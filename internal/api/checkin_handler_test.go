package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalage/bioage-api/internal/api"
	"github.com/vitalage/bioage-api/internal/api/shared"
	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/mocks"
	"github.com/vitalage/bioage-api/internal/service"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var testClock = fixedClock{now: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)}

// handlerFixture wires handlers against in-memory stores.
type handlerFixture struct {
	userID     uuid.UUID
	onboarding *api.OnboardingHandler
	checkIn    *api.CheckInHandler
	insights   *api.InsightsHandler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	entries := mocks.NewMemoryEntryStore()
	profiles := mocks.NewMemoryProfileStore()
	engine := bioage.NewDefaultService()

	onboardingSvc := service.NewOnboardingService(profiles, engine, testClock, nil)
	checkInSvc := service.NewCheckInService(nil, entries, profiles, engine, testClock, nil)
	trendSvc := service.NewTrendService(entries, profiles, nil, nil)
	summarySvc := service.NewSummaryService(entries, profiles, testClock, nil)

	return &handlerFixture{
		userID:     uuid.New(),
		onboarding: api.NewOnboardingHandler(onboardingSvc),
		checkIn:    api.NewCheckInHandler(checkInSvc),
		insights:   api.NewInsightsHandler(trendSvc, summarySvc),
	}
}

// authedRequest builds a request carrying the fixture user's identity, as the
// auth middleware would.
func (f *handlerFixture) authedRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, f.userID)
	return req.WithContext(ctx)
}

func (f *handlerFixture) onboard(t *testing.T) {
	t.Helper()

	req := f.authedRequest(t, http.MethodPost, "/onboarding", api.OnboardRequest{
		BirthDate: "1985-06-02",
		Timezone:  "UTC",
	})
	rec := httptest.NewRecorder()
	f.onboarding.Onboard(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, "onboarding failed: %s", rec.Body.String())
}

func TestOnboardHandler(t *testing.T) {
	t.Parallel()
	f := newHandlerFixture(t)

	req := f.authedRequest(t, http.MethodPost, "/onboarding", api.OnboardRequest{
		BirthDate: "1985-06-02",
		Timezone:  "America/New_York",
		Answers:   bioage.OnboardingAnswers{Sleep: 2, Nutrition: -1},
	})
	rec := httptest.NewRecorder()
	f.onboarding.Onboard(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, f.userID, resp.UserID)
	assert.Equal(t, "1985-06-02", resp.BirthDate)
	assert.NotZero(t, resp.State.BaselineBiologicalAgeYears)
}

func TestOnboardHandlerConflictOnRepeat(t *testing.T) {
	t.Parallel()
	f := newHandlerFixture(t)
	f.onboard(t)

	req := f.authedRequest(t, http.MethodPost, "/onboarding", api.OnboardRequest{
		BirthDate: "1985-06-02",
		Timezone:  "UTC",
	})
	rec := httptest.NewRecorder()
	f.onboarding.Onboard(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestOnboardHandlerRejectsBadBirthDate(t *testing.T) {
	t.Parallel()
	f := newHandlerFixture(t)

	req := f.authedRequest(t, http.MethodPost, "/onboarding", api.OnboardRequest{
		BirthDate: "06/02/1985",
		Timezone:  "UTC",
	})
	rec := httptest.NewRecorder()
	f.onboarding.Onboard(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckInHandler(t *testing.T) {
	t.Parallel()
	f := newHandlerFixture(t)
	f.onboard(t)

	req := f.authedRequest(t, http.MethodPost, "/checkins", api.CheckInRequest{})
	rec := httptest.NewRecorder()
	f.checkIn.CheckIn(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp api.CheckInResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-06-02", string(resp.Day))

	// The displayed delta opposes the internal one; an unremarkable day with
	// empty metrics scores negative internally (aging), so it displays
	// negative progress.
	assert.LessOrEqual(t, resp.DeltaYears, 0.0)
}

func TestCheckInHandlerDuplicateDay(t *testing.T) {
	t.Parallel()
	f := newHandlerFixture(t)
	f.onboard(t)

	first := httptest.NewRecorder()
	f.checkIn.CheckIn(first, f.authedRequest(t, http.MethodPost, "/checkins", api.CheckInRequest{}))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	f.checkIn.CheckIn(second, f.authedRequest(t, http.MethodPost, "/checkins", api.CheckInRequest{}))
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestCheckInHandlerRequiresOnboarding(t *testing.T) {
	t.Parallel()
	f := newHandlerFixture(t)

	rec := httptest.NewRecorder()
	f.checkIn.CheckIn(rec, f.authedRequest(t, http.MethodPost, "/checkins", api.CheckInRequest{}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckInHandlerRequiresAuth(t *testing.T) {
	t.Parallel()
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/checkins", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()
	f.checkIn.CheckIn(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTrendHandler(t *testing.T) {
	t.Parallel()
	f := newHandlerFixture(t)
	f.onboard(t)

	rec := httptest.NewRecorder()
	f.insights.GetTrend(rec, f.authedRequest(t, http.MethodGet, "/trends?window=weekly", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var trend bioage.Trend
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trend))
	assert.False(t, trend.Available, "no check-ins yet")
}

func TestGetTrendHandlerBadWindow(t *testing.T) {
	t.Parallel()
	f := newHandlerFixture(t)
	f.onboard(t)

	rec := httptest.NewRecorder()
	f.insights.GetTrend(rec, f.authedRequest(t, http.MethodGet, "/trends?window=hourly", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSummaryHandler(t *testing.T) {
	t.Parallel()
	f := newHandlerFixture(t)
	f.onboard(t)

	checkin := httptest.NewRecorder()
	f.checkIn.CheckIn(checkin, f.authedRequest(t, http.MethodPost, "/checkins", api.CheckInRequest{}))
	require.Equal(t, http.StatusCreated, checkin.Code)

	rec := httptest.NewRecorder()
	f.insights.GetSummary(rec, f.authedRequest(t, http.MethodGet, "/summary?range=weekly", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var view service.SummaryView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 1, view.CheckInCount)
	assert.Len(t, view.Days, 7)
}
