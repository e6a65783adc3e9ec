package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/vitalage/bioage-api/internal/api"
	apimiddleware "github.com/vitalage/bioage-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	onboardingHandler := api.NewOnboardingHandler(app.onboardingService)
	checkInHandler := api.NewCheckInHandler(app.checkInService)
	insightsHandler := api.NewInsightsHandler(app.trendService, app.summaryService)

	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/onboarding", onboardingHandler.Onboard)
			r.Get("/profile", onboardingHandler.GetProfile)

			r.Post("/checkins", checkInHandler.CheckIn)

			r.Get("/trends", insightsHandler.GetTrend)
			r.Get("/summary", insightsHandler.GetSummary)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
