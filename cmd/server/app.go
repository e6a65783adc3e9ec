package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/vitalage/bioage-api/internal/config"
	"github.com/vitalage/bioage-api/internal/domain/bioage"
	"github.com/vitalage/bioage-api/internal/domain/daykey"
	"github.com/vitalage/bioage-api/internal/platform/postgres"
	"github.com/vitalage/bioage-api/internal/service"
	"github.com/vitalage/bioage-api/internal/service/auth"
)

// application holds the wired dependencies for the server.
type application struct {
	config *config.Config
	db     *sql.DB
	logger *slog.Logger

	jwtService auth.JWTService

	userService       service.UserService
	onboardingService service.OnboardingService
	checkInService    service.CheckInService
	trendService      service.TrendService
	summaryService    service.SummaryService
}

// newApplication wires stores, the engine, and services from configuration.
func newApplication(cfg *config.Config, db *sql.DB) (*application, error) {
	log := slog.Default()

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	engine, err := bioage.NewServiceWithParams(bioage.NewParams(bioage.ParamsConfig{
		MaxOffsetYears:     cfg.Engine.MaxOffsetYears,
		DailyDeltaCapYears: cfg.Engine.DailyDeltaCapYears,
		YearsPerPoint:      cfg.Engine.YearsPerPoint,
		NeutralEpsilon:     cfg.Engine.NeutralEpsilon,
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring engine: %w", err)
	}

	hasher := auth.NewBcryptHasher(0)
	clock := daykey.SystemClock{}

	userStore := postgres.NewPostgresUserStore(db, hasher, log)
	profileStore := postgres.NewPostgresUserProfileStore(db, log)
	entryStore := postgres.NewPostgresEntryStore(db, log)

	return &application{
		config:            cfg,
		db:                db,
		logger:            log,
		jwtService:        jwtService,
		userService:       service.NewUserService(userStore, hasher, log),
		onboardingService: service.NewOnboardingService(profileStore, engine, clock, log),
		checkInService:    service.NewCheckInService(db, entryStore, profileStore, engine, clock, log),
		trendService:      service.NewTrendService(entryStore, profileStore, engine.Params(), log),
		summaryService:    service.NewSummaryService(entryStore, profileStore, clock, log),
	}, nil
}

// Close releases the application's resources.
func (app *application) Close() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
