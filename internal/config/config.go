package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Engine   EngineConfig   `mapstructure:"engine"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}

// EngineConfig tunes the biological-age engine. Zero values keep the engine
// defaults, so an empty section is valid.
type EngineConfig struct {
	MaxOffsetYears     float64 `mapstructure:"max_offset_years" validate:"gte=0"`
	DailyDeltaCapYears float64 `mapstructure:"daily_delta_cap_years" validate:"gte=0"`
	YearsPerPoint      float64 `mapstructure:"years_per_point" validate:"gte=0"`
	NeutralEpsilon     float64 `mapstructure:"neutral_epsilon" validate:"gte=0"`
}
