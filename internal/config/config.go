package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mesa-fund/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Ledger configures storage selection and campaign limits.
	Ledger configs.Ledger `envPrefix:"LEDGER_"`

	// AMQP configures the event publisher.
	AMQP configs.AMQP `envPrefix:"AMQP_"`

	Metrics configs.Metrics `envPrefix:"METRICS_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is loaded first when present;
// variables already set in the environment take precedence over it. All
// fields are loaded with their specified defaults when no environment
// variable is provided.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
