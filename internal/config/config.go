package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"campus-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log record.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP configs.HTTP `envPrefix:"HTTP_"`

	Log configs.Logger `envPrefix:"LOG_"`

	// Store selects the persistence backend for campaigns, metrics and
	// events.
	Store configs.Store `envPrefix:"STORE_"`

	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the spotlight board. When disabled feeds are served
	// without spotlights.
	Redis configs.Redis `envPrefix:"REDIS_"`

	Metrics configs.Metrics `envPrefix:"METRICS_"`
}

// Load reads configuration from environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if !cfg.Store.Valid() {
		return cfg, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}
