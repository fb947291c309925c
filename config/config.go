package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config aggregates all application configuration
type Config struct {
	FlightAware FlightAwareConfig `yaml:"flightaware"`
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
}

// FlightAwareConfig holds the credential and connection settings for the
// FlightAware AeroAPI. The API key is intentionally carried here, as an
// explicit value handed to the client at construction, so alternate hosting
// environments can supply it without touching the lookup path.
type FlightAwareConfig struct {
	APIKey         string `yaml:"api_key" env:"FLIGHTAWARE_API_KEY"`
	BaseURL        string `yaml:"base_url" env:"FLIGHTAWARE_BASE_URL" env-default:"https://aeroapi.flightaware.com/aeroapi"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env:"FLIGHTAWARE_TIMEOUT_SECONDS" env-default:"10"`
}

// Timeout returns the request timeout as a duration.
func (c FlightAwareConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type ServerConfig struct {
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
}

type LogConfig struct {
	File string `yaml:"file" env:"LOG_FILE" env-default:"app.log"`
}

// Load reads configuration from config.yaml and environment variables
// Priority: Env Vars > Config File > Defaults
func Load() (*Config, error) {
	var cfg Config

	// Read config.yaml if present, then override with envs. A missing file is
	// fine; a missing API key is not fatal here either - the lookup service
	// reports it per call rather than crashing the process at startup.
	err := cleanenv.ReadConfig("config.yaml", &cfg)
	if err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
	}

	return &cfg, nil
}
