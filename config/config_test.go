package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		// Save original env vars
		origAPIKey := os.Getenv("FLIGHTAWARE_API_KEY")
		origBaseURL := os.Getenv("FLIGHTAWARE_BASE_URL")
		origPort := os.Getenv("PORT")

		// Clear env vars for this test
		os.Unsetenv("FLIGHTAWARE_API_KEY")
		os.Unsetenv("FLIGHTAWARE_BASE_URL")
		os.Unsetenv("PORT")

		defer func() {
			// Restore original env vars
			if origAPIKey != "" {
				os.Setenv("FLIGHTAWARE_API_KEY", origAPIKey)
			}
			if origBaseURL != "" {
				os.Setenv("FLIGHTAWARE_BASE_URL", origBaseURL)
			}
			if origPort != "" {
				os.Setenv("PORT", origPort)
			}
		}()

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)

		// Test default values
		assert.Equal(t, "https://aeroapi.flightaware.com/aeroapi", cfg.FlightAware.BaseURL)
		assert.Equal(t, 10, cfg.FlightAware.TimeoutSeconds)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "app.log", cfg.Log.File)

		// A missing API key is allowed at load time
		assert.Empty(t, cfg.FlightAware.APIKey)
	})

	t.Run("EnvironmentVariables", func(t *testing.T) {
		// Save original env vars
		origAPIKey := os.Getenv("FLIGHTAWARE_API_KEY")
		origPort := os.Getenv("PORT")

		// Set test env vars
		os.Setenv("FLIGHTAWARE_API_KEY", "test-key")
		os.Setenv("PORT", "9090")

		defer func() {
			// Restore original env vars
			if origAPIKey != "" {
				os.Setenv("FLIGHTAWARE_API_KEY", origAPIKey)
			} else {
				os.Unsetenv("FLIGHTAWARE_API_KEY")
			}
			if origPort != "" {
				os.Setenv("PORT", origPort)
			} else {
				os.Unsetenv("PORT")
			}
		}()

		cfg, err := Load()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
		assert.Equal(t, "test-key", cfg.FlightAware.APIKey)
		assert.Equal(t, "9090", cfg.Server.Port)
	})
}
