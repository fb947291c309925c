package bootstrap

import (
	"context"

	"github.com/skyward/flightsearch/config"
	"github.com/skyward/flightsearch/log"
	"github.com/skyward/flightsearch/search"
)

// App holds the initialized components of the application
type App struct {
	Search *search.Service
}

// Setup initializes the application components based on the configuration.
// A missing API key is not an error here: the lookup service reports it on
// every call instead of refusing to start.
func Setup(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg.FlightAware.APIKey == "" {
		log.Warnf(ctx, "FLIGHTAWARE_API_KEY is not set; lookups will fail until it is provided")
	}

	return &App{
		Search: search.NewService(cfg.FlightAware),
	}, nil
}
