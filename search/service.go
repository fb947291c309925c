package search

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/skyward/flightsearch/config"
	"github.com/skyward/flightsearch/log"
	"github.com/skyward/flightsearch/providers/aeroapi"
)

// Provider is the outbound flight-data dependency. Satisfied by
// *aeroapi.Client; tests substitute stub transports behind it.
type Provider interface {
	GetFlights(ctx context.Context, ident string) (*aeroapi.FlightsResponse, error)
}

// Service performs flight lookups. It holds no mutable state: the
// credential presence flag and provider are fixed at construction, so
// concurrent lookups need no coordination.
type Service struct {
	provider Provider
	hasKey   bool
}

// NewService builds a Service backed by the real AeroAPI client.
func NewService(cfg config.FlightAwareConfig) *Service {
	client := aeroapi.NewClient(cfg.APIKey, cfg.BaseURL, cfg.Timeout())
	return &Service{provider: client, hasKey: cfg.APIKey != ""}
}

// NewServiceWithProvider builds a Service over an arbitrary provider.
func NewServiceWithProvider(provider Provider, hasKey bool) *Service {
	return &Service{provider: provider, hasKey: hasKey}
}

// Search performs one lookup round trip. Exactly one of the returned
// values is non-nil.
func (s *Service) Search(ctx context.Context, flightNumber string) (*FlightInfo, *LookupError) {
	if !s.hasKey {
		// Precondition failure: reported per call, no network I/O attempted.
		return nil, s.fail(ctx, flightNumber, &LookupError{
			Kind:    KindMissingCredential,
			Message: "API key is missing",
		})
	}

	ident := strings.TrimSpace(flightNumber)
	if ident == "" {
		return nil, s.fail(ctx, flightNumber, &LookupError{
			Kind:    KindInvalidInput,
			Message: "flight number is required",
		})
	}

	log.Infof(ctx, "searching flight %q", ident)

	resp, err := s.provider.GetFlights(ctx, ident)
	if err != nil {
		return nil, s.fail(ctx, ident, classify(err))
	}

	if len(resp.Flights) == 0 {
		return nil, s.fail(ctx, ident, &LookupError{
			Kind:    KindNotFound,
			Message: "No flight information found",
		})
	}

	info, lerr := normalize(&resp.Flights[0], ident)
	if lerr != nil {
		return nil, s.fail(ctx, ident, lerr)
	}

	log.Infof(ctx, "flight %q found: %s -> %s", ident, info.Origin, info.Destination)
	return info, nil
}

// fail logs a classified failure and returns it unchanged.
func (s *Service) fail(ctx context.Context, ident string, lerr *LookupError) *LookupError {
	log.Errorf(ctx, "lookup %q failed (%s): %s", ident, lerr.Kind, lerr.Message)
	return lerr
}

// classify maps a provider error onto the lookup error taxonomy. Status
// codes drive the classification; message text is carried through for the
// caller but never matched on.
func classify(err error) *LookupError {
	var statusErr *aeroapi.StatusError
	if errors.As(err, &statusErr) {
		kind := KindProviderError
		switch statusErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = KindUnauthorized
		case http.StatusNotFound:
			kind = KindNotFound
		case http.StatusTooManyRequests:
			kind = KindRateLimited
		}
		return &LookupError{Kind: kind, Message: statusErr.Error()}
	}

	var malformedErr *aeroapi.MalformedResponseError
	if errors.As(err, &malformedErr) {
		return &LookupError{Kind: KindMalformedPayload, Message: malformedErr.Error()}
	}

	return &LookupError{Kind: KindNetworkFailure, Message: "network error contacting FlightAware: " + err.Error()}
}
