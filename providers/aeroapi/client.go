// Package aeroapi is a typed HTTP client for the FlightAware AeroAPI
// flight-search endpoint.
package aeroapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/skyward/flightsearch/log"
)

const (
	// DefaultBaseURL is the production AeroAPI endpoint.
	DefaultBaseURL = "https://aeroapi.flightaware.com/aeroapi"

	// DefaultTimeout bounds every provider call. An unbounded outbound
	// request would hang a caller on a stuck provider.
	DefaultTimeout = 10 * time.Second

	// maxErrorBody caps how much of a provider error body is carried
	// into error messages and logs.
	maxErrorBody = 2048
)

// Client handles FlightAware AeroAPI requests. The zero credential is
// allowed; callers gate on it before invoking the client.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	apiKey string
}

// NewClient creates a new AeroAPI client. Empty baseURL and zero timeout
// fall back to the defaults.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
	}
}

// StatusError is returned when the provider answers with a non-success
// status code. The code is preserved so callers can classify the failure
// instead of matching message text.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("FlightAware API error: %d - %s", e.StatusCode, e.Body)
}

// MalformedResponseError is returned when the provider answers 200 but the
// body cannot be decoded as the expected JSON shape.
type MalformedResponseError struct {
	Err error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// GetFlights fetches the flight entries for the given identifier via
// GET /flights/{ident}. The credential travels in the x-apikey header,
// never in the URL, so it cannot leak into request logs.
func (c *Client) GetFlights(ctx context.Context, ident string) (*FlightsResponse, error) {
	u := fmt.Sprintf("%s/flights/%s", c.BaseURL, url.PathEscape(ident))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-apikey", c.apiKey)
	req.Header.Set("Accept", "application/json; charset=UTF-8")

	log.Infof(ctx, "GET %s", u)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flight request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Infof(ctx, "GET %s -> %d", u, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var flights FlightsResponse
	if err := json.NewDecoder(resp.Body).Decode(&flights); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	return &flights, nil
}
