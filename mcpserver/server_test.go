package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/skyward/flightsearch/providers/aeroapi"
	"github.com/skyward/flightsearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubService(t *testing.T, handler http.HandlerFunc, hasKey bool) *search.Service {
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client := aeroapi.NewClient("test-key", ts.URL, time.Second)
	return search.NewServiceWithProvider(client, hasKey)
}

func callTool(t *testing.T, svc *search.Service, flightNumber string) *mcpsdk.CallToolResultFor[any] {
	handler := searchFlightHandler(svc)
	result, err := handler(context.Background(), nil, &mcpsdk.CallToolParamsFor[SearchFlightParams]{
		Arguments: SearchFlightParams{FlightNumber: flightNumber},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcpsdk.CallToolResultFor[any]) string {
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok, "tool results are text content")
	return text.Text
}

func TestNew(t *testing.T) {
	svc := newStubService(t, func(w http.ResponseWriter, r *http.Request) {}, true)
	assert.NotNil(t, New(svc, "test"))
}

func TestSearchFlightTool_Success(t *testing.T) {
	svc := newStubService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"flights": [{
				"ident": "UAL123",
				"origin": {"code": "SFO"},
				"destination": {"code": "LAX"},
				"scheduled_out": "2025-07-21T08:30:00Z",
				"scheduled_in": "2025-07-21T10:45:00Z"
			}]
		}`))
	}, true)

	result := callTool(t, svc, "UAL123")
	assert.False(t, result.IsError)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.NotContains(t, payload, "error")
	assert.Equal(t, "UAL123", payload["flight_number"])
	assert.Equal(t, "SFO", payload["origin"])
	assert.Equal(t, "LAX", payload["destination"])
	assert.Equal(t, "2025-07-21T08:30:00Z", payload["departure_time"])
	assert.Equal(t, "2025-07-21T10:45:00Z", payload["arrival_time"])
}

func TestSearchFlightTool_LookupError(t *testing.T) {
	svc := newStubService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"flights": []}`))
	}, true)

	result := callTool(t, svc, "ZZZ000")
	assert.True(t, result.IsError)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, map[string]string{"error": "No flight information found"}, payload)
}

func TestSearchFlightTool_MissingKey(t *testing.T) {
	svc := newStubService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no network call expected without a credential")
	}, false)

	result := callTool(t, svc, "UAL123")
	assert.True(t, result.IsError)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, "API key is missing", payload["error"])
}
