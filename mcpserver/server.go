// Package mcpserver exposes the flight lookup as an MCP tool over stdio.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	logcontext "github.com/skyward/flightsearch/context"
	"github.com/skyward/flightsearch/search"
)

// SearchFlightParams is the search_flight tool input.
type SearchFlightParams struct {
	FlightNumber string `json:"flight_number"`
}

// New builds the MCP server with the search_flight tool registered.
func New(svc *search.Service, version string) *mcpsdk.Server {
	impl := &mcpsdk.Implementation{
		Name:    "flightsearch-mcp",
		Version: version,
	}

	serverOpts := &mcpsdk.ServerOptions{
		InitializedHandler: func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.InitializedParams) {
			fmt.Fprintln(os.Stderr, "MCP connection established")
		},
	}

	server := mcpsdk.NewServer(impl, serverOpts)

	tool := &mcpsdk.Tool{
		Name:        "search_flight",
		Description: "Look up a flight by its identifier (airline code plus flight number, e.g. \"UAL123\"). Returns origin, destination and departure/arrival times, or {\"error\": ...} when the lookup fails.",
	}
	mcpsdk.AddTool(server, tool, searchFlightHandler(svc))

	return server
}

// searchFlightHandler adapts the lookup service to the MCP tool contract.
// Both outcomes are returned as JSON text with a fixed shape per outcome,
// so callers branch on the presence of the "error" key.
func searchFlightHandler(svc *search.Service) mcpsdk.ToolHandlerFor[SearchFlightParams, any] {
	return func(ctx context.Context, session *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[SearchFlightParams]) (*mcpsdk.CallToolResultFor[any], error) {
		ctx = logcontext.EnsureRequestID(ctx)

		info, lerr := svc.Search(ctx, params.Arguments.FlightNumber)
		if lerr != nil {
			payload, err := json.Marshal(map[string]string{"error": lerr.Message})
			if err != nil {
				return nil, fmt.Errorf("marshal error payload: %w", err)
			}
			return &mcpsdk.CallToolResultFor[any]{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(payload)}},
				IsError: true,
			}, nil
		}

		payload, err := json.Marshal(info)
		if err != nil {
			return nil, fmt.Errorf("marshal flight payload: %w", err)
		}
		return &mcpsdk.CallToolResultFor[any]{
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(payload)}},
		}, nil
	}
}

// Run serves MCP over stdio until the client disconnects.
//
// stdout must stay pure JSON-RPC while serving; all logging in this process
// goes to stderr and the log file.
func Run(ctx context.Context, svc *search.Service, version string) error {
	return New(svc, version).Run(ctx, mcpsdk.NewStdioTransport())
}
