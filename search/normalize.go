package search

import (
	"github.com/skyward/flightsearch/providers/aeroapi"
)

// normalize maps one raw provider entry onto a FlightInfo.
//
// Origin and destination are required: a payload without either is reported
// as malformed rather than emitted as a record with empty identity fields.
// Departure and arrival timestamps are optional; the estimated time is
// preferred, falling back to the scheduled one.
func normalize(f *aeroapi.Flight, flightNumber string) (*FlightInfo, *LookupError) {
	origin := f.Origin.BestCode()
	destination := f.Destination.BestCode()
	if origin == "" || destination == "" {
		return nil, &LookupError{
			Kind:    KindMalformedPayload,
			Message: "malformed flight data: missing origin or destination",
		}
	}

	ident := f.Ident
	if ident == "" {
		ident = flightNumber
	}

	return &FlightInfo{
		FlightNumber:  ident,
		Origin:        origin,
		Destination:   destination,
		DepartureTime: firstSet(f.EstimatedOut, f.ScheduledOut),
		ArrivalTime:   firstSet(f.EstimatedIn, f.ScheduledIn),
	}, nil
}

// firstSet returns the first candidate that is present and non-empty.
func firstSet(candidates ...*string) *string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return c
		}
	}
	return nil
}
