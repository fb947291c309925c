// Package search implements the flight lookup service: one provider round
// trip per call, classified into exactly one of a normalized flight record
// or a typed lookup error.
package search

// ErrorKind classifies a failed lookup.
type ErrorKind int

const (
	KindMissingCredential ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindRateLimited
	KindUnauthorized
	KindNetworkFailure
	KindMalformedPayload
	KindProviderError
)

// String returns a short label for the kind, used in logs.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingCredential:
		return "missing_credential"
	case KindInvalidInput:
		return "invalid_input"
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindUnauthorized:
		return "unauthorized"
	case KindNetworkFailure:
		return "network_failure"
	case KindMalformedPayload:
		return "malformed_payload"
	default:
		return "provider_error"
	}
}

// FlightInfo is the normalized result of a successful lookup. Timestamps
// keep the provider's string representation and are nil when the provider
// did not report them.
type FlightInfo struct {
	FlightNumber  string  `json:"flight_number"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureTime *string `json:"departure_time"`
	ArrivalTime   *string `json:"arrival_time"`
}

// LookupError is the single failure type surfaced to both front ends.
// Message is human-readable; Kind is for programmatic branching.
type LookupError struct {
	Kind    ErrorKind
	Message string
}

func (e *LookupError) Error() string {
	return e.Message
}
