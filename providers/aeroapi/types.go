package aeroapi

// FlightsResponse is the payload of GET /flights/{ident}.
// Unknown fields in the provider payload are ignored by the decoder.
type FlightsResponse struct {
	Flights  []Flight `json:"flights"`
	NumPages int      `json:"num_pages"`
}

// AirportRef references an airport in flight data.
type AirportRef struct {
	Code     *string `json:"code"`
	CodeICAO *string `json:"code_icao"`
	CodeIATA *string `json:"code_iata"`
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Timezone *string `json:"timezone"`
}

// BestCode returns the best available airport code, or "" when the
// reference carries none.
func (a *AirportRef) BestCode() string {
	if a == nil {
		return ""
	}
	if a.Code != nil && *a.Code != "" {
		return *a.Code
	}
	if a.CodeIATA != nil && *a.CodeIATA != "" {
		return *a.CodeIATA
	}
	if a.CodeICAO != nil && *a.CodeICAO != "" {
		return *a.CodeICAO
	}
	return ""
}

// Flight is the subset of the AeroAPI flight schema this service reads.
// Timestamps stay in the provider's string representation; no parsing or
// timezone conversion happens on this side.
type Flight struct {
	Ident        string      `json:"ident"`
	IdentICAO    *string     `json:"ident_icao"`
	IdentIATA    *string     `json:"ident_iata"`
	Status       string      `json:"status"`
	Cancelled    bool        `json:"cancelled"`
	Origin       *AirportRef `json:"origin"`
	Destination  *AirportRef `json:"destination"`
	ScheduledOut *string     `json:"scheduled_out"`
	EstimatedOut *string     `json:"estimated_out"`
	ActualOut    *string     `json:"actual_out"`
	ScheduledIn  *string     `json:"scheduled_in"`
	EstimatedIn  *string     `json:"estimated_in"`
	ActualIn     *string     `json:"actual_in"`
}
