package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logcontext "github.com/skyward/flightsearch/context"
	"github.com/skyward/flightsearch/search"
)

// pageTemplate renders both the empty form and the result of a search.
const pageTemplate = `<!DOCTYPE html>
<html>
<head><title>Flight Information Search</title></head>
<body>
<h1>Flight Information Search</h1>
<form method="post" action="/search">
  <input type="text" name="flight_number" placeholder="e.g. UAL123" value="{{.FlightNumber}}">
  <button type="submit">Search</button>
</form>
{{if .Error}}<p>Error: {{.Error}}</p>{{end}}
{{if .Flight}}<pre>Flight Number: {{.Flight.FlightNumber}}
Origin: {{.Flight.Origin}}
Destination: {{.Flight.Destination}}
Departure Time: {{if .Flight.DepartureTime}}{{.Flight.DepartureTime}}{{else}}N/A{{end}}
Arrival Time: {{if .Flight.ArrivalTime}}{{.Flight.ArrivalTime}}{{else}}N/A{{end}}</pre>{{end}}
</body>
</html>`

// pageData feeds pageTemplate. At most one of Flight and Error is set.
type pageData struct {
	FlightNumber string
	Flight       *search.FlightInfo
	Error        string
}

// Handler holds the form handlers' shared dependency.
type Handler struct {
	Service *search.Service
}

// Form renders the empty search form.
func (h *Handler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "page", pageData{})
}

// Search handles a form submission and renders the five flight fields or
// the error text. Outcome classification is entirely the lookup service's;
// only the empty-input nudge is handled here, before any lookup.
func (h *Handler) Search(c *gin.Context) {
	flightNumber := c.PostForm("flight_number")
	if flightNumber == "" {
		c.HTML(http.StatusOK, "page", pageData{Error: "Please enter a flight number."})
		return
	}

	ctx := logcontext.EnsureRequestID(c.Request.Context())
	info, lerr := h.Service.Search(ctx, flightNumber)
	if lerr != nil {
		c.HTML(http.StatusOK, "page", pageData{FlightNumber: flightNumber, Error: lerr.Message})
		return
	}

	c.HTML(http.StatusOK, "page", pageData{FlightNumber: flightNumber, Flight: info})
}

// searchRequest is the JSON body of POST /api/search.
type searchRequest struct {
	FlightNumber string `json:"flight_number"`
}

// SearchJSON is the programmatic twin of Search: same lookup, JSON in and
// out, mirroring the MCP tool's response shapes.
func (h *Handler) SearchJSON(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := logcontext.EnsureRequestID(c.Request.Context())
	info, lerr := h.Service.Search(ctx, req.FlightNumber)
	if lerr != nil {
		c.JSON(http.StatusOK, gin.H{"error": lerr.Message})
		return
	}

	c.JSON(http.StatusOK, info)
}
