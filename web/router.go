// Package web serves the interactive flight search form.
package web

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/skyward/flightsearch/search"
)

// NewRouter builds the Gin engine for the form surface. The same lookup
// service instance backs every request; it is safe for concurrent use.
func NewRouter(svc *search.Service) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Allow all origins; this surface is a local dev-facing form.
	r.Use(cors.Default())

	r.SetHTMLTemplate(template.Must(template.New("page").Parse(pageTemplate)))

	h := &Handler{Service: svc}
	r.GET("/", h.Form)
	r.POST("/search", h.Search)
	r.POST("/api/search", h.SearchJSON)

	return r
}
