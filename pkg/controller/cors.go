package controller

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORSOptions configures WithCORS.
type CORSOptions struct {
	// AllowedOrigins lists the presentation layer origins. An empty list allows any origin.
	AllowedOrigins []string
	// MaxAge is the preflight cache duration in seconds.
	MaxAge int
}

// WithCORS returns a middleware applying the CORS policy described by opts.
// OPTIONS preflight requests are answered without reaching next.
func WithCORS(opts CORSOptions) func(http.Handler) http.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", "Cache-Control"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           opts.MaxAge,
	})
}
