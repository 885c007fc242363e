package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Pprof returns a handler serving the net/http/pprof endpoints. Mount it at
// /debug; it routes /debug/pprof/* and /debug/vars itself.
func Pprof() http.Handler {
	return middleware.Profiler()
}
