// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the GovConnect service.
package api

import (
	_ "embed"
	"fmt"
	"govconnect/internal/api/handler/v1handler"
	"govconnect/internal/config"
	"govconnect/pkg/controller"
	"govconnect/pkg/metrics"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer token issuing and verification.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds every v1 request except the signal stream.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins is used by CORS and by the signal stream handshake.
	AllowedOrigins []string
	// EnablePprof mounts the profiler under /debug/pprof.
	EnablePprof bool
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		EnablePprof:       cfg.HTTP.EnablePprof,
	}
}

type Deps struct {
	v1handler.Deps

	Metrics *metrics.Metrics
}

// NewMetrics registers an OpenTelemetry meter provider exporting to the
// default Prometheus registry and builds the service instruments on it.
func NewMetrics() (*metrics.Metrics, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	m, err := metrics.New(sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)))
	if err != nil {
		return nil, fmt.Errorf("could not create metrics: %w", err)
	}

	return m, nil
}

// NewHandler builds the root router:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes, bounded by RequestTimeout
// - the v1 signal stream, which is long lived and not bounded
// - pprof endpoints when enabled
// Every route goes through the logging, metrics, CORS and recovery middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1 := v1handler.New(deps.Deps, secHandler)

	r := chi.NewRouter()
	r.Use(
		controller.WithLogger,
		controller.WithMetrics(deps.Metrics),
		controller.WithCORS(controller.CORSOptions{AllowedOrigins: opts.AllowedOrigins, MaxAge: 300}),
		middleware.Recoverer,
	)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})

	r.Route("/v1", func(r chi.Router) {
		// v1 api swagger playground
		r.Handle("/docs/*", v5emb.New(
			"GovConnect",
			"/specs/v1.yaml",
			"/v1/docs/",
		))

		r.Get("/signals", v1.SignalStream(v1handler.AllowOrigins(opts.AllowedOrigins)))

		r.Group(func(r chi.Router) {
			if opts.RequestTimeout > 0 {
				r.Use(middleware.Timeout(opts.RequestTimeout))
			}
			v1.Routes(r)
		})
	})

	if opts.EnablePprof {
		r.Mount("/debug", controller.Pprof())
	}

	return r, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
