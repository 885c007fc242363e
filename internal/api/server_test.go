package api_test

import (
	"govconnect/internal/api"
	"govconnect/internal/api/handler/v1handler"
	"govconnect/pkg/logger"
	"govconnect/pkg/metrics"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func newHandler(t *testing.T, pprof bool) http.Handler {
	t.Helper()

	h, err := api.NewHandler(api.Deps{Metrics: metrics.Noop()}, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{Secret: "server-test-secret-0123456789abcdef", TTL: time.Hour},
		RequestTimeout:    time.Second,
		MetricsPath:       "/metrics",
		AllowedOrigins:    []string{"http://localhost:5173"},
		EnablePprof:       pprof,
	})
	require.NoError(t, err)

	return h
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	return rec
}

func TestNewHandler_ServesSpecAndDocs(t *testing.T) {
	h := newHandler(t, false)

	rec := get(h, "/specs/v1.yaml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = get(h, "/v1/docs/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "GovConnect")
}

func TestNewHandler_Metrics(t *testing.T) {
	rec := get(newHandler(t, false), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHandler_Pprof(t *testing.T) {
	require.Equal(t, http.StatusNotFound, get(newHandler(t, false), "/debug/pprof/").Code)
	require.Equal(t, http.StatusOK, get(newHandler(t, true), "/debug/pprof/").Code)
}

func TestNewHandler_RequestIDAndCORS(t *testing.T) {
	h := newHandler(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/v1/session", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestNewHandler_RequiresSecret(t *testing.T) {
	_, err := api.NewHandler(api.Deps{}, api.Options{SecHandlerOptions: &v1handler.SecHandlerOptions{}})
	require.Error(t, err)
}
