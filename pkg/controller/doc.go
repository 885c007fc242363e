// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Applies the configured CORS policy and answers preflight requests.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - WithMetrics: Records request latency per matched route.
//
// Provided helpers:
//   - Pprof: Returns a handler exposing net/http/pprof endpoints.
package controller
