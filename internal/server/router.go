package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"adder/internal/calculator"
	"adder/internal/handlers"
	"adder/internal/observability"
)

// NewRouter wires the middleware stack, the calculation endpoints and the
// operational endpoints. Metrics are served from gatherer.
func NewRouter(calc *calculator.Handler, gatherer prometheus.Gatherer) http.Handler {

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler(gatherer))

	calc.RegisterRoutes(r)

	return r
}
