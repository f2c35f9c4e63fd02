// Package calculator serves the calculation store and the sign arithmetic
// over HTTP, with a span, metrics and a trace-correlated log line for every
// operation.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"adder/internal/calculation"
	"adder/internal/observability"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Handler owns the HTTP endpoints. The store it serves is injected, so each
// Handler (and each test) works on its own calculation.
type Handler struct {
	store   *calculation.Store
	metrics *instruments
}

func NewHandler(store *calculation.Store) (*Handler, error) {
	m, err := newInstruments()
	if err != nil {
		return nil, err
	}
	return &Handler{store: store, metrics: m}, nil
}

// compute runs calculation.Compute and records the operation metrics.
func (h *Handler) compute(ctx context.Context, opName string, left, right float64, sign calculation.Sign) (float64, float64) {
	start := time.Now()
	result := calculation.Compute(left, right, sign)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	attrs := metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("sign", sign.String()),
	)
	h.metrics.ops.Add(ctx, 1, attrs)
	h.metrics.duration.Record(ctx, elapsed, attrs)
	h.metrics.lastResult.Record(ctx, result, attrs)

	return result, elapsed
}

// fail routes a request error through observability.RecordError, picking the
// client-facing message from the error kind.
func (h *Handler) fail(ctx context.Context, span trace.Span, logger *zap.Logger, opName string, err error, w http.ResponseWriter) {
	msg := "invalid request body"
	switch {
	case errors.Is(err, calculation.ErrUnknownSign):
		msg = "unknown sign"
	case errors.Is(err, errMissingSign):
		msg = errMissingSign.Error()
	}
	observability.RecordError(ctx, span, logger, h.metrics.errors, opName, msg, err, http.StatusBadRequest, w)
}

func spanName(opName string) string {
	return fmt.Sprintf("calculator.%s", opName)
}
