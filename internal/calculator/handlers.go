package calculator

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"adder/internal/calculation"
	"adder/internal/handlers"
	"adder/internal/observability"
)

// ---------------------------------------------------------------------------
// Stateless operations. These never touch the store.
// ---------------------------------------------------------------------------

// Add handles POST /calculator/add
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	h.handleBinaryOp(w, r, calculation.Plus)
}

// Subtract handles POST /calculator/subtract
func (h *Handler) Subtract(w http.ResponseWriter, r *http.Request) {
	h.handleBinaryOp(w, r, calculation.Minus)
}

// Multiply handles POST /calculator/multiply
func (h *Handler) Multiply(w http.ResponseWriter, r *http.Request) {
	h.handleBinaryOp(w, r, calculation.Times)
}

// Divide handles POST /calculator/divide. A zero divisor is not an error:
// the result is +Inf, -Inf or NaN.
func (h *Handler) Divide(w http.ResponseWriter, r *http.Request) {
	h.handleBinaryOp(w, r, calculation.Divide)
}

func (h *Handler) handleBinaryOp(w http.ResponseWriter, r *http.Request, sign calculation.Sign) {
	var req CalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.rejectBody(w, r, sign.Name(), err)
		return
	}
	h.respondCompute(w, r, sign.Name(), req.A, req.B, sign)
}

// Compute handles POST /calculator/compute, where the sign travels in the body.
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.rejectBody(w, r, "compute", err)
		return
	}
	if req.Sign == nil {
		h.rejectBody(w, r, "compute", errMissingSign)
		return
	}
	h.respondCompute(w, r, "compute", req.Left, req.Right, *req.Sign)
}

func (h *Handler) rejectBody(w http.ResponseWriter, r *http.Request, opName string, err error) {
	ctx, span := tracer.Start(r.Context(), spanName(opName))
	defer span.End()
	h.fail(ctx, span, observability.LoggerWithTrace(ctx), opName, err, w)
}

func (h *Handler) respondCompute(w http.ResponseWriter, r *http.Request, opName string, a, b float64, sign calculation.Sign) {
	ctx := r.Context()
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, spanName(opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("calculator.sign", sign.String()),
			attribute.String("request.id", requestID),
			attribute.Float64("calculator.operand.a", a),
			attribute.Float64("calculator.operand.b", b),
		),
	)
	defer span.End()
	logger := observability.LoggerWithTrace(ctx)

	result, elapsed := h.compute(ctx, opName, a, b, sign)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", opName),
		zap.Stringer("sign", sign),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("result", result),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: opName,
		Sign:      sign,
		A:         a,
		B:         b,
		Result:    Number(result),
	})
}

// ---------------------------------------------------------------------------
// Chained operations
// ---------------------------------------------------------------------------

// Chain handles POST /calculator/chain. It folds the steps over a running
// total, one child span per step. The whole chain is validated before any
// step runs, so a bad step never produces a partial trace of results.
func (h *Handler) Chain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, spanName("chain"),
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()
	logger := observability.LoggerWithTrace(ctx)

	var req ChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(ctx, span, logger, "chain", err, w)
		return
	}

	if len(req.Steps) == 0 {
		observability.RecordError(ctx, span, logger, h.metrics.errors, "chain", "no steps provided", fmt.Errorf("steps array is empty"), http.StatusBadRequest, w)
		return
	}
	for i, step := range req.Steps {
		if step.Sign == nil {
			h.fail(ctx, span, logger, "chain", fmt.Errorf("step %d: %w", i, errMissingSign), w)
			return
		}
	}

	span.SetAttributes(
		attribute.Float64("chain.initial", req.Initial),
		attribute.Int("chain.steps_count", len(req.Steps)),
	)

	running := req.Initial
	results := make([]ChainResult, 0, len(req.Steps))

	for i, step := range req.Steps {
		sign := *step.Sign
		stepCtx, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.chain.step.%d.%s", i, sign.Name()),
			trace.WithAttributes(
				attribute.Int("chain.step.index", i),
				attribute.String("chain.step.sign", sign.String()),
				attribute.Float64("chain.step.input", running),
				attribute.Float64("chain.step.value", step.Value),
			),
		)

		prev := running
		var elapsed float64
		running, elapsed = h.compute(stepCtx, sign.Name(), prev, step.Value, sign)

		stepSpan.SetAttributes(attribute.Float64("chain.step.result", running))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Debug("chain step completed",
			zap.Int("step", i),
			zap.Stringer("sign", sign),
			zap.Float64("input", prev),
			zap.Float64("value", step.Value),
			zap.Float64("result", running),
			zap.Float64("duration_ms", elapsed),
		)

		results = append(results, ChainResult{
			Sign:   sign,
			Value:  step.Value,
			Result: Number(running),
		})
	}

	h.metrics.lastResult.Record(ctx, running, metric.WithAttributes(attribute.String("operation", "chain")))

	span.AddEvent("chain.complete", trace.WithAttributes(
		attribute.Float64("final_result", running),
		attribute.Int("total_steps", len(req.Steps)),
	))
	span.SetAttributes(attribute.Float64("chain.result", running))
	span.SetStatus(codes.Ok, "")

	logger.Info("chained calculation completed",
		zap.Float64("initial", req.Initial),
		zap.Float64("result", running),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, ChainResponse{
		Initial: req.Initial,
		Steps:   results,
		Result:  Number(running),
	})
}
