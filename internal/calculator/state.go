package calculator

import (
	"encoding/json"
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

// GetCalculation handles GET /calculation. The result is derived from the
// snapshot on every request.
func (h *Handler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	_, span := tracer.Start(r.Context(), "calculation.get")
	defer span.End()

	state := h.store.State()
	span.SetAttributes(stateAttributes(state)...)

	handlers.WriteJSON(w, http.StatusOK, newCalculationView(state))
}

// ListSigns handles GET /calculation/signs: the selectable row in display
// order, with the stored sign marked.
func (h *Handler) ListSigns(w http.ResponseWriter, r *http.Request) {
	selected := h.store.State().Sign

	signs := calculation.Signs()
	options := make([]SignOption, 0, len(signs))
	for _, sign := range signs {
		options = append(options, SignOption{
			Sign:      sign,
			Operation: sign.Name(),
			Selected:  sign == selected,
		})
	}

	handlers.WriteJSON(w, http.StatusOK, options)
}

// SetSign handles PUT /calculation/sign, the store's only mutation.
func (h *Handler) SetSign(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculation.set_sign",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()
	logger := observability.LoggerWithTrace(ctx)

	var req SetSignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(ctx, span, logger, "set_sign", err, w)
		return
	}

	previous, state := h.store.SetSign(req.Sign)

	h.metrics.signChanges.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", previous.String()),
		attribute.String("to", state.Sign.String()),
	))

	span.SetAttributes(stateAttributes(state)...)
	span.SetStatus(codes.Ok, "")

	logger.Info("sign selected",
		zap.Stringer("previous", previous),
		zap.Stringer("sign", state.Sign),
		zap.Float64("result", state.Result()),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, newCalculationView(state))
}

func stateAttributes(s calculation.State) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Float64("calculation.left", s.Left),
		attribute.Float64("calculation.right", s.Right),
		attribute.String("calculation.sign", s.Sign.String()),
		attribute.Float64("calculation.result", s.Result()),
	}
}
