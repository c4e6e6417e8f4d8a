package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go-chi-calculator/internal/handlers"
	"go-chi-calculator/internal/observability"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Handler is the HTTP view of one calculator widget. Requests may arrive
// concurrently; the mutex turns them back into one key press at a time.
type Handler struct {
	mu     sync.Mutex
	engine *Engine
}

// NewHandler serves engine over HTTP.
func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

// ---------------------------------------------------------------------------
// Handlers — read-only
// ---------------------------------------------------------------------------

// GetState handles GET /calculator
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	s := h.engine.State()
	h.mu.Unlock()

	handlers.WriteJSON(w, http.StatusOK, newStateResponse(s))
}

// ListKeys handles GET /calculator/keys
func (h *Handler) ListKeys(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, KeysResponse{Keys: Keys()})
}

// ---------------------------------------------------------------------------
// Handlers — key presses
// ---------------------------------------------------------------------------

// PressKey handles POST /calculator/keys/{key}
func (h *Handler) PressKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.press",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	key, err := ParseKey(chi.URLParam(r, "key"))
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", "unknown key", err, http.StatusBadRequest, w)
		return
	}

	h.mu.Lock()
	err = h.press(ctx, logger, key)
	s := h.engine.State()
	h.mu.Unlock()

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "press", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, newStateResponse(s))
}

// Sequence handles POST /calculator/sequence — presses a list of keys in
// order under one parent span with a child span per key. The whole list is
// validated before the first key is pressed.
func (h *Handler) Sequence(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.sequence",
		trace.WithAttributes(
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Keys) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "sequence", "no keys provided", fmt.Errorf("keys array is empty"), http.StatusBadRequest, w)
		return
	}

	keys := make([]Key, 0, len(req.Keys))
	for i, raw := range req.Keys {
		key, err := ParseKey(raw)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "sequence", fmt.Sprintf("unknown key at index %d", i), err, http.StatusBadRequest, w)
			return
		}
		keys = append(keys, key)
	}

	span.SetAttributes(attribute.Int("sequence.keys_count", len(keys)))

	h.mu.Lock()
	steps := make([]SequenceStep, 0, len(keys))
	for i, key := range keys {
		if err := h.press(ctx, logger, key); err != nil {
			h.mu.Unlock()
			observability.RecordError(ctx, span, logger, errorCounter, "sequence", fmt.Sprintf("key %d failed", i), err, http.StatusBadRequest, w)
			return
		}
		steps = append(steps, SequenceStep{Key: key, Display: h.engine.Display().String()})
	}
	s := h.engine.State()
	h.mu.Unlock()

	span.AddEvent("sequence.complete", trace.WithAttributes(
		attribute.String("display", s.Display.String()),
		attribute.Int("total_keys", len(keys)),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("key sequence completed",
		zap.Int("keys", len(keys)),
		zap.String("display", s.Display.String()),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, SequenceResponse{
		Steps: steps,
		State: newStateResponse(s),
	})
}

// press runs one key inside a child span and records key metrics.
// The caller holds h.mu.
func (h *Handler) press(ctx context.Context, logger *zap.Logger, key Key) error {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.key.%s", key),
		trace.WithAttributes(
			attribute.String("calculator.key", string(key)),
			attribute.String("calculator.display.before", h.engine.Display().String()),
		),
	)
	defer span.End()

	start := time.Now()
	err := h.engine.Press(ctx, key)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	display := h.engine.Display()

	attrs := metric.WithAttributes(attribute.String("key", string(key)))
	keyCounter.Add(ctx, 1, attrs)
	keyHistogram.Record(ctx, elapsed, attrs)

	span.SetAttributes(
		attribute.String("calculator.display.after", display.String()),
		attribute.Bool("calculator.error", display.IsError()),
	)
	if display.IsError() {
		span.AddEvent("calculator.error_state")
	}
	span.SetStatus(codes.Ok, "")

	logger.Debug("key pressed",
		zap.String("key", string(key)),
		zap.String("display", display.String()),
		zap.Float64("duration_ms", elapsed),
	)
	return nil
}
