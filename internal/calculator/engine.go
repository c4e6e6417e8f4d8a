package calculator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// DisplayKey is the store key the display text is persisted under.
const DisplayKey = "display"

// ErrInvalidDigit is returned by InputDigit for anything but a single '0'-'9'.
var ErrInvalidDigit = errors.New("invalid digit")

// Store persists the display text between sessions.
type Store interface {
	Load(ctx context.Context, key string) (value string, found bool, err error)
	Save(ctx context.Context, key, value string) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for persistence warnings and evaluation
// events. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Engine is the calculator state machine. It is not safe for concurrent use;
// callers serialize key presses.
//
// After a division by zero the display is in its error state. Operators,
// equals and square are ignored until a digit, the decimal point or clear
// is pressed; digit and decimal entry start over from a cleared engine.
type Engine struct {
	store  Store
	logger *zap.Logger

	display               Display
	operator              Operator
	firstOperand          float64
	hasFirstOperand       bool
	awaitingSecondOperand bool
}

// NewEngine returns an engine in its initial state, seeded with the display
// persisted in store when there is one. A nil store disables persistence.
func NewEngine(ctx context.Context, store Store, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		logger:  zap.NewNop(),
		display: initialDisplay,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.load(ctx)
	return e
}

// Display returns the current display.
func (e *Engine) Display() Display {
	return e.display
}

// InputDigit enters one digit, starting a new number when an operand is
// awaited and replacing a lone "0".
func (e *Engine) InputDigit(ctx context.Context, digit string) error {
	if len(digit) != 1 || digit[0] < '0' || digit[0] > '9' {
		return fmt.Errorf("%w: %q", ErrInvalidDigit, digit)
	}

	current := e.restartIfFailed()
	if e.awaitingSecondOperand {
		e.awaitingSecondOperand = false
		e.setDisplay(ctx, numberDisplay(digit))
		return nil
	}
	if current.text == "0" {
		e.setDisplay(ctx, numberDisplay(digit))
		return nil
	}
	e.setDisplay(ctx, numberDisplay(current.text+digit))
	return nil
}

// InputDecimal adds a decimal point; a number holds at most one.
func (e *Engine) InputDecimal(ctx context.Context) {
	current := e.restartIfFailed()
	if e.awaitingSecondOperand {
		e.awaitingSecondOperand = false
		e.setDisplay(ctx, numberDisplay("0."))
		return
	}
	if strings.Contains(current.text, ".") {
		return
	}
	e.setDisplay(ctx, numberDisplay(current.text+"."))
}

// SetOperator handles a press of +, -, x or /. Pressing an operator right
// after another one only replaces the pending operator; otherwise a pending
// operation is evaluated first so operations chain left to right.
func (e *Engine) SetOperator(ctx context.Context, op Operator) error {
	if !op.IsBinary() {
		return fmt.Errorf("%w: %s", ErrInvalidOperator, op)
	}
	if e.display.IsError() {
		return nil
	}

	value := e.display.Value()

	if e.operator != OpNone && e.awaitingSecondOperand {
		e.operator = op
		return nil
	}

	if !e.hasFirstOperand {
		e.firstOperand, e.hasFirstOperand = value, true
	} else if e.operator != OpNone {
		result, err := e.compute(ctx, e.operator, e.firstOperand, value)
		if err != nil {
			e.fail(ctx, err)
			return nil
		}
		e.setDisplay(ctx, numberDisplay(FormatNumber(result)))
		e.firstOperand = result
	}

	e.operator = op
	e.awaitingSecondOperand = true
	return nil
}

// CalculateResult handles "=". It does nothing until an operator and its
// second operand have both been entered.
func (e *Engine) CalculateResult(ctx context.Context) {
	if e.display.IsError() || e.operator == OpNone || e.awaitingSecondOperand {
		return
	}

	result, err := e.compute(ctx, e.operator, e.firstOperand, e.display.Value())
	if err != nil {
		e.fail(ctx, err)
		return
	}

	e.setDisplay(ctx, numberDisplay(FormatNumber(result)))
	e.firstOperand = result
	e.operator = OpNone
	e.awaitingSecondOperand = false
}

// SquareNumber squares the display and makes the square the first operand.
// The pending operator and the awaiting flag are left as they are.
func (e *Engine) SquareNumber(ctx context.Context) {
	if e.display.IsError() {
		return
	}

	value := e.display.Value()
	squared := value * value

	e.setDisplay(ctx, numberDisplay(FormatNumber(squared)))
	e.firstOperand, e.hasFirstOperand = squared, true
}

// Clear resets the engine to its initial state.
func (e *Engine) Clear(ctx context.Context) {
	e.resetOperands()
	e.setDisplay(ctx, initialDisplay)
}

func (e *Engine) resetOperands() {
	e.operator = OpNone
	e.firstOperand, e.hasFirstOperand = 0, false
	e.awaitingSecondOperand = false
}

// restartIfFailed drops the operands when the display is in the error state
// and returns the display that digit entry should build on.
func (e *Engine) restartIfFailed() Display {
	if !e.display.IsError() {
		return e.display
	}
	e.resetOperands()
	return initialDisplay
}

func (e *Engine) compute(ctx context.Context, op Operator, a, b float64) (float64, error) {
	attrs := metric.WithAttributes(attribute.String("operation", op.String()))

	result, err := evaluate(op, a, b)
	if err != nil {
		if errors.Is(err, ErrDivisionByZero) {
			divByZeroCounter.Add(ctx, 1, attrs)
		}
		return 0, err
	}

	evaluationCounter.Add(ctx, 1, attrs)
	resultGauge.Record(ctx, result, attrs)
	return result, nil
}

func (e *Engine) fail(ctx context.Context, err error) {
	e.logger.Info("calculation failed", zap.Error(err))
	e.resetOperands()
	e.setDisplay(ctx, errorDisplay)
}

func (e *Engine) setDisplay(ctx context.Context, d Display) {
	if d == e.display {
		return
	}
	e.display = d
	e.save(ctx)
}

// load seeds the display from the store. When the stored value cannot be
// read or used, the initial display is written back so the store matches
// what the engine shows.
func (e *Engine) load(ctx context.Context) {
	if e.store == nil {
		return
	}

	value, found, err := e.store.Load(ctx, DisplayKey)
	if err != nil {
		persistenceFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "load")))
		e.logger.Warn("load display failed", zap.String("key", DisplayKey), zap.Error(err))
		e.save(ctx)
		return
	}
	if !found {
		return
	}

	d, err := ParseDisplay(value)
	if err != nil {
		e.logger.Warn("ignoring persisted display", zap.String("key", DisplayKey), zap.Error(err))
		e.save(ctx)
		return
	}
	e.display = d
}

// save is best effort: a failed write is logged and counted, and the
// in-memory state stays as it is.
func (e *Engine) save(ctx context.Context) {
	if e.store == nil {
		return
	}

	value := e.display.String()
	if err := e.store.Save(ctx, DisplayKey, value); err != nil {
		persistenceFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "save")))
		e.logger.Warn("persist display failed",
			zap.String("key", DisplayKey),
			zap.String("display", value),
			zap.Error(err),
		)
	}
}
