package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperator is returned when an operation needs a binary operator
	// and receives OpNone or an out-of-range value.
	ErrInvalidOperator = errors.New("invalid operator")

	// ErrDivisionByZero is the only domain error. The engine never returns it
	// to callers; it switches the display to its error state instead.
	ErrDivisionByZero = errors.New("division by zero")
)

// Operator is a pending binary operation.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func (o Operator) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Symbol returns the keypad label for the operator.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "x"
	case OpDivide:
		return "/"
	}
	return ""
}

// IsBinary reports whether o is one of the four arithmetic operators.
func (o Operator) IsBinary() bool {
	return o >= OpAdd && o <= OpDivide
}

// evaluate applies op to a and b. Division by a zero divisor (either sign)
// yields ErrDivisionByZero.
func evaluate(op Operator, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, FormatNumber(a), FormatNumber(b))
		}
		return a / b, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrInvalidOperator, op)
}
