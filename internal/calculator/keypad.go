package calculator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned for a key name that is not on the keypad.
var ErrUnknownKey = errors.New("unknown key")

// Key is one keypad action.
type Key string

const (
	Key0        Key = "0"
	Key1        Key = "1"
	Key2        Key = "2"
	Key3        Key = "3"
	Key4        Key = "4"
	Key5        Key = "5"
	Key6        Key = "6"
	Key7        Key = "7"
	Key8        Key = "8"
	Key9        Key = "9"
	KeyDecimal  Key = "decimal"
	KeyAdd      Key = "add"
	KeySubtract Key = "subtract"
	KeyMultiply Key = "multiply"
	KeyDivide   Key = "divide"
	KeyEquals   Key = "equals"
	KeySquare   Key = "square"
	KeyClear    Key = "clear"
)

// keypadLayout lists the keys row by row as they appear on the widget.
var keypadLayout = []Key{
	Key7, Key8, Key9, KeyDivide,
	Key4, Key5, Key6, KeyMultiply,
	Key1, Key2, Key3, KeySubtract,
	Key0, KeyDecimal, KeyEquals, KeyAdd,
	KeySquare, KeyClear,
}

// keyLabels maps printed key labels to keys.
var keyLabels = map[string]Key{
	".":  KeyDecimal,
	"+":  KeyAdd,
	"-":  KeySubtract,
	"x":  KeyMultiply,
	"*":  KeyMultiply,
	"/":  KeyDivide,
	"=":  KeyEquals,
	"x²": KeySquare,
	"AC": KeyClear,
}

// Keys returns every key in keypad order.
func Keys() []Key {
	keys := make([]Key, len(keypadLayout))
	copy(keys, keypadLayout)
	return keys
}

// ParseKey accepts a key name ("add") or its printed label ("+").
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if k, ok := keyLabels[s]; ok {
		return k, nil
	}
	k := Key(strings.ToLower(s))
	if k.valid() {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// IsDigit reports whether k is one of 0-9.
func (k Key) IsDigit() bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

// Operator returns the binary operator bound to k, or OpNone.
func (k Key) Operator() Operator {
	switch k {
	case KeyAdd:
		return OpAdd
	case KeySubtract:
		return OpSubtract
	case KeyMultiply:
		return OpMultiply
	case KeyDivide:
		return OpDivide
	}
	return OpNone
}

func (k Key) valid() bool {
	for _, known := range keypadLayout {
		if k == known {
			return true
		}
	}
	return false
}

// Press dispatches k to the engine operation it is bound to.
func (e *Engine) Press(ctx context.Context, k Key) error {
	switch {
	case k.IsDigit():
		return e.InputDigit(ctx, string(k))
	case k.Operator() != OpNone:
		return e.SetOperator(ctx, k.Operator())
	}

	switch k {
	case KeyDecimal:
		e.InputDecimal(ctx)
	case KeyEquals:
		e.CalculateResult(ctx)
	case KeySquare:
		e.SquareNumber(ctx)
	case KeyClear:
		e.Clear(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, string(k))
	}
	return nil
}
