package calculator

import (
	"context"
	"errors"
	"testing"
)

func TestKeysCoverEveryAction(t *testing.T) {
	keys := Keys()

	seen := make(map[Key]bool)
	for _, k := range keys {
		if seen[k] {
			t.Fatalf("duplicate key %q", k)
		}
		seen[k] = true
	}

	// 0-9, decimal, four operators, equals, square, clear.
	if len(seen) != 18 {
		t.Fatalf("expected 18 keys, got %d", len(seen))
	}

	keys[0] = "mutated"
	if Keys()[0] != Key7 {
		t.Fatal("expected Keys to return a copy")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{in: "0", want: Key0},
		{in: "9", want: Key9},
		{in: "add", want: KeyAdd},
		{in: "ADD", want: KeyAdd},
		{in: " equals ", want: KeyEquals},
		{in: "+", want: KeyAdd},
		{in: "-", want: KeySubtract},
		{in: "x", want: KeyMultiply},
		{in: "*", want: KeyMultiply},
		{in: "/", want: KeyDivide},
		{in: "=", want: KeyEquals},
		{in: ".", want: KeyDecimal},
		{in: "x²", want: KeySquare},
		{in: "square", want: KeySquare},
		{in: "AC", want: KeyClear},
		{in: "clear", want: KeyClear},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKey(tc.in)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}

	for _, bad := range []string{"", "10", "percent", "%", "sqrt"} {
		if _, err := ParseKey(bad); !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("parse %q: expected ErrUnknownKey, got %v", bad, err)
		}
	}
}

func TestKeyOperator(t *testing.T) {
	tests := map[Key]Operator{
		KeyAdd:      OpAdd,
		KeySubtract: OpSubtract,
		KeyMultiply: OpMultiply,
		KeyDivide:   OpDivide,
		KeyEquals:   OpNone,
		Key5:        OpNone,
	}
	for k, want := range tests {
		if got := k.Operator(); got != want {
			t.Fatalf("key %q: expected %s, got %s", k, want, got)
		}
	}
}

func TestPressUnknownKeyLeavesStateAlone(t *testing.T) {
	e := NewEngine(context.Background(), nil)
	press(t, e, "4", "+")

	if err := e.Press(context.Background(), Key("percent")); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}

	s := e.State()
	if s.Operator != OpAdd || !s.AwaitingSecondOperand {
		t.Fatalf("expected pending add, got %+v", s)
	}
}

func TestEveryKeyIsBound(t *testing.T) {
	for _, k := range Keys() {
		e := NewEngine(context.Background(), nil)
		if err := e.Press(context.Background(), k); err != nil {
			t.Fatalf("press %q: %v", k, err)
		}
	}
}

func TestOperatorStringAndSymbol(t *testing.T) {
	tests := []struct {
		op     Operator
		name   string
		symbol string
	}{
		{op: OpNone, name: "none", symbol: ""},
		{op: OpAdd, name: "add", symbol: "+"},
		{op: OpSubtract, name: "subtract", symbol: "-"},
		{op: OpMultiply, name: "multiply", symbol: "x"},
		{op: OpDivide, name: "divide", symbol: "/"},
		{op: Operator(42), name: "Operator(42)", symbol: ""},
	}

	for _, tc := range tests {
		if got := tc.op.String(); got != tc.name {
			t.Fatalf("expected name %q, got %q", tc.name, got)
		}
		if got := tc.op.Symbol(); got != tc.symbol {
			t.Fatalf("expected symbol %q, got %q", tc.symbol, got)
		}
	}

	if _, err := evaluate(Operator(42), 1, 2); !errors.Is(err, ErrInvalidOperator) {
		t.Fatalf("expected ErrInvalidOperator, got %v", err)
	}
}
