package calculator

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrorToken is what the display shows after a division by zero.
const ErrorToken = "Error"

// ErrInvalidDisplay is returned by ParseDisplay for text that is neither a
// number nor the error token.
var ErrInvalidDisplay = errors.New("invalid display value")

// Display is the value shown on the calculator: either the numeral being
// edited (kept as text so "0." and "12.50" survive) or the error state.
type Display struct {
	text   string
	failed bool
}

var (
	initialDisplay = Display{text: "0"}
	errorDisplay   = Display{failed: true}
)

func numberDisplay(text string) Display {
	return Display{text: text}
}

// ParseDisplay restores a display from its persisted text.
func ParseDisplay(s string) (Display, error) {
	if s == ErrorToken {
		return errorDisplay, nil
	}
	if _, err := strconv.ParseFloat(s, 64); err != nil && !errors.Is(err, strconv.ErrRange) {
		return Display{}, fmt.Errorf("%w: %q", ErrInvalidDisplay, s)
	}
	return numberDisplay(s), nil
}

func (d Display) String() string {
	if d.failed {
		return ErrorToken
	}
	return d.text
}

// IsError reports whether the display holds the error token.
func (d Display) IsError() bool {
	return d.failed
}

// Value returns the numeric value of the display, or NaN in the error state.
func (d Display) Value() float64 {
	if d.failed {
		return math.NaN()
	}
	return parseNumber(d.text)
}

// parseNumber reads the longest numeric prefix of s, so "12." is 12 and
// "Infinity5" is +Inf. Text with no numeric prefix is NaN.
func parseNumber(s string) float64 {
	for i := len(s); i > 0; i-- {
		v, err := strconv.ParseFloat(s[:i], 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return v
		}
	}
	return math.NaN()
}

// FormatNumber renders v the way a JavaScript engine converts a number to a
// string: shortest round-trip digits, no trailing ".0" on integers, and
// exponent notation only outside [1e-7, 1e21).
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	var b strings.Builder
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	e, _ := strconv.Atoi(exp)
	k, n := len(digits), e+1

	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)
	default:
		b.WriteString(digits[:1])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 < 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		b.WriteString(strconv.Itoa(abs(n - 1)))
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
