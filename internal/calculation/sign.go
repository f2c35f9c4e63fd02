package calculation

import (
	"errors"
	"fmt"
)

// ErrUnknownSign is returned when text does not name one of the four signs.
var ErrUnknownSign = errors.New("unknown sign")

type op uint8

const (
	opAdd op = iota
	opSubtract
	opMultiply
	opDivide
)

// Sign selects the arithmetic operator applied to a calculation.
//
// The set is closed: the field is unexported, so the only values that exist
// outside this package are Plus, Minus, Times and Divide. The zero value is Plus.
type Sign struct {
	op op
}

var (
	Plus   = Sign{op: opAdd}
	Minus  = Sign{op: opSubtract}
	Times  = Sign{op: opMultiply}
	Divide = Sign{op: opDivide}
)

var (
	symbols = [...]string{"+", "-", "x", "/"}
	names   = [...]string{"add", "subtract", "multiply", "divide"}
)

// Signs returns every sign in display order.
func Signs() []Sign {
	return []Sign{Plus, Minus, Times, Divide}
}

// ParseSign accepts a symbol ("+", "-", "x", "/") or an operation name
// ("add", "subtract", "multiply", "divide").
func ParseSign(s string) (Sign, error) {
	for i := range symbols {
		if s == symbols[i] || s == names[i] {
			return Sign{op: op(i)}, nil
		}
	}
	return Plus, fmt.Errorf("%w: %q", ErrUnknownSign, s)
}

// String returns the symbol.
func (s Sign) String() string {
	return symbols[s.op]
}

// Name returns the operation name, e.g. "multiply" for Times.
func (s Sign) Name() string {
	return names[s.op]
}

func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Sign) UnmarshalText(text []byte) error {
	parsed, err := ParseSign(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
