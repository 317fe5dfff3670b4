package operator

import (
	"fmt"

	"github.com/DjordjeVuckovic/calc-tree/internal/token"
)

// Operator is one of the four left-associative binary arithmetic operators.
//
// Usage:
//
//	op, _ := operator.Parse("*")
//	op.Priority() // 2
type Operator string

const (
	Add Operator = "+"
	Sub Operator = "-"
	Mul Operator = "*"
	Div Operator = "/"
)

func Parse(s string) (Operator, error) {
	op := Operator(s)
	switch op {
	case Add, Sub, Mul, Div:
		return op, nil
	default:
		return "", fmt.Errorf("invalid operator: %q (must be one of + - * /)", s)
	}
}

// FromToken maps an operator token to its Operator.
func FromToken(tok token.Token) (Operator, error) {
	switch tok.Type {
	case token.PLUS:
		return Add, nil
	case token.MINUS:
		return Sub, nil
	case token.STAR:
		return Mul, nil
	case token.SLASH:
		return Div, nil
	default:
		return "", fmt.Errorf("token %s is not an operator", tok.Type)
	}
}

// Priority returns the binding strength; higher binds tighter.
func (o Operator) Priority() int {
	switch o {
	case Mul, Div:
		return 2
	case Add, Sub:
		return 1
	default:
		return 0
	}
}

// String returns the string representation of the operator
func (o Operator) String() string {
	return string(o)
}

// Validate ensures the operator has a valid value
func (o Operator) Validate() error {
	_, err := Parse(string(o))
	return err
}

// MarshalText implements encoding.TextMarshaler for JSON serialization
func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON deserialization
func (o *Operator) UnmarshalText(text []byte) error {
	op, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}
