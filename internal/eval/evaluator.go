// Package eval computes the numeric value of an expression tree.
package eval

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/DjordjeVuckovic/calc-tree/internal/apperr"
	"github.com/DjordjeVuckovic/calc-tree/internal/domain/tree"
	"github.com/DjordjeVuckovic/calc-tree/internal/types/operator"
)

// Evaluate walks the tree and returns its value. A nil root evaluates to 0.
//
// Leaves are parsed as decimal numerals; a malformed literal yields a
// *apperr.ParseError. Division by an operand that is exactly zero yields a
// *apperr.DivisionByZeroError. The tree is never modified.
func Evaluate(root tree.Node) (float64, error) {
	switch n := root.(type) {
	case nil:
		return 0, nil
	case *tree.Leaf:
		return ParseLiteral(n.Literal)
	case *tree.Binary:
		left, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		return Apply(n.Op, left, right)
	default:
		return 0, fmt.Errorf("unsupported node type %T", root)
	}
}

// Apply computes left op right.
func Apply(op operator.Operator, left, right float64) (float64, error) {
	switch op {
	case operator.Add:
		return left + right, nil
	case operator.Sub:
		return left - right, nil
	case operator.Mul:
		return left * right, nil
	case operator.Div:
		if right == 0 {
			return 0, apperr.NewDivisionByZero(left)
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("unsupported operator %q", op)
	}
}

// ParseLiteral accepts digits with at most one decimal point, e.g. "42", "3.5", ".5", "7.".
// A numeral too large for float64 evaluates to +Inf.
func ParseLiteral(literal string) (float64, error) {
	if !isDecimalNumeral(literal) {
		return 0, apperr.NewParse(literal, strconv.ErrSyntax)
	}
	v, err := strconv.ParseFloat(literal, 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	if err != nil {
		return 0, apperr.NewParse(literal, err)
	}
	return v, nil
}

func isDecimalNumeral(s string) bool {
	digits, dots := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && dots <= 1
}
