package apperr

import (
	"errors"
	"fmt"
)

// Kind identifies a class of calculation error.
type Kind string

const (
	KindParse          Kind = "parse"
	KindStructure      Kind = "structure"
	KindDivisionByZero Kind = "division_by_zero"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	switch k {
	case KindParse, KindStructure, KindDivisionByZero:
		return k, nil
	default:
		return "", fmt.Errorf("invalid error kind: %q", s)
	}
}

// Sentinels for errors.Is checks against any error of the matching kind.
var (
	ErrParse          = errors.New("parse error")
	ErrStructure      = errors.New("structure error")
	ErrDivisionByZero = errors.New("division by zero")
)

// CalcError is implemented by every error the calculation pipeline produces.
type CalcError interface {
	error
	Kind() Kind
}

// ParseError reports a numeric literal that is not a valid decimal numeral.
type ParseError struct {
	Literal string
	Err     error
}

func NewParse(literal string, err error) *ParseError {
	return &ParseError{Literal: literal, Err: err}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number literal %q", e.Literal)
}

func (e *ParseError) Kind() Kind { return KindParse }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

func (e *ParseError) Unwrap() error { return e.Err }

// StructureError reports a token sequence that cannot form a single expression tree.
type StructureError struct {
	Reason string
}

func NewStructure(reason string) *StructureError {
	return &StructureError{Reason: reason}
}

func (e *StructureError) Error() string {
	return "malformed expression: " + e.Reason
}

func (e *StructureError) Kind() Kind { return KindStructure }

func (e *StructureError) Is(target error) bool { return target == ErrStructure }

// DivisionByZeroError reports a division whose right operand evaluated to exactly zero.
type DivisionByZeroError struct {
	Dividend float64
}

func NewDivisionByZero(dividend float64) *DivisionByZeroError {
	return &DivisionByZeroError{Dividend: dividend}
}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

func (e *DivisionByZeroError) Kind() Kind { return KindDivisionByZero }

func (e *DivisionByZeroError) Is(target error) bool { return target == ErrDivisionByZero }

// KindOf returns the kind of the first calculation error in err's chain.
func KindOf(err error) (Kind, bool) {
	var ce CalcError
	if errors.As(err, &ce) {
		return ce.Kind(), true
	}
	return "", false
}
