package token

import "fmt"

type Type int

const (
	EOF Type = iota
	NUMBER
	PLUS
	MINUS
	STAR
	SLASH
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether the type is one of the four binary arithmetic operators.
func (t Type) IsOperator() bool {
	return t == PLUS || t == MINUS || t == STAR || t == SLASH
}

// Token represents a lexical token with its type and literal value.
type Token struct {
	Type  Type
	Value string
}

func (t Token) String() string {
	if t.Type == NUMBER {
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
	return t.Type.String()
}

// Number builds a NUMBER token for the given literal.
func Number(literal string) Token {
	return Token{Type: NUMBER, Value: literal}
}

var symbols = map[rune]Type{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
	'(': LPAREN,
	')': RPAREN,
}

// FromSymbol returns the token for a single operator or parenthesis character.
func FromSymbol(ch rune) (Token, bool) {
	t, ok := symbols[ch]
	if !ok {
		return Token{}, false
	}
	return Token{Type: t, Value: string(ch)}, true
}
