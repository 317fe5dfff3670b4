package token

import "strings"

// ArithTokenizer splits an arithmetic expression into number, operator and
// parenthesis tokens. Characters it does not recognise are dropped.
type ArithTokenizer struct {
	number strings.Builder
	tokens []Token
}

func NewArithTokenizer() *ArithTokenizer {
	return &ArithTokenizer{}
}

// Tokenize converts the input string into a slice of Tokens.
// Example: Input: `3 + 5 * (2 - 8)`
// The result carries no EOF marker; an empty slice means there was nothing to tokenize.
func (t *ArithTokenizer) Tokenize(input string) []Token {
	t.number.Reset()
	t.tokens = make([]Token, 0, len(input))

	for _, ch := range input {
		if isNumberChar(ch) {
			t.number.WriteRune(ch)
			continue
		}

		t.flushNumber()
		if tok, ok := FromSymbol(ch); ok {
			t.tokens = append(t.tokens, tok)
		}
	}
	t.flushNumber()

	return t.tokens
}

func (t *ArithTokenizer) flushNumber() {
	if t.number.Len() == 0 {
		return
	}
	t.tokens = append(t.tokens, Number(t.number.String()))
	t.number.Reset()
}

// isNumberChar accepts ASCII digits and the decimal point only.
func isNumberChar(ch rune) bool {
	return (ch >= '0' && ch <= '9') || ch == '.'
}
