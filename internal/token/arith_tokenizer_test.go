package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "precedence expression",
			input: "3 + 5 * (2 - 8)",
			expected: []Token{
				Number("3"), {PLUS, "+"}, Number("5"), {STAR, "*"},
				{LPAREN, "("}, Number("2"), {MINUS, "-"}, Number("8"), {RPAREN, ")"},
			},
		},
		{
			name:     "decimal literals",
			input:    "3.5+1.5",
			expected: []Token{Number("3.5"), {PLUS, "+"}, Number("1.5")},
		},
		{
			name:     "single literal",
			input:    "42",
			expected: []Token{Number("42")},
		},
		{
			name:     "delimiters without digits are kept as written",
			input:    "(+)",
			expected: []Token{{LPAREN, "("}, {PLUS, "+"}, {RPAREN, ")"}},
		},
		{
			name:     "malformed literal is not rejected",
			input:    "1.2.3 / 2",
			expected: []Token{Number("1.2.3"), {SLASH, "/"}, Number("2")},
		},
		{
			name:     "unknown characters split literals and are dropped",
			input:    "12a34 x 5",
			expected: []Token{Number("12"), Number("34"), Number("5")},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []Token{},
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: []Token{},
		},
	}

	tokenizer := NewArithTokenizer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizer.Tokenize(tt.input))
		})
	}
}

func TestArithTokenizer_WhitespaceIgnored(t *testing.T) {
	tokenizer := NewArithTokenizer()

	compact := tokenizer.Tokenize("3+5")
	spaced := tokenizer.Tokenize("3 + 5")

	assert.Equal(t, compact, spaced)
}

func TestArithTokenizer_ReusableAcrossCalls(t *testing.T) {
	tokenizer := NewArithTokenizer()

	first := tokenizer.Tokenize("1 + 2")
	second := tokenizer.Tokenize("7")

	assert.Len(t, first, 3)
	assert.Equal(t, []Token{Number("7")}, second)
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "NUMBER", NUMBER.String())
	assert.Equal(t, "RPAREN", RPAREN.String())
	assert.Equal(t, "UNKNOWN", Type(99).String())
	assert.Equal(t, "NUMBER(4.2)", Number("4.2").String())
	assert.True(t, SLASH.IsOperator())
	assert.False(t, LPAREN.IsOperator())
}
