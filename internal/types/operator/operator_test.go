package operator

import (
	"encoding/json"
	"testing"

	"github.com/DjordjeVuckovic/calc-tree/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, s := range []string{"+", "-", "*", "/"} {
		op, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, op.String())
	}

	_, err := Parse("^")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
}

func TestOperator_Priority(t *testing.T) {
	assert.Equal(t, 2, Mul.Priority())
	assert.Equal(t, 2, Div.Priority())
	assert.Equal(t, 1, Add.Priority())
	assert.Equal(t, 1, Sub.Priority())
	assert.Equal(t, 0, Operator("^").Priority())
}

func TestFromToken(t *testing.T) {
	op, err := FromToken(token.Token{Type: token.SLASH, Value: "/"})
	require.NoError(t, err)
	assert.Equal(t, Div, op)

	_, err = FromToken(token.Token{Type: token.LPAREN, Value: "("})
	assert.Error(t, err)
}

func TestOperator_JSON(t *testing.T) {
	var payload struct {
		Op Operator `json:"op"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"op":"*"}`), &payload))
	assert.Equal(t, Mul, payload.Op)

	assert.Error(t, json.Unmarshal([]byte(`{"op":"%"}`), &payload))
}
