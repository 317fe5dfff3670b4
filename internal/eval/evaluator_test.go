package eval

import (
	"math"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/calc-tree/internal/apperr"
	"github.com/DjordjeVuckovic/calc-tree/internal/domain/tree"
	"github.com/DjordjeVuckovic/calc-tree/internal/types/operator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Leaf(t *testing.T) {
	v, err := Evaluate(tree.NewLeaf("42"))
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestEvaluate_NilRootIsZero(t *testing.T) {
	v, err := Evaluate(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestEvaluate_Operators(t *testing.T) {
	tests := []struct {
		op       operator.Operator
		left     string
		right    string
		expected float64
	}{
		{operator.Add, "3.5", "1.5", 5},
		{operator.Sub, "10", "2", 8},
		{operator.Mul, "6", "7", 42},
		{operator.Div, "7", "2", 3.5},
		{operator.Div, "1", "3", 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.left+tt.op.String()+tt.right, func(t *testing.T) {
			v, err := Evaluate(tree.NewBinary(tt.op, tree.NewLeaf(tt.left), tree.NewLeaf(tt.right)))
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, v, 1e-12)
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	for _, zero := range []string{"0", "0.0", ".0", "000"} {
		t.Run(zero, func(t *testing.T) {
			_, err := Evaluate(tree.NewBinary(operator.Div, tree.NewLeaf("5"), tree.NewLeaf(zero)))
			assert.ErrorIs(t, err, apperr.ErrDivisionByZero)
		})
	}
}

func TestEvaluate_DivisionByComputedZero(t *testing.T) {
	// 1 / (2 - 2)
	root := tree.NewBinary(operator.Div,
		tree.NewLeaf("1"),
		tree.NewBinary(operator.Sub, tree.NewLeaf("2"), tree.NewLeaf("2")),
	)

	_, err := Evaluate(root)
	var dz *apperr.DivisionByZeroError
	require.ErrorAs(t, err, &dz)
	assert.Equal(t, 1.0, dz.Dividend)
}

func TestEvaluate_ZeroNumeratorIsFine(t *testing.T) {
	v, err := Evaluate(tree.NewBinary(operator.Div, tree.NewLeaf("0"), tree.NewLeaf("4")))
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestEvaluate_ParseError(t *testing.T) {
	root := tree.NewBinary(operator.Add, tree.NewLeaf("1.2.3"), tree.NewLeaf("1"))

	_, err := Evaluate(root)
	var pe *apperr.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "1.2.3", pe.Literal)
}

func TestEvaluate_Idempotent(t *testing.T) {
	root := tree.NewBinary(operator.Mul,
		tree.NewBinary(operator.Add, tree.NewLeaf("2"), tree.NewLeaf("3")),
		tree.NewLeaf("4"),
	)
	before := root.String()

	first, err := Evaluate(root)
	require.NoError(t, err)
	second, err := Evaluate(root)
	require.NoError(t, err)

	assert.Equal(t, 20.0, first)
	assert.Equal(t, first, second)
	assert.Equal(t, before, root.String())
}

func TestParseLiteral(t *testing.T) {
	valid := map[string]float64{"42": 42, "3.5": 3.5, ".5": 0.5, "7.": 7, "007": 7}
	for literal, want := range valid {
		v, err := ParseLiteral(literal)
		require.NoError(t, err, literal)
		assert.Equal(t, want, v, literal)
	}

	for _, literal := range []string{"", ".", "1.2.3", "1e5", "inf", "NaN", "-1", "1_000"} {
		_, err := ParseLiteral(literal)
		assert.ErrorIs(t, err, apperr.ErrParse, literal)
	}
}

func TestParseLiteral_OutOfRange(t *testing.T) {
	v, err := ParseLiteral(strings.Repeat("9", 400))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = ParseLiteral("0." + strings.Repeat("0", 400) + "1")
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestEvaluate_NonFiniteArithmetic(t *testing.T) {
	huge := tree.NewLeaf("1" + strings.Repeat("0", 400))

	v, err := Evaluate(tree.NewBinary(operator.Sub, huge, huge))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))

	_, err = Evaluate(tree.NewBinary(operator.Div, huge, tree.NewLeaf("0.0")))
	assert.ErrorIs(t, err, apperr.ErrDivisionByZero)
}

func TestApply_UnknownOperator(t *testing.T) {
	v, err := Apply(operator.Operator("^"), 2, 3)
	assert.Error(t, err)
	assert.False(t, math.IsNaN(v))
}
