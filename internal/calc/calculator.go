// Package calc wires the tokenizer, tree builder and evaluator into the
// single operation exposed to callers.
package calc

import (
	"github.com/DjordjeVuckovic/calc-tree/internal/domain/tree"
	"github.com/DjordjeVuckovic/calc-tree/internal/eval"
	"github.com/DjordjeVuckovic/calc-tree/internal/parser"
	"github.com/DjordjeVuckovic/calc-tree/internal/token"
)

// Calculator is safe for concurrent use; each call gets its own tokenizer and tree.
type Calculator struct {
	builder *parser.TreeBuilder
}

func NewCalculator(opts ...parser.TreeBuilderOption) *Calculator {
	return &Calculator{builder: parser.NewTreeBuilder(opts...)}
}

// Parse tokenizes text and builds its expression tree.
func (c *Calculator) Parse(text string) (tree.Node, error) {
	tokens := token.NewArithTokenizer().Tokenize(text)
	return c.builder.Build(tokens)
}

// Evaluate returns the value of text, or a parse, structure or division-by-zero error.
func (c *Calculator) Evaluate(text string) (float64, error) {
	root, err := c.Parse(text)
	if err != nil {
		return 0, err
	}
	return eval.Evaluate(root)
}

var defaultCalculator = NewCalculator()

// EvaluateExpression evaluates text with an untraced Calculator.
func EvaluateExpression(text string) (float64, error) {
	return defaultCalculator.Evaluate(text)
}
