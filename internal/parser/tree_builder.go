package parser

import (
	"fmt"

	"github.com/DjordjeVuckovic/calc-tree/internal/apperr"
	"github.com/DjordjeVuckovic/calc-tree/internal/domain/tree"
	"github.com/DjordjeVuckovic/calc-tree/internal/token"
	"github.com/DjordjeVuckovic/calc-tree/internal/types/operator"
	"github.com/DjordjeVuckovic/calc-tree/pkg/stack"
)

// TreeBuilder turns a token sequence into an expression tree using an operand
// stack and an operator stack. Equal priorities reduce left to right.
type TreeBuilder struct {
	tracer Tracer
}

type TreeBuilderOption func(*TreeBuilder)

// WithTracer installs a hook that observes token consumption and reductions.
func WithTracer(t Tracer) TreeBuilderOption {
	return func(b *TreeBuilder) {
		b.tracer = t
	}
}

func NewTreeBuilder(opts ...TreeBuilderOption) *TreeBuilder {
	b := &TreeBuilder{tracer: NopTracer{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// buildState is the per-call working set so a TreeBuilder can be shared.
type buildState struct {
	operands  *stack.Stack[tree.Node]
	operators *stack.Stack[token.Token]
	tracer    Tracer
}

// Build returns the root of the tree for tokens, or a *apperr.StructureError
// when the tokens do not form exactly one well-parenthesized expression.
func (b *TreeBuilder) Build(tokens []token.Token) (tree.Node, error) {
	if len(tokens) == 0 {
		return nil, apperr.NewStructure("empty expression")
	}

	st := &buildState{
		operands:  stack.New[tree.Node](),
		operators: stack.New[token.Token](),
		tracer:    b.tracer,
	}

	for _, tok := range tokens {
		st.tracer.OnToken(tok)

		var err error
		switch {
		case tok.Type == token.NUMBER:
			st.operands.Push(tree.NewLeaf(tok.Value))
		case tok.Type == token.LPAREN:
			st.operators.Push(tok)
		case tok.Type == token.RPAREN:
			err = st.closeGroup()
		case tok.Type.IsOperator():
			err = st.pushOperator(tok)
		case tok.Type == token.EOF:
			continue
		default:
			err = apperr.NewStructure(fmt.Sprintf("unexpected token %s", tok))
		}
		if err != nil {
			return nil, err
		}
	}

	for !st.operators.IsEmpty() {
		top, _ := st.operators.Peek()
		if top.Type == token.LPAREN {
			return nil, apperr.NewStructure("unbalanced parentheses: unmatched '('")
		}
		if err := st.reduce(); err != nil {
			return nil, err
		}
	}

	switch n := st.operands.Len(); {
	case n == 0:
		return nil, apperr.NewStructure("expression has no operands")
	case n > 1:
		return nil, apperr.NewStructure(fmt.Sprintf("expected a single expression, found %d operands without operators between them", n))
	}

	root, _ := st.operands.Pop()
	return root, nil
}

func (st *buildState) closeGroup() error {
	for {
		top, ok := st.operators.Peek()
		if !ok {
			return apperr.NewStructure("unbalanced parentheses: unmatched ')'")
		}
		if top.Type == token.LPAREN {
			st.operators.Pop()
			return nil
		}
		if err := st.reduce(); err != nil {
			return err
		}
	}
}

func (st *buildState) pushOperator(tok token.Token) error {
	op, err := operator.FromToken(tok)
	if err != nil {
		return apperr.NewStructure(err.Error())
	}

	for {
		top, ok := st.operators.Peek()
		if !ok || top.Type == token.LPAREN {
			break
		}
		topOp, err := operator.FromToken(top)
		if err != nil {
			return apperr.NewStructure(err.Error())
		}
		if topOp.Priority() < op.Priority() {
			break
		}
		if err := st.reduce(); err != nil {
			return err
		}
	}

	st.operators.Push(tok)
	return nil
}

// reduce pops one operator and two operands and pushes the combined subtree.
// The operand pushed most recently becomes the right child.
func (st *buildState) reduce() error {
	tok, _ := st.operators.Pop()
	op, err := operator.FromToken(tok)
	if err != nil {
		return apperr.NewStructure(err.Error())
	}

	right, okRight := st.operands.Pop()
	left, okLeft := st.operands.Pop()
	if !okRight || !okLeft {
		return apperr.NewStructure(fmt.Sprintf("operator '%s' is missing an operand", op))
	}

	node := tree.NewBinary(op, left, right)
	st.operands.Push(node)
	st.tracer.OnReduce(node)
	return nil
}
