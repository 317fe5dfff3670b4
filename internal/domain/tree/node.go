// Package tree holds the binary expression tree produced by the parser and
// consumed by the evaluator.
//
// A Node is either a *Leaf holding a numeric literal or a *Binary holding an
// operator and exactly two owned children. Trees are immutable once built.
package tree

import (
	"strings"

	"github.com/DjordjeVuckovic/calc-tree/internal/types/operator"
)

type Node interface {
	// String renders the subtree as a fully parenthesized infix expression.
	String() string

	node()
}

// Leaf is a numeric literal kept in its source form; it is parsed on evaluation.
type Leaf struct {
	Literal string
}

func NewLeaf(literal string) *Leaf {
	return &Leaf{Literal: literal}
}

func (l *Leaf) String() string {
	return l.Literal
}

func (*Leaf) node() {}

// Binary applies Op to the values of Left and Right.
type Binary struct {
	Op    operator.Operator
	Left  Node
	Right Node
}

func NewBinary(op operator.Operator, left, right Node) *Binary {
	return &Binary{Op: op, Left: left, Right: right}
}

func (b *Binary) String() string {
	var sb strings.Builder
	writeInfix(&sb, b)
	return sb.String()
}

func writeInfix(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case *Leaf:
		sb.WriteString(v.Literal)
	case *Binary:
		sb.WriteByte('(')
		writeInfix(sb, v.Left)
		sb.WriteByte(' ')
		sb.WriteString(v.Op.String())
		sb.WriteByte(' ')
		writeInfix(sb, v.Right)
		sb.WriteByte(')')
	case nil:
	default:
		sb.WriteString(v.String())
	}
}

func (*Binary) node() {}

// Height returns the number of levels in the tree; nil has height 0.
func Height(n Node) int {
	switch v := n.(type) {
	case *Leaf:
		return 1
	case *Binary:
		return 1 + max(Height(v.Left), Height(v.Right))
	default:
		return 0
	}
}
