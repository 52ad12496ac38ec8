package symexpr

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Nodes are never
// modified after construction, so subtrees may be shared freely.
type node[T Scalar[T]] struct {
	kind nodeKind

	val  T
	name string

	// left is the only operand of function nodes.
	left  *node[T]
	right *node[T]
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst // val
	nodeVar   // lookup(name)

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right

	nodeSin // sin(left)
	nodeCos // cos(left)
	nodeLn  // ln(left)
	nodeExp // exp(left)
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// op returns the operator or function name of a node kind.
func (k nodeKind) op() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodePow:
		return "^"
	case nodeSin:
		return "sin"
	case nodeCos:
		return "cos"
	case nodeLn:
		return "ln"
	case nodeExp:
		return "exp"
	default:
		return ""
	}
}

func (n *node[T]) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node[T]) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeConst:
		b.WriteString(n.val.String())
	case nodeVar:
		b.WriteString(n.name)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.op())
		b.WriteByte(' ')
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeSin, nodeCos, nodeLn, nodeExp:
		b.WriteString(n.kind.op())
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	default:
		panic("symexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// equal reports whether two trees have the same structure, names, and
// constant values.
func (n *node[T]) equal(m *node[T]) bool {
	if n == m {
		return true
	}
	if n.kind != m.kind {
		return false
	}
	switch n.kind {
	case nodeConst:
		return n.val.Equal(m.val)
	case nodeVar:
		return n.name == m.name
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		return n.left.equal(m.left) && n.right.equal(m.right)
	case nodeSin, nodeCos, nodeLn, nodeExp:
		return n.left.equal(m.left)
	default:
		panic("symexpr: invalid node kind " + n.kind.String())
	}
}

// size counts the nodes in the tree.
func (n *node[T]) size() int {
	switch n.kind {
	case nodeConst, nodeVar:
		return 1
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		return 1 + n.left.size() + n.right.size()
	case nodeSin, nodeCos, nodeLn, nodeExp:
		return 1 + n.left.size()
	default:
		panic("symexpr: invalid node kind " + n.kind.String())
	}
}

// depth is the number of nodes on the longest path from n to a leaf.
func (n *node[T]) depth() int {
	switch n.kind {
	case nodeConst, nodeVar:
		return 1
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, r := n.left.depth(), n.right.depth()
		if r > l {
			l = r
		}
		return 1 + l
	case nodeSin, nodeCos, nodeLn, nodeExp:
		return 1 + n.left.depth()
	default:
		panic("symexpr: invalid node kind " + n.kind.String())
	}
}

// vars adds the names of variables in the tree to names.
func (n *node[T]) vars(names map[string]bool) {
	switch n.kind {
	case nodeConst:
	case nodeVar:
		names[n.name] = true
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		n.left.vars(names)
		n.right.vars(names)
	case nodeSin, nodeCos, nodeLn, nodeExp:
		n.left.vars(names)
	default:
		panic("symexpr: invalid node kind " + n.kind.String())
	}
}
