package symexpr

// Diff returns the derivative of e with respect to the named variable. The
// result is built by the usual rules and is not simplified, so it is
// generally much larger than a derivative written by hand: the derivative of
// 5 is the constant 0, and the derivative of x*y is ((1 * y) + (x * 0)).
//
// Powers use the general rule
//
//	(f^g)' = f^g * (g' * ln(f) + g * (f' / f))
//
// even when the exponent is constant. The derivative therefore can only be
// evaluated where f is a valid argument to ln, e.g. positive for Real.
//
// Diff never fails. Errors like division by zero in the result are reported
// when it is evaluated.
func (e Expr[T]) Diff(name string) Expr[T] {
	return Expr[T]{e.root().diff(name)}
}

func (n *node[T]) diff(name string) *node[T] {
	switch n.kind {
	case nodeConst:
		return num[T](0)
	case nodeVar:
		if n.name == name {
			return num[T](1)
		}
		return num[T](0)
	case nodeAdd:
		return binary(nodeAdd, n.left.diff(name), n.right.diff(name))
	case nodeSub:
		return binary(nodeSub, n.left.diff(name), n.right.diff(name))
	case nodeMul:
		// f'g + fg'
		f, g := n.left, n.right
		return binary(nodeAdd,
			binary(nodeMul, f.diff(name), g),
			binary(nodeMul, f, g.diff(name)),
		)
	case nodeDiv:
		// (f'g - fg') / g^2
		f, g := n.left, n.right
		return binary(nodeDiv,
			binary(nodeSub,
				binary(nodeMul, f.diff(name), g),
				binary(nodeMul, f, g.diff(name)),
			),
			binary(nodePow, g, num[T](2)),
		)
	case nodePow:
		// f^g * (g' ln(f) + g (f'/f))
		f, g := n.left, n.right
		return binary(nodeMul,
			n,
			binary(nodeAdd,
				binary(nodeMul, g.diff(name), unary(nodeLn, f)),
				binary(nodeMul, g, binary(nodeDiv, f.diff(name), f)),
			),
		)
	case nodeSin:
		// cos(f) f'
		return binary(nodeMul, unary(nodeCos, n.left), n.left.diff(name))
	case nodeCos:
		// -1 sin(f) f'
		return binary(nodeMul,
			binary(nodeMul, num[T](-1), unary(nodeSin, n.left)),
			n.left.diff(name),
		)
	case nodeLn:
		// f'/f
		return binary(nodeDiv, n.left.diff(name), n.left)
	case nodeExp:
		// exp(f) f'
		return binary(nodeMul, n, n.left.diff(name))
	default:
		panic("symexpr: invalid node kind " + n.kind.String())
	}
}

// Subst returns a copy of e with every occurrence of the named variable
// replaced by by. Constants and other variables are unaffected.
func (e Expr[T]) Subst(name string, by Expr[T]) Expr[T] {
	return Expr[T]{e.root().subst(name, by.root())}
}

func (n *node[T]) subst(name string, by *node[T]) *node[T] {
	switch n.kind {
	case nodeConst:
		return n
	case nodeVar:
		if n.name == name {
			return by
		}
		return n
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		return binary(n.kind, n.left.subst(name, by), n.right.subst(name, by))
	case nodeSin, nodeCos, nodeLn, nodeExp:
		return unary(n.kind, n.left.subst(name, by))
	default:
		panic("symexpr: invalid node kind " + n.kind.String())
	}
}
