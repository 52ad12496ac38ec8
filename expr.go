package symexpr

// Expr is an immutable symbolic expression over the scalar type T. Copying an
// Expr is cheap; operations which produce expressions return new ones and
// never change their operands, so copies never affect each other.
//
// The zero Expr is the constant zero.
type Expr[T Scalar[T]] struct {
	n *node[T]
}

// Const creates a constant expression.
func Const[T Scalar[T]](v T) Expr[T] {
	return Expr[T]{&node[T]{kind: nodeConst, val: v}}
}

// Var creates a variable reference. Variables are resolved only when the
// expression is evaluated.
func Var[T Scalar[T]](name string) Expr[T] {
	return Expr[T]{&node[T]{kind: nodeVar, name: name}}
}

// num creates a constant node with an integer value.
func num[T Scalar[T]](v int64) *node[T] {
	var z T
	return &node[T]{kind: nodeConst, val: z.FromInt(v)}
}

func (e Expr[T]) root() *node[T] {
	if e.n == nil {
		var z T
		return &node[T]{kind: nodeConst, val: z}
	}
	return e.n
}

func binary[T Scalar[T]](kind nodeKind, l, r *node[T]) *node[T] {
	return &node[T]{kind: kind, left: l, right: r}
}

func unary[T Scalar[T]](kind nodeKind, arg *node[T]) *node[T] {
	return &node[T]{kind: kind, left: arg}
}

// Add returns e + f.
func (e Expr[T]) Add(f Expr[T]) Expr[T] {
	return Expr[T]{binary(nodeAdd, e.root(), f.root())}
}

// Sub returns e - f.
func (e Expr[T]) Sub(f Expr[T]) Expr[T] {
	return Expr[T]{binary(nodeSub, e.root(), f.root())}
}

// Mul returns e * f.
func (e Expr[T]) Mul(f Expr[T]) Expr[T] {
	return Expr[T]{binary(nodeMul, e.root(), f.root())}
}

// Quo returns e / f.
func (e Expr[T]) Quo(f Expr[T]) Expr[T] {
	return Expr[T]{binary(nodeDiv, e.root(), f.root())}
}

// Pow returns e ^ f.
func (e Expr[T]) Pow(f Expr[T]) Expr[T] {
	return Expr[T]{binary(nodePow, e.root(), f.root())}
}

// Sin returns sin(e).
func Sin[T Scalar[T]](e Expr[T]) Expr[T] {
	return Expr[T]{unary(nodeSin, e.root())}
}

// Cos returns cos(e).
func Cos[T Scalar[T]](e Expr[T]) Expr[T] {
	return Expr[T]{unary(nodeCos, e.root())}
}

// Ln returns ln(e), the natural logarithm.
func Ln[T Scalar[T]](e Expr[T]) Expr[T] {
	return Expr[T]{unary(nodeLn, e.root())}
}

// Exp returns exp(e).
func Exp[T Scalar[T]](e Expr[T]) Expr[T] {
	return Expr[T]{unary(nodeExp, e.root())}
}

// String renders the expression with every operation bracketed, e.g.
// "((2 * x) + sin(y))". The result can be parsed back into an equivalent
// expression.
func (e Expr[T]) String() string {
	return e.root().String()
}

// Equal reports whether e and f are structurally identical. Expressions
// which are mathematically equivalent but written differently, like x+y and
// y+x, are not equal.
func (e Expr[T]) Equal(f Expr[T]) bool {
	return e.root().equal(f.root())
}

// Vars returns the sorted names of the variables in the expression.
func (e Expr[T]) Vars() []string {
	m := make(map[string]bool)
	e.root().vars(m)
	if len(m) == 0 {
		return nil
	}
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// Size returns the number of nodes in the expression. Together with Depth,
// it can be used to reject expressions that would be too expensive to
// evaluate or differentiate.
func (e Expr[T]) Size() int {
	return e.root().size()
}

// Depth returns the nesting depth of the expression. Constants and variables
// have depth 1.
func (e Expr[T]) Depth() int {
	return e.root().depth()
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
