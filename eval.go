package symexpr

import (
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Eval evaluates the expression with variables taken from vars. The map is
// only read, and the expression holds no state between calls, so concurrent
// evaluations of the same expression are safe.
//
// If a variable is missing from vars, the error is a *NameError. Division by
// a value equal to zero gives a *DivisionError. An operation outside its
// domain, such as the logarithm of a non-positive Real, gives a *DomainError.
func (e Expr[T]) Eval(vars map[string]T) (T, error) {
	return e.root().eval(vars)
}

// eval computes the node's value.
func (n *node[T]) eval(vars map[string]T) (r T, err error) {
	defer func() {
		// big.Float panics rather than produce NaN, e.g. for inf-inf.
		p := recover()
		if p == nil {
			return
		}
		nan, ok := p.(big.ErrNaN)
		if !ok {
			panic(p)
		}
		var z T
		r, err = z, &DomainError{Func: n.kind.op(), Err: nan}
	}()
	switch n.kind {
	case nodeConst:
		return n.val, nil
	case nodeVar:
		v, ok := vars[n.name]
		if !ok {
			return r, &NameError{Name: n.name}
		}
		return v, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval(vars)
		if err != nil {
			return r, err
		}
		rv, err := n.right.eval(vars)
		if err != nil {
			return r, err
		}
		switch n.kind {
		case nodeAdd:
			return l.Add(rv), nil
		case nodeSub:
			return l.Sub(rv), nil
		case nodeMul:
			return l.Mul(rv), nil
		case nodeDiv:
			if rv.IsZero() {
				return r, &DivisionError{Divisor: n.right.String()}
			}
			return l.Quo(rv), nil
		default:
			return l.Pow(rv)
		}
	case nodeSin, nodeCos, nodeLn, nodeExp:
		a, err := n.left.eval(vars)
		if err != nil {
			return r, err
		}
		switch n.kind {
		case nodeSin:
			return a.Sin(), nil
		case nodeCos:
			return a.Cos(), nil
		case nodeLn:
			return a.Log()
		default:
			return a.Exp(), nil
		}
	default:
		panic("symexpr: invalid AST node " + n.kind.String())
	}
}

// EvalReal is a shortcut to parse an expression and return its result.
func EvalReal(src io.RuneScanner, vars map[string]Real, opts ...ParseOption) (Real, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return Real{}, err
	}
	return a.Eval(vars)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, vars map[string]Real, opts ...ParseOption) (Real, error) {
	return EvalReal(strings.NewReader(src), vars, opts...)
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation context.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// DivisionError is an error from dividing by a value equal to zero.
type DivisionError struct {
	// Divisor is the text of the subexpression that evaluated to zero.
	Divisor string
}

func (err *DivisionError) Error() string {
	return "division by zero: " + err.Divisor + " is 0"
}
