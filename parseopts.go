package symexpr

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	precopt  uint
	depthopt int
)

// parsectx holds general data for parsing.
type parsectx struct {
	// prec is the precision of real literals.
	prec uint
	// maxDepth is the deepest allowed nesting, or 0 for no limit.
	maxDepth int
}

// Prec sets the precision in bits of real numbers in parsed expressions. The
// default is 64. Complex expressions always use float64 components.
func Prec(prec uint) ParseOption {
	return precopt(prec)
}

func (o precopt) parseOption(p parsectx) parsectx {
	p.prec = uint(o)
	return p
}

// MaxDepth limits how deeply expressions may nest. Each bracket, unary minus,
// exponent, and function call opens a level. Input exceeding the limit fails
// with a *DepthError. Without MaxDepth, or with n ≤ 0, there is no limit.
func MaxDepth(n int) ParseOption {
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxDepth = int(o)
	return p
}
