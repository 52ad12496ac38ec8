package symexpr

// funcs maps the names of the functions the parser understands to their node
// kinds. A name followed by an open bracket is always parsed as a call, so
// these names cannot be used as variables directly before a bracket.
var funcs = map[string]nodeKind{
	"sin": nodeSin,
	"cos": nodeCos,
	"ln":  nodeLn,
	"exp": nodeExp,
}

// Funcs returns the names of the functions recognized by the parser.
func Funcs() []string {
	names := make([]string, 0, len(funcs))
	for k := range funcs {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// DomainError is an error returned when an operation is applied to arguments
// outside its domain, e.g. the logarithm of a negative Real.
type DomainError struct {
	// X is the out-of-domain argument, if known.
	X string
	// Func is a name identifying the function or operator.
	Func string
	// Err is the underlying error, if any. Domain errors recovered from
	// math/big hold a big.ErrNaN.
	Err error
}

func (err *DomainError) Error() string {
	r := "outside domain"
	if err.X != "" {
		r = err.X + " " + r
	}
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Err != nil {
		r += ": " + err.Err.Error()
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return err.Err
}
