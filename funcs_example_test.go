package symexpr_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/symexpr"
)

func ExampleFuncs() {
	fmt.Println(symexpr.Funcs())

	// Output:
	// [cos exp ln sin]
}

func ExampleDomainError() {
	a, _ := symexpr.ParseString("ln(x)")
	_, err := a.Eval(map[string]symexpr.Real{"x": symexpr.RealFloat64(-1)})
	var d *symexpr.DomainError
	fmt.Println(errors.As(err, &d), d.Func)
	fmt.Println(err)

	// Under Complex, the logarithm of a negative number is defined.
	b, _ := symexpr.ParseComplexString("ln(x)")
	r, err := b.Eval(map[string]symexpr.Complex{"x": -1})
	fmt.Printf("%.4f %v\n", complex128(r), err)

	// Output:
	// true ln
	// -1 outside domain of ln
	// (0.0000+3.1416i) <nil>
}
