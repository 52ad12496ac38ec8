package symexpr

import (
	"errors"
	"math/cmplx"
	"strconv"
	"strings"
)

// Complex is a complex number with float64 components. Unlike Real, it has no
// domain restrictions: the logarithm of a negative number is complex, and
// operations which have no finite result produce infinities or NaNs.
type Complex complex128

// ParseComplex128 parses a decimal number as a Complex. A trailing i makes the
// number imaginary. Numbers too large in magnitude become infinities.
func ParseComplex128(s string) (Complex, error) {
	im := strings.HasSuffix(s, "i")
	if im {
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	if im {
		return Complex(complex(0, v)), nil
	}
	return Complex(complex(v, 0)), nil
}

func (x Complex) Add(y Complex) Complex { return x + y }
func (x Complex) Sub(y Complex) Complex { return x - y }
func (x Complex) Mul(y Complex) Complex { return x * y }
func (x Complex) Quo(y Complex) Complex { return x / y }

func (x Complex) Pow(y Complex) (Complex, error) {
	return Complex(cmplx.Pow(complex128(x), complex128(y))), nil
}

func (x Complex) Sin() Complex { return Complex(cmplx.Sin(complex128(x))) }
func (x Complex) Cos() Complex { return Complex(cmplx.Cos(complex128(x))) }
func (x Complex) Exp() Complex { return Complex(cmplx.Exp(complex128(x))) }

// Log returns the principal value of the natural logarithm of x. It never
// returns an error.
func (x Complex) Log() (Complex, error) {
	return Complex(cmplx.Log(complex128(x))), nil
}

func (x Complex) IsZero() bool          { return x == 0 }
func (x Complex) Equal(y Complex) bool  { return x == y }
func (Complex) FromInt(n int64) Complex { return Complex(complex(float64(n), 0)) }

// String formats x like (3+4i).
func (x Complex) String() string {
	return strconv.FormatComplex(complex128(x), 'g', -1, 128)
}
