package symexpr

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Real is an immutable arbitrary-precision real number. The zero value is 0.
//
// Results of arithmetic have the larger of the operands' precisions.
type Real struct {
	x *big.Float
}

// defaultPrec is the precision used for values which have none of their own.
const defaultPrec = 64

// NewReal creates a Real with the value and precision of x. x is copied.
func NewReal(x *big.Float) Real {
	return Real{new(big.Float).Copy(x)}
}

// RealFloat64 creates a Real from a float64. Panics if v is NaN.
func RealFloat64(v float64) Real {
	return Real{new(big.Float).SetPrec(defaultPrec).SetFloat64(v)}
}

// ParseReal parses a decimal number to the given precision. If prec is 0, the
// precision is 64. Numbers too large in magnitude to represent become
// infinities.
func ParseReal(s string, prec uint) (Real, error) {
	if prec == 0 {
		prec = defaultPrec
	}
	if s == "∞" {
		s = "inf"
	}
	r, _, err := new(big.Float).SetPrec(prec).Parse(s, 10)
	switch {
	case err == nil: // do nothing
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// There isn't realistically any better way to detect this error.
		r = new(big.Float).SetPrec(prec).SetInf(strings.HasPrefix(s, "-"))
	default:
		return Real{}, err
	}
	return Real{r}, nil
}

func (x Real) val() *big.Float {
	if x.x == nil {
		return new(big.Float).SetPrec(defaultPrec)
	}
	return x.x
}

// Float returns a copy of the value of x.
func (x Real) Float() *big.Float {
	return new(big.Float).Copy(x.val())
}

// Float64 returns the float64 nearest to x.
func (x Real) Float64() float64 {
	f, _ := x.val().Float64()
	return f
}

// Prec returns the precision of x in bits.
func (x Real) Prec() uint {
	return x.val().Prec()
}

// prec2 returns a new zero with the larger precision of a and b.
func prec2(a, b *big.Float) *big.Float {
	p := a.Prec()
	if q := b.Prec(); q > p {
		p = q
	}
	if p == 0 {
		p = defaultPrec
	}
	return new(big.Float).SetPrec(p)
}

func (x Real) Add(y Real) Real {
	a, b := x.val(), y.val()
	return Real{prec2(a, b).Add(a, b)}
}

func (x Real) Sub(y Real) Real {
	a, b := x.val(), y.val()
	return Real{prec2(a, b).Sub(a, b)}
}

func (x Real) Mul(y Real) Real {
	a, b := x.val(), y.val()
	return Real{prec2(a, b).Mul(a, b)}
}

func (x Real) Quo(y Real) Real {
	a, b := x.val(), y.val()
	return Real{prec2(a, b).Quo(a, b)}
}

// Pow computes x^y. Integral exponents allow any base: small ones are computed
// by repeated squaring, and the sign of larger ones follows their parity.
// Otherwise, a negative base is outside the domain, because the result is not
// real.
func (x Real) Pow(y Real) (Real, error) {
	a, b := x.val(), y.val()
	z := prec2(a, b)
	switch {
	case b.Sign() == 0:
		return Real{z.SetInt64(1)}, nil
	case a.Sign() == 0:
		if b.Sign() > 0 {
			return Real{z}, nil
		}
		return Real{z.SetInf(false)}, nil
	case b.IsInt():
		if n, acc := b.Int64(); acc == big.Exact {
			return Real{powi(z, a, n)}, nil
		}
		powpos(z, new(big.Float).Abs(a), b)
		if a.Signbit() && odd(b) {
			z.Neg(z)
		}
		return Real{z}, nil
	case a.Signbit():
		return Real{}, &DomainError{X: x.String(), Func: "^"}
	}
	return Real{powpos(z, a, b)}, nil
}

// powpos sets z to a^b for a > 0 and returns z.
func powpos(z, a, b *big.Float) *big.Float {
	if a.IsInf() {
		if b.Sign() < 0 {
			return z.SetInt64(0)
		}
		return z.SetInf(false)
	}
	// bigfloat.Pow does not always store its result in z.
	return z.Set(bigfloat.Pow(z, a, b))
}

// odd reports whether the integer b is odd.
func odd(b *big.Float) bool {
	// b is m * 2^(e-p) with m odd and p significant bits.
	return b.MantExp(nil) == int(b.MinPrec())
}

// powi sets z to x^n and returns z.
func powi(z, x *big.Float, n int64) *big.Float {
	w := z.Prec() + 32
	u := uint64(n)
	if n < 0 {
		u = uint64(-n)
	}
	r := new(big.Float).SetPrec(w).SetInt64(1)
	b := new(big.Float).SetPrec(w).Set(x)
	for u > 0 {
		if u&1 != 0 {
			r.Mul(r, b)
		}
		u >>= 1
		if u > 0 {
			b.Mul(b, b)
		}
	}
	if n < 0 {
		r.Quo(b.SetInt64(1), r)
	}
	return z.Set(r)
}

// Sin computes the sine of x. The cost grows with the binary exponent of x.
// Panics with big.ErrNaN if x is infinite or |x| ≥ 2^16384; Eval reports the
// panic as a *DomainError.
func (x Real) Sin() Real {
	return Real{sincos(x.val(), true)}
}

// Cos computes the cosine of x, with the same limits as Sin.
func (x Real) Cos() Real {
	return Real{sincos(x.val(), false)}
}

func (x Real) Exp() Real {
	a := x.val()
	z := prec2(a, a)
	bigfloat.Exp(z, a)
	return Real{z}
}

// Log computes the natural logarithm of x. If x is not positive, the result
// is a *DomainError.
func (x Real) Log() (Real, error) {
	a := x.val()
	if a.Sign() <= 0 {
		return Real{}, &DomainError{X: x.String(), Func: "ln"}
	}
	z := prec2(a, a)
	bigfloat.Log(z, a)
	return Real{z}, nil
}

func (x Real) IsZero() bool {
	return x.val().Sign() == 0
}

func (x Real) Equal(y Real) bool {
	return x.val().Cmp(y.val()) == 0
}

func (Real) FromInt(n int64) Real {
	return Real{new(big.Float).SetPrec(defaultPrec).SetInt64(n)}
}

// String formats x with the fewest decimal digits that identify it exactly at
// its precision.
func (x Real) String() string {
	return x.val().Text('g', -1)
}

// Format implements fmt.Formatter by formatting the underlying *big.Float.
func (x Real) Format(s fmt.State, verb rune) {
	x.val().Format(s, verb)
}

// maxTrigExp is the largest binary exponent of a sin or cos argument. Argument
// reduction needs at least that many bits of π.
const maxTrigExp = 16384

// sincos computes the sine or cosine of x to the precision of x. The argument
// is reduced modulo 2π with enough extra precision to cover its magnitude,
// then summed as a Taylor series.
func sincos(x *big.Float, sin bool) *big.Float {
	z := prec2(x, x)
	if x.IsInf() || x.MantExp(nil) > maxTrigExp {
		panic(big.ErrNaN{})
	}
	if x.Sign() == 0 {
		if sin {
			return z
		}
		return z.SetInt64(1)
	}
	w := z.Prec() + 64
	if e := x.MantExp(nil); e > 0 {
		w += uint(e)
	}

	pi := bigfloat.Pi(new(big.Float).SetPrec(w))
	tau := new(big.Float).SetPrec(w).Add(pi, pi)
	t := new(big.Float).SetPrec(w).Set(x)
	k := new(big.Float).SetPrec(w).Quo(t, tau)
	half := big.NewFloat(0.5)
	if k.Signbit() {
		k.Sub(k, half)
	} else {
		k.Add(k, half)
	}
	ki, _ := k.Int(nil)
	k.SetInt(ki)
	t.Sub(t, k.Mul(k, tau))

	t2 := new(big.Float).SetPrec(w).Mul(t, t)
	term := new(big.Float).SetPrec(w)
	var n int64
	if sin {
		term.Set(t)
		n = 1
	} else {
		term.SetInt64(1)
	}
	sum := new(big.Float).SetPrec(w).Set(term)
	d := new(big.Float).SetPrec(w)
	for i := uint(0); i < 4*w; i++ {
		term.Mul(term, t2)
		term.Quo(term, d.SetInt64((n+1)*(n+2)))
		term.Neg(term)
		n += 2
		if term.Sign() == 0 {
			break
		}
		sum.Add(sum, term)
		lim := -int(w)
		if sum.Sign() != 0 {
			lim += sum.MantExp(nil)
		}
		if term.MantExp(nil) < lim {
			break
		}
	}
	return z.Set(sum)
}
