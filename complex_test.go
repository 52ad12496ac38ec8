package symexpr_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/zephyrtronium/symexpr"
)

func TestParseComplex128(t *testing.T) {
	cases := []struct {
		src  string
		want complex128
		err  bool
	}{
		{"3", 3, false},
		{"4i", 4i, false},
		{"2.5e1i", 25i, false},
		{".5", 0.5, false},
		{"0i", 0, false},
		{"1e400", complex(math.Inf(1), 0), false},
		{"1e400i", complex(0, math.Inf(1)), false},
		{"i", 0, true},
		{"1.2.3", 0, true},
	}
	for _, c := range cases {
		r, err := symexpr.ParseComplex128(c.src)
		if c.err {
			if err == nil {
				t.Errorf("%q parsed to %v with no error", c.src, r)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if complex128(r) != c.want {
			t.Errorf("%q: want %v, got %v", c.src, c.want, r)
		}
	}
}

func TestComplexScalar(t *testing.T) {
	x := symexpr.Complex(3 + 4i)
	if s := x.String(); s != "(3+4i)" {
		t.Errorf("3+4i formats as %q", s)
	}
	if !x.FromInt(-2).Equal(-2) {
		t.Errorf("FromInt(-2) = %v", x.FromInt(-2))
	}
	if x.IsZero() || !symexpr.Complex(0).IsZero() {
		t.Error("wrong IsZero")
	}
	r, err := symexpr.Complex(-1).Log()
	if err != nil {
		t.Errorf("ln(-1) failed: %v", err)
	}
	if d := cmplx.Abs(complex128(r) - complex(0, math.Pi)); d > 1e-15 {
		t.Errorf("ln(-1) = %v", r)
	}
	p, err := x.Pow(2)
	if err != nil {
		t.Errorf("(3+4i)^2 failed: %v", err)
	}
	if d := cmplx.Abs(complex128(p) - (-7 + 24i)); d > 1e-12 {
		t.Errorf("(3+4i)^2 = %v", p)
	}
}

func TestComplexString(t *testing.T) {
	// Rendered complex expressions parse back as long as no component is
	// negative, since the parser has no signed literals.
	a, err := symexpr.ParseComplexString("(3+4i) * z")
	if err != nil {
		t.Fatal(err)
	}
	if s := a.String(); s != "(((3+0i) + (0+4i)) * z)" {
		t.Errorf("wrong rendering %s", s)
	}
	z := symexpr.Const(symexpr.Complex(1 + 2i)).Mul(symexpr.Var[symexpr.Complex]("z"))
	if s := z.String(); s != "((1+2i) * z)" {
		t.Errorf("wrong rendering %s", s)
	}
	b, err := symexpr.ParseComplexString(z.String())
	if err != nil {
		t.Fatalf("%s failed to parse: %v", z, err)
	}
	vars := map[string]symexpr.Complex{"z": 2 - 1i}
	u, _ := z.Eval(vars)
	v, _ := b.Eval(vars)
	if u != v {
		t.Errorf("%s = %v but %s = %v", z, u, b, v)
	}
}
