package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/zephyrtronium/symexpr"
)

func TestSession(t *testing.T) {
	var out bytes.Buffer
	s := newSession(realMode(&options{prec: 64}), "%g", &out)
	steps := []struct {
		line string
		out  string
		err  string
	}{
		{"", "", ""},
		{"x = 3", "x = 3\n", ""},
		{"y = x * 2", "y = 6\n", ""},
		{"x + y", "9\n", ""},
		{":vars", "x = 3\ny = 6\n", ""},
		{":diff x", "(1 + 0)\n", ""},
		{":diff x x^2", "((x ^ 2) * ((0 * ln(x)) + (2 * (1 / x))))\n", ""},
		{":subst y sin(t)", "(x + sin(t))\n", ""},
		{":diff t", "(0 + (cos(t) * 1))\n", ""},
		{"z", "", "undefined variable"},
		{":diff z", "1\n", ""},
		{"(x", "", "bracket"},
		{":diff x", "0\n", ""},
		{"2 = 3", "", "invalid assignment"},
		{":subst x", "", "usage"},
		{":frob", "", "unknown command"},
		{"ln(-1)", "", "outside domain"},
	}
	for _, step := range steps {
		out.Reset()
		quit, err := s.exec(step.line)
		assert.False(t, quit, step.line)
		if step.err != "" {
			assert.Error(t, err, step.line)
			assert.Contains(t, err.Error(), step.err, step.line)
			continue
		}
		assert.NoError(t, err, step.line)
		assert.Equal(t, step.out, out.String(), step.line)
	}
	quit, err := s.exec("  :quit ")
	assert.NoError(t, err)
	assert.True(t, quit)
}

func TestSessionNoExpr(t *testing.T) {
	var out bytes.Buffer
	s := newSession(realMode(&options{}), "%g", &out)
	_, err := s.exec(":diff x")
	assert.True(t, errors.Is(err, errNoExpr))
	_, err = s.exec(":subst x 1")
	assert.True(t, errors.Is(err, errNoExpr))
	_, err = s.exec(":help")
	assert.NoError(t, err)
	assert.Contains(t, out.String(), ":subst")
}

func TestSessionComplex(t *testing.T) {
	var out bytes.Buffer
	s := newSession(complexMode(&options{}), "%g", &out)
	for _, line := range []string{"z = 1i", "z * z", "ln(-1) / 1i"} {
		_, err := s.exec(line)
		assert.NoError(t, err, line)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{"z = (0+1i)", "(-1+0i)", "(3.141592653589793+0i)"}, lines)
}

func TestComplete(t *testing.T) {
	s := newSession(realMode(&options{}), "%g", new(bytes.Buffer))
	s.vars["sigma"] = symexpr.RealFloat64(1)
	cases := []struct {
		line  string
		pos   int
		head  string
		cands []string
		tail  string
	}{
		{"", 0, "", nil, ""},
		{"si", 2, "", []string{"sigma", "sin("}, ""},
		{"2 * e", 5, "2 * ", []string{"exp("}, ""},
		{"x + c)", 5, "x + ", []string{"cos("}, ")"},
		{":d", 2, "", []string{":diff"}, ""},
		{":s", 2, "", []string{":subst"}, ""},
		{"q", 1, "", nil, ""},
	}
	for _, c := range cases {
		head, cands, tail := s.complete(c.line, c.pos)
		assert.Equal(t, c.head, head, c.line)
		assert.Equal(t, c.cands, cands, c.line)
		assert.Equal(t, c.tail, tail, c.line)
	}
}

func TestCut(t *testing.T) {
	a, b := cut("  x   sin(x) + 1 ")
	assert.Equal(t, "x", a)
	assert.Equal(t, "sin(x) + 1", b)
	a, b = cut("x")
	assert.Equal(t, "x", a)
	assert.Equal(t, "", b)
}
