package symexpr

import (
	"io"
	"math/cmplx"
	"strings"
)

// expression = term { ('+' | '-') term }
// term       = factor { ('*' | '/') factor }
// factor     = primary [ '^' factor ]
// primary    = '(' expression ')' | number | funcname '(' expression ')' | name | '-' primary
//
// Unary minus binds more tightly than any binary operator, so -x^2 is
// ((-1 * x) ^ 2), and -x is parsed as -1 * x.

// Parse parses a real expression from src. The given options are applied in
// order. Parse consumes src through the end; any input after a complete
// expression is an error, as is a number literal too large to represent.
// Every error resulting from invalid input implements InputError.
func Parse(src io.RuneScanner, opts ...ParseOption) (Expr[Real], error) {
	p := parsectx{prec: defaultPrec}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	prec := p.prec
	return parse(src, p, func(text string) (Real, error) {
		if strings.HasSuffix(text, "i") {
			return Real{}, errImaginary
		}
		r, err := ParseReal(text, prec)
		if err == nil && r.val().IsInf() {
			return Real{}, errRange
		}
		return r, err
	})
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (Expr[Real], error) {
	return Parse(strings.NewReader(src), opts...)
}

// ParseComplex parses a complex expression from src. The grammar is the same
// as for Parse, except that numbers may have an i suffix to make them
// imaginary, e.g. 3+4i.
func ParseComplex(src io.RuneScanner, opts ...ParseOption) (Expr[Complex], error) {
	p := parsectx{}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	return parse(src, p, func(text string) (Complex, error) {
		c, err := ParseComplex128(text)
		if err == nil && cmplx.IsInf(complex128(c)) {
			return 0, errRange
		}
		return c, err
	})
}

// ParseComplexString is a shortcut to parse a complex expression from a
// string.
func ParseComplexString(src string, opts ...ParseOption) (Expr[Complex], error) {
	return ParseComplex(strings.NewReader(src), opts...)
}

// Sentinels for literals the number parsers accept but expressions do not.
// They never escape the parser; primary reports a *LexError of the same kind.
var (
	errImaginary = &LexError{Kind: "real number"}
	// errRange rejects literals too large to represent. The infinity they
	// would become has no literal form to render back.
	errRange = &LexError{Kind: "out of range number"}
)

// parser holds the state of one parse.
type parser[T Scalar[T]] struct {
	scan  *lexer
	num   func(string) (T, error)
	depth int
	max   int
}

func parse[T Scalar[T]](src io.RuneScanner, ctx parsectx, num func(string) (T, error)) (Expr[T], error) {
	p := parser[T]{scan: lex(src), num: num, max: ctx.maxDepth}
	n, err := p.expression()
	if err != nil {
		return Expr[T]{}, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return Expr[T]{}, err
	}
	switch tok.kind {
	case tokenEOF:
		return Expr[T]{n}, nil
	case tokenClose:
		return Expr[T]{}, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		return Expr[T]{}, &TokenError{Col: tok.pos, Token: tok.text, Want: "operator or end of input"}
	}
}

// expression parses a sum or difference of terms. If there is no error, the
// token following the expression is pushed.
func (p *parser[T]) expression() (*node[T], error) {
	n, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch {
		case tok.kind == tokenOp && tok.text == "+":
			kind = nodeAdd
		case tok.kind == tokenOp && tok.text == "-":
			kind = nodeSub
		default:
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.term()
		if err != nil {
			return nil, err
		}
		n = binary(kind, n, rhs)
	}
}

// term parses a product or quotient of factors.
func (p *parser[T]) term() (*node[T], error) {
	n, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		var kind nodeKind
		switch {
		case tok.kind == tokenOp && tok.text == "*":
			kind = nodeMul
		case tok.kind == tokenOp && tok.text == "/":
			kind = nodeDiv
		default:
			p.scan.push(tok)
			return n, nil
		}
		rhs, err := p.factor()
		if err != nil {
			return nil, err
		}
		n = binary(kind, n, rhs)
	}
}

// factor parses a primary with an optional exponent. Exponentiation is
// right-associative: 2^3^2 is 2^(3^2).
func (p *parser[T]) factor() (*node[T], error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	n, err := p.primary()
	if err != nil {
		return nil, err
	}
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind != tokenOp || tok.text != "^" {
		p.scan.push(tok)
		return n, nil
	}
	rhs, err := p.factor()
	if err != nil {
		return nil, err
	}
	return binary(nodePow, n, rhs), nil
}

// primary parses a bracketed expression, number, function call, variable, or
// negation.
func (p *parser[T]) primary() (*node[T], error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		v, err := p.num(tok.text)
		if err != nil {
			kind := "number"
			if le, ok := err.(*LexError); ok {
				kind = le.Kind
			}
			return nil, &LexError{Text: tok.text, Kind: kind, Col: tok.pos}
		}
		return &node[T]{kind: nodeConst, val: v}, nil
	case tokenIdent:
		next, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if next.kind != tokenOpen {
			p.scan.push(next)
			return &node[T]{kind: nodeVar, name: tok.text}, nil
		}
		kind, ok := funcs[tok.text]
		if !ok {
			return nil, &FuncError{Col: tok.pos, Func: tok.text}
		}
		arg, err := p.group(next)
		if err != nil {
			return nil, err
		}
		return unary(kind, arg), nil
	case tokenOpen:
		return p.group(tok)
	case tokenOp:
		if tok.text != "-" {
			return nil, &TokenError{Col: tok.pos, Token: tok.text, Want: "operand"}
		}
		if err := p.enter(); err != nil {
			return nil, err
		}
		defer p.leave()
		rhs, err := p.primary()
		if err != nil {
			return nil, err
		}
		return binary(nodeMul, num[T](-1), rhs), nil
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		panic("symexpr: unknown token: " + tok.String())
	}
}

// group parses the contents of a bracket pair. open is the already scanned
// open bracket.
func (p *parser[T]) group(open lexToken) (*node[T], error) {
	n, err := p.expression()
	if err != nil {
		return nil, err
	}
	end, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	switch end.kind {
	case tokenClose:
		return n, nil
	case tokenEOF:
		return nil, &BracketError{Col: end.pos, Left: open.text}
	default:
		return nil, &TokenError{Col: end.pos, Token: end.text, Want: "operator or )"}
	}
}

// enter opens a nesting level.
func (p *parser[T]) enter() error {
	p.depth++
	if p.max > 0 && p.depth > p.max {
		return &DepthError{Col: p.scan.col, Max: p.max}
	}
	return nil
}

// leave closes a nesting level.
func (p *parser[T]) leave() {
	p.depth--
}
