package symexpr

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	// pos is the 1-based rune position of the token's first rune.
	pos int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a real or imaginary number.
	tokenNum
	// tokenIdent is a variable or function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket.
	tokenOpen
	// tokenClose is a close bracket.
	tokenClose
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// lexer splits a rune stream into tokens. It holds at most one token of
// lookahead, set with push.
type lexer struct {
	src  io.RuneScanner
	text strings.Builder
	// col is the position of the next rune to be read.
	col     int
	pending lexToken
	done    bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src, col: 1}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.pending.kind != tokenNone {
		panic("symexpr: double push")
	}
	l.pending = tok
}

// read returns the next rune. At the end of input, ok is false and err is nil.
func (l *lexer) read() (r rune, ok bool, err error) {
	r, sz, err := l.src.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, err
	}
	if sz > 0 {
		l.col++
	}
	return r, true, nil
}

// unread puts back the rune most recently returned from read.
func (l *lexer) unread() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// next scans the next token from the input. Once the input is exhausted, every
// call returns an EOF token.
func (l *lexer) next() (lexToken, error) {
	if tok := l.pending; tok.kind != tokenNone {
		l.pending = lexToken{}
		return tok, nil
	}
	if l.done {
		return lexToken{kind: tokenEOF, pos: l.col}, nil
	}
	defer l.text.Reset()

	r, ok, err := l.read()
	for ok && unicode.IsSpace(r) {
		r, ok, err = l.read()
	}
	if err != nil {
		return lexToken{pos: l.col}, err
	}
	if !ok {
		l.done = true
		return lexToken{kind: tokenEOF, pos: l.col}, nil
	}
	tok := lexToken{pos: l.col - 1}
	switch {
	case '0' <= r && r <= '9', r == '.':
		l.unread()
		if err := l.number(); err != nil {
			return tok, err
		}
		tok.kind = tokenNum
	case unicode.IsLetter(r):
		l.text.WriteRune(r)
		if err := l.name(); err != nil {
			return tok, err
		}
		tok.kind = tokenIdent
	case r == '(':
		l.text.WriteRune(r)
		tok.kind = tokenOpen
	case r == ')':
		l.text.WriteRune(r)
		tok.kind = tokenClose
	case strings.ContainsRune(Operators, r):
		l.text.WriteRune(r)
		tok.kind = tokenOp
	default:
		l.text.WriteRune(r)
		return tok, l.error("")
	}
	tok.text = l.text.String()
	return tok, nil
}

// Stages of a number literal.
const (
	numInt     = iota // integer digits
	numFrac           // after the decimal point
	numExpSign        // just after e, where a sign may appear
	numExp            // exponent digits
)

// number scans a number literal: digits with an optional fraction, an
// optional exponent, and an optional imaginary suffix. A letter glued to the
// literal makes it invalid.
func (l *lexer) number() error {
	stage := numInt
	var mant, exp bool
	for {
		r, ok, err := l.read()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch {
		case '0' <= r && r <= '9':
			if stage >= numExpSign {
				stage, exp = numExp, true
			} else {
				mant = true
			}
		case r == '.':
			if stage != numInt {
				l.text.WriteRune(r)
				return l.error("number")
			}
			stage = numFrac
		case r == 'e' || r == 'E':
			if !mant || stage >= numExpSign {
				l.text.WriteRune(r)
				return l.error("number")
			}
			stage = numExpSign
		case (r == '+' || r == '-') && stage == numExpSign:
			stage = numExp
		case r == 'i':
			l.text.WriteRune(r)
			if !mant || stage >= numExpSign && !exp {
				return l.error("number")
			}
			return nil
		case unicode.IsLetter(r):
			l.text.WriteRune(r)
			return l.error("number")
		default:
			l.unread()
			if !mant || stage >= numExpSign && !exp {
				return l.error("number")
			}
			return nil
		}
		l.text.WriteRune(r)
	}
	if !mant || stage >= numExpSign && !exp {
		return l.error("number")
	}
	return nil
}

// name scans the remaining letters of an identifier.
func (l *lexer) name() error {
	for {
		r, ok, err := l.read()
		if err != nil || !ok {
			return err
		}
		if !unicode.IsLetter(r) {
			l.unread()
			return nil
		}
		l.text.WriteRune(r)
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.text.String(),
		Kind: kind,
		Col:  l.col - 1,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, including the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning, like "number", or the
	// empty string if the first rune of the token was invalid.
	Kind string
	// Col is the position of the last rune scanned.
	Col int
}

func (err *LexError) Error() string {
	what := "invalid token "
	if err.Kind != "" {
		what = "invalid " + err.Kind + " "
	}
	return errpos(err.Col, what+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
