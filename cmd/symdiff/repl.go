package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/symexpr"
)

const (
	historyFile = ".symdiff_history"
	prompt      = "> "
	helpText    = `Enter an expression to evaluate it, or one of:
  name = expr        evaluate expr and bind the result to name
  :diff var [expr]   differentiate expr, or the last expression, by var
  :subst var expr    replace var in the last expression by expr
  :vars              list bindings
  :quit              exit`
)

var commands = []string{":diff", ":help", ":quit", ":subst", ":vars"}

// session is the state of an interactive session: variable bindings and the
// most recently entered expression.
type session[T symexpr.Scalar[T]] struct {
	m    mode[T]
	vars map[string]T
	cur  symexpr.Expr[T]
	has  bool
	verb string
	out  io.Writer
}

func newSession[T symexpr.Scalar[T]](m mode[T], verb string, out io.Writer) *session[T] {
	return &session[T]{
		m:    m,
		vars: make(map[string]T),
		verb: verb + "\n",
		out:  out,
	}
}

var errNoExpr = errors.New("no current expression")

// exec runs one line of input. quit is true if the session should end.
func (s *session[T]) exec(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if strings.HasPrefix(line, ":") {
		cmd, rest := cut(line)
		switch cmd {
		case ":quit":
			return true, nil
		case ":help":
			fmt.Fprintln(s.out, helpText)
		case ":vars":
			s.listVars()
		case ":diff":
			return false, s.diff(rest)
		case ":subst":
			return false, s.subst(rest)
		default:
			return false, fmt.Errorf("unknown command %s; try :help", cmd)
		}
		return false, nil
	}
	if name, src, ok := strings.Cut(line, "="); ok {
		return false, s.assign(strings.TrimSpace(name), src)
	}
	a, err := s.m.parse(line)
	if err != nil {
		return false, err
	}
	s.cur, s.has = a, true
	r, err := a.Eval(s.vars)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(s.out, s.verb, r)
	return false, nil
}

func (s *session[T]) assign(name, src string) error {
	if !isName(name) {
		return fmt.Errorf("invalid assignment to %q: bad variable name", name)
	}
	a, err := s.m.parse(src)
	if err != nil {
		return err
	}
	r, err := a.Eval(s.vars)
	if err != nil {
		return err
	}
	s.vars[name] = r
	fmt.Fprintf(s.out, "%s = "+s.verb, name, r)
	return nil
}

func (s *session[T]) diff(args string) error {
	name, src := cut(args)
	if !isName(name) {
		return fmt.Errorf("usage: :diff var [expr]")
	}
	a := s.cur
	if src != "" {
		var err error
		if a, err = s.m.parse(src); err != nil {
			return err
		}
	} else if !s.has {
		return errNoExpr
	}
	fmt.Fprintln(s.out, a.Diff(name))
	return nil
}

func (s *session[T]) subst(args string) error {
	name, src := cut(args)
	if !isName(name) || src == "" {
		return fmt.Errorf("usage: :subst var expr")
	}
	if !s.has {
		return errNoExpr
	}
	by, err := s.m.parse(src)
	if err != nil {
		return err
	}
	s.cur = s.cur.Subst(name, by)
	fmt.Fprintln(s.out, s.cur)
	return nil
}

func (s *session[T]) listVars() {
	names := make([]string, 0, len(s.vars))
	for k := range s.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Fprintf(s.out, "%s = "+s.verb, k, s.vars[k])
	}
}

// complete completes the word before pos with command, function, and variable
// names.
func (s *session[T]) complete(line string, pos int) (head string, completions []string, tail string) {
	rs := []rune(line)
	if pos > len(rs) {
		pos = len(rs)
	}
	start := pos
	for start > 0 && unicode.IsLetter(rs[start-1]) {
		start--
	}
	if start == 1 && rs[0] == ':' {
		start = 0
	}
	head, word, tail := string(rs[:start]), string(rs[start:pos]), string(rs[pos:])
	if word == "" {
		return head, nil, tail
	}
	var cands []string
	if word[0] == ':' {
		cands = commands
	} else {
		for _, f := range symexpr.Funcs() {
			cands = append(cands, f+"(")
		}
		for k := range s.vars {
			cands = append(cands, k)
		}
		sort.Strings(cands)
	}
	for _, c := range cands {
		if strings.HasPrefix(c, word) {
			completions = append(completions, c)
		}
	}
	return head, completions, tail
}

// interact runs the session on the terminal until the input ends or the user
// quits.
func interact[T symexpr.Scalar[T]](s *session[T], logger *log.Logger) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(s.complete)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		quit, err := s.exec(line)
		if err != nil {
			logger.Print(err)
		}
		if quit {
			return nil
		}
	}
}

// cut splits s at the first run of whitespace.
func cut(s string) (first, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// isName reports whether s is a valid variable name.
func isName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
