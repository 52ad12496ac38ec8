// Command symdiff evaluates and differentiates symbolic expressions.
//
// Usage:
//
//	symdiff -eval 'x * sin(x)' x=1.5
//	symdiff -diff 'x * sin(x)' -by x
//	symdiff -repl
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/symexpr"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the command line configuration.
type options struct {
	eval, diff string
	by         string
	verb       string
	prec       uint
	depth      int
	complex    bool
	echo       bool
	repl       bool
}

// run executes the command with the given arguments and returns its exit
// status: 0 on success, 1 on failure, and 2 for invalid usage.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "symdiff: ", 0)
	var opts options
	fs := flag.NewFlagSet("symdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.eval, "eval", "", "evaluate `expr` with name=value bindings given as arguments")
	fs.StringVar(&opts.diff, "diff", "", "differentiate `expr` with respect to the variable named by -by")
	fs.StringVar(&opts.by, "by", "", "variable to differentiate by")
	fs.StringVar(&opts.verb, "fmt", "%g", "result formatting string")
	fs.UintVar(&opts.prec, "p", 64, "precision of real calculations in bits")
	fs.IntVar(&opts.depth, "depth", 0, "maximum nesting depth of expressions (0 for no limit)")
	fs.BoolVar(&opts.complex, "complex", false, "use complex arithmetic")
	fs.BoolVar(&opts.echo, "echo", false, "print parse trees")
	fs.BoolVar(&opts.repl, "repl", false, "start an interactive session")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	modes := 0
	for _, set := range []bool{opts.eval != "", opts.diff != "", opts.repl} {
		if set {
			modes++
		}
	}
	if modes != 1 {
		logger.Print("exactly one of -eval, -diff, or -repl is required")
		fs.Usage()
		return 2
	}
	if opts.diff != "" && opts.by == "" {
		logger.Print("-diff requires -by")
		return 2
	}
	if opts.eval == "" && fs.NArg() > 0 {
		logger.Printf("unexpected arguments %q", fs.Args())
		return 2
	}

	if opts.complex {
		return dispatch(&opts, fs.Args(), complexMode(&opts), stdout, logger)
	}
	return dispatch(&opts, fs.Args(), realMode(&opts), stdout, logger)
}

// mode bundles the parsers for one scalar type.
type mode[T symexpr.Scalar[T]] struct {
	// parse parses an expression.
	parse func(string) (symexpr.Expr[T], error)
	// value parses a single number.
	value func(string) (T, error)
}

func realMode(opts *options) mode[symexpr.Real] {
	popts := []symexpr.ParseOption{symexpr.Prec(opts.prec), symexpr.MaxDepth(opts.depth)}
	return mode[symexpr.Real]{
		parse: func(s string) (symexpr.Expr[symexpr.Real], error) {
			return symexpr.ParseString(s, popts...)
		},
		value: func(s string) (symexpr.Real, error) {
			return symexpr.ParseReal(s, opts.prec)
		},
	}
}

func complexMode(opts *options) mode[symexpr.Complex] {
	return mode[symexpr.Complex]{
		parse: func(s string) (symexpr.Expr[symexpr.Complex], error) {
			return symexpr.ParseComplexString(s, symexpr.MaxDepth(opts.depth))
		},
		value: symexpr.ParseComplex128,
	}
}

func dispatch[T symexpr.Scalar[T]](opts *options, args []string, m mode[T], stdout io.Writer, logger *log.Logger) int {
	var err error
	switch {
	case opts.eval != "":
		err = evaluate(opts, args, m, stdout)
	case opts.diff != "":
		err = differentiate(opts, m, stdout)
	default:
		err = interact(newSession(m, opts.verb, stdout), logger)
	}
	if err != nil {
		logger.Print(err)
		return 1
	}
	return 0
}

func evaluate[T symexpr.Scalar[T]](opts *options, args []string, m mode[T], stdout io.Writer) error {
	vars, err := bindings(args, m.value)
	if err != nil {
		return err
	}
	a, err := m.parse(opts.eval)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", opts.eval, err)
	}
	if opts.echo {
		fmt.Fprintf(stdout, "%v : ", a)
	}
	r, err := a.Eval(vars)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, opts.verb+"\n", r)
	return nil
}

func differentiate[T symexpr.Scalar[T]](opts *options, m mode[T], stdout io.Writer) error {
	a, err := m.parse(opts.diff)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", opts.diff, err)
	}
	if opts.echo {
		fmt.Fprintf(stdout, "%v : ", a)
	}
	fmt.Fprintln(stdout, a.Diff(opts.by))
	return nil
}

// bindings parses name=value arguments.
func bindings[T symexpr.Scalar[T]](args []string, value func(string) (T, error)) (map[string]T, error) {
	vars := make(map[string]T, len(args))
	for _, arg := range args {
		d := strings.SplitN(arg, "=", 2)
		if len(d) != 2 {
			return nil, fmt.Errorf("invalid assignment %q: must be name=value", arg)
		}
		name, val := strings.TrimSpace(d[0]), strings.TrimSpace(d[1])
		if !isName(name) {
			return nil, fmt.Errorf("invalid assignment %q: bad variable name", arg)
		}
		v, err := value(val)
		if err != nil {
			return nil, fmt.Errorf("invalid assignment %q: %w", arg, err)
		}
		vars[name] = v
	}
	return vars, nil
}
