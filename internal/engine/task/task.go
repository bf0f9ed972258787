// Released under an MIT license. See LICENSE.

// Package task provides the machinery used to evaluate minimalisp programs.
package task

import (
	"io"
	"log/slog"
	"os"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
	"github.com/joe-jordan/minimalisp/internal/common/type/env"
	"github.com/joe-jordan/minimalisp/internal/common/type/list"
	"github.com/joe-jordan/minimalisp/internal/common/type/null"
	"github.com/joe-jordan/minimalisp/internal/common/type/pair"
	"github.com/joe-jordan/minimalisp/internal/common/type/sym"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
	"github.com/joe-jordan/minimalisp/internal/system/cache"
)

// Prompter supplies lines of input to gets.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Callable is a cell that can appear in the head position of an
// application. Its arguments arrive unevaluated.
type Callable interface {
	cell.I
	Call(t *T, e *env.T, args cell.I) (cell.I, error)
}

// T (task) holds the collaborators shared by every evaluation in a run.
type T struct {
	globals *env.T
	input   Prompter
	logger  *slog.Logger
	modules *cache.T
	output  io.Writer
}

// New creates a new task. Modules are rooted at globals.
func New(globals *env.T, modules *cache.T) *T {
	return &T{
		globals: globals,
		logger:  slog.Default(),
		modules: modules,
		output:  os.Stdout,
	}
}

// Globals returns the environment new modules are rooted at.
func (t *T) Globals() *env.T {
	return t.globals
}

// SetGlobals replaces the environment new modules are rooted at.
func (t *T) SetGlobals(e *env.T) {
	t.globals = e
}

// SetInput sets the source of lines for gets.
func (t *T) SetInput(p Prompter) {
	t.input = p
}

// SetLogger sets the logger.
func (t *T) SetLogger(l *slog.Logger) {
	t.logger = l
}

// SetOutput sets the writer used by puts.
func (t *T) SetOutput(w io.Writer) {
	t.output = w
}

// Eval evaluates c in the environment e.
func (t *T) Eval(e *env.T, c cell.I) (cell.I, error) {
	switch {
	case null.Is(c), value.Is(c):
		return c, nil
	case sym.Is(c):
		s := sym.To(c)
		if s.Quoted() {
			return s.Unquoted(), nil
		}

		return e.Lookup(s)
	case pair.Is(c):
		p := pair.To(c)
		if p.Quoted() {
			return p.Unquoted(), nil
		}

		return t.apply(e, p)
	}

	if _, ok := c.(Callable); ok {
		return nil, failure.Runtimef("cannot evaluate a function")
	}

	return nil, failure.Runtimef("cannot evaluate %s", literal.String(c))
}

// Run evaluates each statement in program, in order, in the environment e
// and returns the value of the last.
func (t *T) Run(e *env.T, program cell.I) (cell.I, error) {
	statements, err := t.statements(program)
	if err != nil {
		return nil, err
	}

	return t.sequence(e, statements)
}

// Truth returns the truth of v. NIL is false, values are false when zero
// or empty, pairs are true and symbols are true if bound in e.
func (t *T) Truth(e *env.T, v cell.I) bool {
	switch {
	case null.Is(v):
		return false
	case value.Is(v):
		return value.To(v).Bool()
	case pair.Is(v):
		return true
	case sym.Is(v):
		return e.Contains(sym.To(v))
	}

	return false
}

func (t *T) apply(e *env.T, p *pair.T) (cell.I, error) {
	head := pair.Car(p)

	var (
		f   cell.I
		err error
	)

	switch {
	case sym.Is(head):
		f, err = e.Lookup(sym.To(head))
		if err != nil {
			return nil, err
		}

		if _, ok := f.(Callable); !ok {
			return nil, failure.Runtimef(
				"symbol %s is not bound to a function, but %s",
				literal.String(head), literal.String(f),
			)
		}
	case pair.Is(head):
		f, err = t.Eval(e, head)
		if err != nil {
			return nil, err
		}
	default:
		f = head
	}

	c, ok := f.(Callable)
	if !ok {
		return nil, failure.Runtimef(
			"%s cannot be executed as a function", literal.String(f),
		)
	}

	return c.Call(t, e, pair.Cdr(p))
}

// Every argument is evaluated in the caller's environment before any
// builtin or closure body sees it.
func (t *T) evalArgs(e *env.T, args cell.I) ([]cell.I, error) {
	var v []cell.I

	for ; pair.Is(args); args = pair.Cdr(args) {
		c, err := t.Eval(e, pair.Car(args))
		if err != nil {
			return nil, err
		}

		v = append(v, c)
	}

	if !null.Is(args) {
		return nil, failure.Runtimef(
			"improper argument list ending in %s", literal.String(args),
		)
	}

	return v, nil
}

func (t *T) sequence(e *env.T, lines []cell.I) (cell.I, error) {
	var (
		err    error
		result cell.I = null.Null
	)

	for _, line := range lines {
		result, err = t.Eval(e, line)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (t *T) statements(program cell.I) ([]cell.I, error) {
	v, proper := list.Slice(program)
	if !proper {
		return nil, failure.Runtimef("a program must be a list of statements")
	}

	return v, nil
}
