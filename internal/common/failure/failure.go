// Released under an MIT license. See LICENSE.

// Package failure provides the error types raised while reading and
// evaluating minimalisp code.
//
// Every error unwinds to the caller of the interpreter. The only recovery
// is the relaxation applied when a run is permissive.
package failure

import (
	"fmt"

	"github.com/joe-jordan/minimalisp/internal/common/struct/loc"
)

// SyntaxError is raised while reading source text. It is always fatal.
type SyntaxError struct {
	Msg string

	// Incomplete is set when more input could complete the text.
	Incomplete bool

	// Loc, when known, is the line the error was found on.
	Loc *loc.T
}

func (e *SyntaxError) Error() string {
	if e.Loc != nil {
		return e.Loc.String() + ": syntax error: " + e.Msg
	}

	return "syntax error: " + e.Msg
}

// RuntimeError is the general evaluation error.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string {
	return "runtime error: " + e.Msg
}

// UnboundSymbolError is a RuntimeError raised when a strict lookup fails.
type UnboundSymbolError struct {
	RuntimeError
	Symbol string
}

// Unwrap returns the underlying RuntimeError.
func (e *UnboundSymbolError) Unwrap() error {
	return &e.RuntimeError
}

// ValueError is raised when a primitive receives an operand of the wrong kind.
type ValueError struct {
	Primitive string
	Expected  string
	Operand   string
}

func (e *ValueError) Error() string {
	if e.Expected == "" {
		return e.Primitive + ": cannot compute with non-value " + e.Operand
	}

	return e.Primitive + ": expected " + e.Expected + ", found " + e.Operand
}

// IOError is raised when a module or an input line cannot be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "i/o error: " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// Syntaxf creates a SyntaxError.
func Syntaxf(format string, args ...interface{}) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...)}
}

// Incompletef creates a SyntaxError for text that ends too early.
func Incompletef(format string, args ...interface{}) error {
	return &SyntaxError{Msg: fmt.Sprintf(format, args...), Incomplete: true}
}

// Runtimef creates a RuntimeError.
func Runtimef(format string, args ...interface{}) error {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}

// Unbound creates an UnboundSymbolError for the symbol named s.
func Unbound(s string) error {
	return &UnboundSymbolError{
		RuntimeError: RuntimeError{Msg: "symbol " + s + " was used unbound"},
		Symbol:       s,
	}
}

// Kind creates a ValueError. An empty expected set means the operand was
// not a value at all.
func Kind(primitive, expected, operand string) error {
	return &ValueError{
		Primitive: primitive,
		Expected:  expected,
		Operand:   operand,
	}
}

// IO creates an IOError.
func IO(path string, err error) error {
	return &IOError{Path: path, Err: err}
}
