// Released under an MIT license. See LICENSE.

// Package reader encapsulates the minimalisp lexer and parser for
// line-at-a-time input.
package reader

import (
	"errors"
	"strings"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/struct/loc"
	"github.com/joe-jordan/minimalisp/internal/reader/lexer"
	"github.com/joe-jordan/minimalisp/internal/reader/parser"
)

// T (reader) accumulates lines until they form a complete program.
type T struct {
	line    int
	name    string
	pending []string
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{name: name}
}

// Pending returns true if earlier lines are waiting to be completed.
func (r *reader) Pending() bool {
	return len(r.pending) != 0
}

// Reset discards any incomplete input.
func (r *reader) Reset() {
	r.pending = nil
}

// Scan reads the line and returns a cell.I on a complete parse or nil otherwise.
// If scan encounters any error other than running out of input, the
// pending lines are discarded and the error is returned.
func (r *reader) Scan(line string) (cell.I, error) {
	r.line++
	r.pending = append(r.pending, line)

	l := lexer.New(r.name)
	l.Scan(strings.Join(r.pending, "\n"))

	c, err := parser.New(l.Token).Parse()
	if err != nil {
		var se *failure.SyntaxError
		if errors.As(err, &se) && se.Incomplete {
			return nil, nil
		}

		r.Reset()

		if se != nil && se.Loc == nil {
			se.Loc = loc.New(l.Label(), r.line)
		}

		return nil, err
	}

	r.Reset()

	return c, nil
}
