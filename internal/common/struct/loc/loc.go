// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track where source text came from.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Line int    // Line number (row).
	Name string // Label for the source of the text.
}

type loc = T

// New creates a location for line in the source labelled name.
func New(name string, line int) *T {
	return &loc{Line: line, Name: name}
}

func (l *loc) String() string {
	if l.Line <= 0 {
		return l.Name
	}

	return l.Name + ":" + strconv.Itoa(l.Line)
}
