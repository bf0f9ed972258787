// Released under an MIT license. See LICENSE.

// Package literal defines the interface for minimalisp types that can be
// expressed as source text.
package literal

import (
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
// Cells without a literal form, like callables, are shown by type name.
func String(c cell.I) string {
	l, ok := c.(I)
	if !ok {
		return "(" + c.Name() + ")"
	}

	return l.Literal()
}
