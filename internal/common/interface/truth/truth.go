// Released under an MIT license. See LICENSE.

// Package truth defines the interface for minimalisp types that have a
// truth value independent of any environment.
package truth

import (
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell. Cells without a truth value
// are false.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		return false
	}

	return b.Bool()
}
