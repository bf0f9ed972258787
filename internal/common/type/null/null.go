// Released under an MIT license. See LICENSE.

// Package null provides minimalisp's NIL.
package null

import (
	"github.com/joe-jordan/minimalisp/internal/common"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
	"github.com/joe-jordan/minimalisp/internal/common/interface/truth"
)

const name = "nil"

// T (null) is the type of NIL. NIL is the empty list, the end of every
// list and the false value.
type T struct{}

type null = T

// Null is the only NIL.
var Null cell.I = &null{} //nolint:gochecknoglobals

// Bool returns false. NIL is never true.
func (n *null) Bool() bool {
	return false
}

// Equal returns true if c is NIL.
func (n *null) Equal(c cell.I) bool {
	return Is(c)
}

// Literal returns the literal representation of NIL.
func (n *null) Literal() string {
	return "NIL"
}

// Name returns the type name for NIL.
func (n *null) Name() string {
	return name
}

// String returns the text of NIL.
func (n *null) String() string {
	return "NIL"
}

// Is returns true if c is NIL.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t null

	// The null type is a cell.
	_ = cell.I(&t)

	// The null type has a literal representation.
	_ = literal.I(&t)

	// The null type is a stringer.
	_ = common.Stringer(&t)

	// The null type has a truth value.
	_ = truth.I(&t)
}
