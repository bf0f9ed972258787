// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/env"
	"github.com/joe-jordan/minimalisp/internal/common/validate"
)

// Builtin is minimalisp's arguments-evaluated, arity-checked primitive type.
type Builtin struct {
	fn   func(t *T, e *env.T, args []cell.I) (cell.I, error)
	max  int
	min  int
	name string
}

// NewBuiltin creates a builtin called name that accepts between min and
// max arguments.
func NewBuiltin(
	name string, min, max int, fn func(t *T, e *env.T, args []cell.I) (cell.I, error),
) *Builtin {
	return &Builtin{fn: fn, max: max, min: min, name: name}
}

// The builtin type is a cell.

// Equal returns true if the cell c is the same builtin as b.
func (b *Builtin) Equal(c cell.I) bool {
	p, ok := c.(*Builtin)
	return ok && p == b
}

// Literal returns the printed form of the builtin b.
func (b *Builtin) Literal() string {
	return "(builtin " + b.name + ")"
}

// Name returns the name of the builtin type.
func (*Builtin) Name() string {
	return "builtin"
}

// Methods specific to builtin.

// Call evaluates args in e, checks their number and calls the builtin b.
func (b *Builtin) Call(t *T, e *env.T, args cell.I) (cell.I, error) {
	v, err := t.evalArgs(e, args)
	if err != nil {
		return nil, err
	}

	v, err = validate.Arity(b.name, v, b.min, b.max, e.Permissive())
	if err != nil {
		return nil, err
	}

	return b.fn(t, e, v)
}

// String returns the printed form of the builtin b.
func (b *Builtin) String() string {
	return b.Literal()
}
