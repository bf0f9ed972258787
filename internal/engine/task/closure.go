// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/env"
	"github.com/joe-jordan/minimalisp/internal/common/type/list"
	"github.com/joe-jordan/minimalisp/internal/common/type/sym"
	"github.com/joe-jordan/minimalisp/internal/common/validate"
)

const closureName = "(user function)"

// Closure is a user-defined routine. It remembers the module it was
// created in, not the environment.
type Closure struct {
	Body   []cell.I // Body of the routine.
	Module string   // Identity of the defining module.
	Params []*sym.T // Param labels. A nil label binds nothing.
	Rest   *sym.T   // When set, all arguments are bound to Rest as a list.

	last *env.T
}

// The closure type is a cell.

// Equal returns true if the cell c is the same closure as k.
func (k *Closure) Equal(c cell.I) bool {
	p, ok := c.(*Closure)
	return ok && p == k
}

// Literal returns the printed form of the closure k.
func (k *Closure) Literal() string {
	return closureName
}

// Name returns the name of the closure type.
func (*Closure) Name() string {
	return "closure"
}

// Methods specific to closure.

// Call evaluates args in e and runs the body of the closure k in a new
// environment. When k was defined in the same module as e, the new
// environment extends e. Otherwise it extends the top level of k's module.
func (k *Closure) Call(t *T, e *env.T, args cell.I) (cell.I, error) {
	v, err := t.evalArgs(e, args)
	if err != nil {
		return nil, err
	}

	max := len(k.Params)
	if k.Rest != nil {
		max = validate.Many
	}

	v, err = validate.Arity(closureName, v, 0, max, e.Permissive())
	if err != nil {
		return nil, err
	}

	parent := e
	if k.Module != e.Module() {
		top, ok := t.modules.Get(k.Module)
		if !ok {
			top = t.globals
		}

		parent = top
	}

	child := env.Tagged(parent, k.Module)

	if k.Rest != nil {
		child.Bind(k.Rest, list.New(v...))
	} else {
		for i, a := range v {
			if k.Params[i] != nil {
				child.Bind(k.Params[i], a)
			}
		}
	}

	return k.run(t, child)
}

// Last returns the environment the closure k last ran in.
func (k *Closure) Last() *env.T {
	return k.last
}

// String returns the printed form of the closure k.
func (k *Closure) String() string {
	return k.Literal()
}

func (k *Closure) run(t *T, e *env.T) (cell.I, error) {
	result, err := t.sequence(e, k.Body)

	k.last = e

	return result, err
}
