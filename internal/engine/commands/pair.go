// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
	"github.com/joe-jordan/minimalisp/internal/common/type/pair"
)

func car(args []cell.I, permissive bool) (cell.I, error) {
	return access("CAR", pair.Car, args[0], permissive)
}

func cdr(args []cell.I, permissive bool) (cell.I, error) {
	return access("CDR", pair.Cdr, args[0], permissive)
}

func cons(args []cell.I, _ bool) (cell.I, error) {
	return pair.Cons(args[0], args[1]), nil
}

// Non-pairs pass through unchanged when permissive.
func access(name string, field func(cell.I) cell.I, c cell.I, permissive bool) (cell.I, error) {
	if pair.Is(c) {
		return field(c), nil
	}

	if permissive {
		return c, nil
	}

	return nil, failure.Runtimef("%s: %s is not a pair", name, literal.String(c))
}
