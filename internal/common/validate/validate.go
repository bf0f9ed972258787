// Released under an MIT license. See LICENSE.

// Package validate checks the evaluated arguments passed to primitives.
package validate

import (
	"fmt"
	"math"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
	"github.com/joe-jordan/minimalisp/internal/common/type/null"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
)

// Many is the maximum for primitives that accept any number of arguments.
const Many = math.MaxInt32

// Arity checks that between min and max arguments were passed to the
// primitive named name. When permissive, missing arguments are NIL-filled
// up to min and excess arguments are dropped instead.
func Arity(name string, args []cell.I, min, max int, permissive bool) ([]cell.I, error) {
	n := len(args)
	if n >= min && n <= max {
		return args, nil
	}

	if !permissive {
		return nil, failure.Runtimef(
			"%s: incorrect number of arguments. accepts %s, received %d",
			name, Range(min, max), n,
		)
	}

	if n > max {
		return args[:max], nil
	}

	for len(args) < min {
		args = append(args, null.Null)
	}

	return args, nil
}

// Kinds checks that every argument is a value of one of the kinds in k.
func Kinds(name string, k value.Kind, args []cell.I) ([]*value.T, error) {
	values := make([]*value.T, len(args))

	for i, a := range args {
		v, ok := a.(*value.T)
		if !ok {
			return nil, failure.Kind(name, "", literal.String(a))
		}

		if v.Kind()&k == 0 {
			return nil, failure.Kind(name, k.String(), literal.String(a))
		}

		values[i] = v
	}

	return values, nil
}

// Count returns n followed by label, pluralised with p when n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Range describes the number of arguments accepted between min and max.
func Range(min, max int) string {
	switch {
	case max == Many:
		return "at least " + Count(min, "argument", "s")
	case min == max:
		return Count(min, "argument", "s")
	}

	return fmt.Sprintf("%d to %s", min, Count(max, "argument", "s"))
}
