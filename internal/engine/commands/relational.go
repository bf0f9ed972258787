// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
	"github.com/joe-jordan/minimalisp/internal/common/type/null"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
	"github.com/joe-jordan/minimalisp/internal/common/validate"
)

func eq(args []cell.I, _ bool) (cell.I, error) {
	for i := 1; i < len(args); i++ {
		if !args[i-1].Equal(args[i]) {
			return null.Null, nil
		}
	}

	return value.True(), nil
}

func gt(args []cell.I, _ bool) (cell.I, error) {
	return ordered(">", args, func(n int) bool { return n > 0 })
}

func identical(args []cell.I, _ bool) (cell.I, error) {
	for i := 1; i < len(args); i++ {
		if args[i-1] != args[i] {
			return null.Null, nil
		}
	}

	return value.True(), nil
}

func lt(args []cell.I, _ bool) (cell.I, error) {
	return ordered("<", args, func(n int) bool { return n < 0 })
}

// Compare each adjacent pair of operands. Numbers and strings cannot be
// compared with each other.
func ordered(name string, args []cell.I, holds func(int) bool) (cell.I, error) {
	v, err := validate.Kinds(name, value.Any, args)
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(v); i++ {
		n, ok := v[i-1].Compare(v[i])
		if !ok {
			expected := value.Strings
			if v[i-1].Kind()&value.Numbers != 0 {
				expected = value.Numbers
			}

			return nil, failure.Kind(name, expected.String(), literal.String(v[i]))
		}

		if !holds(n) {
			return null.Null, nil
		}
	}

	return value.True(), nil
}
