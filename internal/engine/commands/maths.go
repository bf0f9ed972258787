// Released under an MIT license. See LICENSE.

package commands

import (
	"math"

	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
	"github.com/joe-jordan/minimalisp/internal/common/validate"
)

func atan2(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds("ATAN2", value.Numbers, args)
	if err != nil {
		return nil, err
	}

	return value.Float(math.Atan2(v[0].Float(), v[1].Float())), nil
}

// The base defaults to 10.
func logarithm(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds("LOG", value.Numbers, args)
	if err != nil {
		return nil, err
	}

	base := 10.0
	if len(v) == 2 {
		base = v[1].Float()
	}

	return value.Float(math.Log(v[0].Float()) / math.Log(base)), nil
}

func unary(name string, fn func(float64) float64) Command {
	return Command{
		Min: 1,
		Max: 1,
		Fn: func(args []cell.I, _ bool) (cell.I, error) {
			v, err := validate.Kinds(name, value.Numbers, args)
			if err != nil {
				return nil, err
			}

			return value.Float(fn(v[0].Float())), nil
		},
	}
}
