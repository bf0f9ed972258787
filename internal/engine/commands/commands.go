// Released under an MIT license. See LICENSE.

// Package commands provides the minimalisp primitives that operate only on
// their evaluated arguments.
package commands

import (
	"math"

	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
	"github.com/joe-jordan/minimalisp/internal/common/validate"
)

// Command is a primitive and the number of arguments it accepts.
type Command struct {
	Min int
	Max int
	Fn  func(args []cell.I, permissive bool) (cell.I, error)
}

// Functions returns a mapping of names to the core primitives.
func Functions() map[string]Command {
	return map[string]Command{
		"%":     {2, validate.Many, mod},
		"*":     {0, validate.Many, mul},
		"+":     {0, validate.Many, add},
		"-":     {1, validate.Many, sub},
		".":     {0, validate.Many, concat},
		"/":     {1, validate.Many, div},
		"<":     {2, validate.Many, lt},
		"=":     {2, validate.Many, eq},
		"==":    {2, validate.Many, identical},
		">":     {2, validate.Many, gt},
		"car":   {1, 1, car},
		"cdr":   {1, 1, cdr},
		"cons":  {2, 2, cons},
		"i/":    {1, validate.Many, idiv},
		"rand":  {0, 0, random},
		"round": {1, 1, round},
		"split": {1, 2, split},
	}
}

// Maths returns a mapping of names to the optional maths primitives.
func Maths() map[string]Command {
	return map[string]Command{
		"acos":  unary("ACOS", math.Acos),
		"asin":  unary("ASIN", math.Asin),
		"atan":  unary("ATAN", math.Atan),
		"atan2": {2, 2, atan2},
		"cos":   unary("COS", math.Cos),
		"exp":   unary("EXP", math.Exp),
		"log":   {1, 2, logarithm},
		"sin":   unary("SIN", math.Sin),
		"tan":   unary("TAN", math.Tan),
	}
}

// Constants returns a mapping of names to the values bound alongside the
// maths primitives.
func Constants() map[string]cell.I {
	return map[string]cell.I{
		"pi": value.Float(math.Pi),
	}
}
