// Released under an MIT license. See LICENSE.

package commands

import (
	"math"
	"math/big"
	"math/rand"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
	"github.com/joe-jordan/minimalisp/internal/common/validate"
)

// An operation on two numbers. The integer form is used only when both
// operands are integers.
type operation struct {
	i func(z, a, b *big.Int) *big.Int
	f func(a, b float64) float64
}

var (
	difference = operation{ //nolint:gochecknoglobals
		(*big.Int).Sub,
		func(a, b float64) float64 { return a - b },
	}
	product = operation{ //nolint:gochecknoglobals
		(*big.Int).Mul,
		func(a, b float64) float64 { return a * b },
	}
	sum = operation{ //nolint:gochecknoglobals
		(*big.Int).Add,
		func(a, b float64) float64 { return a + b },
	}
)

func (o operation) apply(a, b *value.T) *value.T {
	if a.Kind() == value.Integers && b.Kind() == value.Integers {
		return value.Big(o.i(new(big.Int), a.Big(), b.Big()))
	}

	return value.Float(o.f(a.Float(), b.Float()))
}

func (o operation) fold(acc *value.T, v []*value.T) *value.T {
	for _, n := range v {
		acc = o.apply(acc, n)
	}

	return acc
}

func add(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds("+", value.Numbers, args)
	if err != nil {
		return nil, err
	}

	return sum.fold(value.Int(0), v), nil
}

func div(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds("/", value.Numbers, args)
	if err != nil {
		return nil, err
	}

	divisor := product.fold(value.Int(1), v[1:])
	if divisor.Float() == 0 {
		return nil, failure.Runtimef("/: division by zero")
	}

	return value.Float(v[0].Float() / divisor.Float()), nil
}

func idiv(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds("i/", value.Integers, args)
	if err != nil {
		return nil, err
	}

	divisor := product.fold(value.Int(1), v[1:])
	if divisor.Big().Sign() == 0 {
		return nil, failure.Runtimef("i/: division by zero")
	}

	q, _ := floored(v[0].Big(), divisor.Big())

	return value.Big(q), nil
}

func mod(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds("%", value.Integers, args)
	if err != nil {
		return nil, err
	}

	divisor := product.fold(value.Int(1), v[1:])
	if divisor.Big().Sign() == 0 {
		return nil, failure.Runtimef("%%: division by zero")
	}

	_, m := floored(v[0].Big(), divisor.Big())

	return value.Big(m), nil
}

func mul(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds("*", value.Numbers, args)
	if err != nil {
		return nil, err
	}

	return product.fold(value.Int(1), v), nil
}

func random(_ []cell.I, _ bool) (cell.I, error) {
	return value.Float(rand.Float64()), nil //nolint:gosec
}

func round(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds("ROUND", value.Floats, args)
	if err != nil {
		return nil, err
	}

	r := math.Round(v[0].Float())
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return nil, failure.Runtimef("ROUND: cannot round %s", v[0].String())
	}

	i, _ := big.NewFloat(r).Int(nil)

	return value.Big(i), nil
}

func sub(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds("-", value.Numbers, args)
	if err != nil {
		return nil, err
	}

	return difference.fold(v[0], v[1:]), nil
}

// Quotient rounded toward negative infinity, and a remainder with the
// sign of the divisor, so that a = q*b + m.
func floored(a, b *big.Int) (*big.Int, *big.Int) {
	q, m := new(big.Int).QuoRem(a, b, new(big.Int))
	if m.Sign() != 0 && m.Sign() != b.Sign() {
		q.Sub(q, big.NewInt(1))
		m.Add(m, b)
	}

	return q, m
}
