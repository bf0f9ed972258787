// Released under an MIT license. See LICENSE.

// Package pair provides minimalisp's cons cell type.
package pair

import (
	"github.com/joe-jordan/minimalisp/internal/common"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
	"github.com/joe-jordan/minimalisp/internal/common/interface/truth"
)

const name = "pair"

// T (pair) is a cons cell. It is the only compound type. A quoted pair
// evaluates to an unquoted copy of itself.
type T struct {
	car    cell.I
	cdr    cell.I
	quoted bool
}

type pair = T

// Bool returns true. Every pair is true, whatever it holds.
func (p *pair) Bool() bool {
	return true
}

// Equal returns true if c is a pair with elements that are equal to p's.
// The quoted flag is not compared.
func (p *pair) Equal(c cell.I) bool {
	o, ok := c.(*T)
	if !ok {
		return false
	}

	if p == o {
		return true
	}

	// Compare a non-pair side first so a single differing leaf is found
	// before walking a long, equal chain.
	if Is(p.car) && !Is(p.cdr) {
		return p.cdr.Equal(o.cdr) && p.car.Equal(o.car)
	}

	return p.car.Equal(o.car) && p.cdr.Equal(o.cdr)
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	return p.format(literal.String)
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// Quoted returns true if p was written with a leading quote.
func (p *pair) Quoted() bool {
	return p.quoted
}

// String returns the printable representation of the pair p.
func (p *pair) String() string {
	return p.format(common.String)
}

// Unquoted returns a shallow copy of p with the quoted flag cleared.
func (p *pair) Unquoted() *T {
	return &pair{car: p.car, cdr: p.cdr}
}

func (p *pair) format(f func(cell.I) string) string {
	s := "(" + f(p.car) + " . " + f(p.cdr) + ")"
	if p.quoted {
		s = "'" + s
	}

	return s
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) *T {
	return &pair{car: h, cdr: t}
}

// Quote marks the pair c as quoted and returns it.
// If c is not a pair, this function will panic.
func Quote(c cell.I) *T {
	p := To(c)
	p.quoted = true

	return p
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// To returns a *T if c is a *T; Otherwise it panics.
func To(c cell.I) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)

	// The pair type has a truth value.
	_ = truth.I(&t)
}
