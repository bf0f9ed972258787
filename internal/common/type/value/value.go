// Released under an MIT license. See LICENSE.

// Package value provides minimalisp's scalar type. A value wraps exactly one
// integer, float or string.
package value

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/joe-jordan/minimalisp/internal/common"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
	"github.com/joe-jordan/minimalisp/internal/common/interface/truth"
)

const name = "value"

// Kind identifies the host type wrapped by a value. Kinds can be combined
// to describe the operands a primitive accepts.
type Kind int

// Value kinds.
const (
	Integers Kind = 1 << iota
	Floats
	Strings
)

// Kind sets.
const (
	Numbers = Integers | Floats
	Any     = Numbers | Strings
)

// String returns a description of the kind set k for error messages.
func (k Kind) String() string {
	switch k {
	case Integers:
		return "integers"
	case Floats:
		return "floats"
	case Strings:
		return "strings"
	case Numbers:
		return "numbers"
	case Any:
		return "numbers or strings"
	}

	return "values"
}

// T (value) wraps a host scalar. Integers are unbounded.
type T struct {
	kind Kind
	i    *big.Int
	f    float64
	s    string
}

type value = T

// True is the canonical result of a successful comparison.
func True() *T {
	return Int(1)
}

// Int wraps the integer i.
func Int(i int64) *T {
	return Big(big.NewInt(i))
}

// Big wraps the integer i. The value takes ownership of i.
func Big(i *big.Int) *T {
	return &value{kind: Integers, i: i}
}

// Float wraps the float f.
func Float(f float64) *T {
	return &value{kind: Floats, f: f}
}

// Str wraps the string s.
func Str(s string) *T {
	return &value{kind: Strings, s: s}
}

// Bool returns false for zero and the empty string, true otherwise.
func (v *value) Bool() bool {
	switch v.kind {
	case Integers:
		return v.i.Sign() != 0
	case Floats:
		return v.f != 0
	}

	return v.s != ""
}

// Compare orders v and c. The second result is false if v and c cannot be
// ordered, that is if they are not both numbers or both strings.
func (v *value) Compare(c *T) (int, bool) {
	switch {
	case v.kind == Integers && c.kind == Integers:
		return v.i.Cmp(c.i), true
	case v.kind&Numbers != 0 && c.kind&Numbers != 0:
		a, b := v.Float(), c.Float()

		switch {
		case a < b:
			return -1, true
		case a > b:
			return 1, true
		}

		return 0, true
	case v.kind == Strings && c.kind == Strings:
		return strings.Compare(v.s, c.s), true
	}

	return 0, false
}

// Equal returns true if c is a value wrapping an equal host value.
// Integers and floats compare numerically.
func (v *value) Equal(c cell.I) bool {
	o, ok := c.(*T)
	if !ok {
		return false
	}

	n, ok := v.Compare(o)

	return ok && n == 0
}

// Float returns the numeric value of v as a float.
func (v *value) Float() float64 {
	if v.kind == Integers {
		f, _ := new(big.Float).SetInt(v.i).Float64()

		return f
	}

	return v.f
}

// Big returns the integer wrapped by v. It must not be modified.
func (v *value) Big() *big.Int {
	return v.i
}

// Kind returns the kind of host value wrapped by v.
func (v *value) Kind() Kind {
	return v.kind
}

// Literal returns the source text for v. Decoding it yields an equal value.
func (v *value) Literal() string {
	if v.kind == Strings {
		return strconv.Quote(v.s)
	}

	return v.String()
}

// Name returns the type name for the value v.
func (v *value) Name() string {
	return name
}

// String returns the printable form of v. Strings are not quoted.
func (v *value) String() string {
	switch v.kind {
	case Integers:
		return v.i.String()
	case Floats:
		return formatFloat(v.f)
	}

	return v.s
}

// Text returns the string wrapped by v.
func (v *value) Text() string {
	return v.s
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

// Floats always carry a point or an exponent so they read back as floats.
func formatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t value

	// The value type is a cell.
	_ = cell.I(&t)

	// The value type has a literal representation.
	_ = literal.I(&t)

	// The value type is a stringer.
	_ = common.Stringer(&t)

	// The value type has a truth value.
	_ = truth.I(&t)
}
