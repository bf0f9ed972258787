// Released under an MIT license. See LICENSE.

// Package sym provides minimalisp's symbol cell type.
package sym

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/joe-jordan/minimalisp/internal/common"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
)

const name = "symbol"

// T (sym) is an identifier. Symbols are case-insensitive: the name is
// stored upper-cased. A quoted symbol evaluates to itself.
type T struct {
	name   string
	quoted bool
}

type sym = T

// New creates an unquoted sym named v.
func New(v string) *T {
	return &sym{name: normalize(v)}
}

// Quoted creates a quoted sym named v.
func Quoted(v string) *T {
	return &sym{name: normalize(v), quoted: true}
}

// Equal returns true if c is a sym with the same name. Quoting is ignored.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.name == To(c).name
}

// Key returns the name used to bind s in an environment.
func (s *sym) Key() string {
	return s.name
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	if s.quoted {
		return "'" + s.name
	}

	return s.name
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// Quoted returns true if s was written with a leading quote.
func (s *sym) Quoted() bool {
	return s.quoted
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return s.Literal()
}

// Unquoted returns a fresh, unquoted sym with the same name as s.
func (s *sym) Unquoted() *T {
	return &sym{name: s.name}
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

func normalize(v string) string {
	for i := 0; i < len(v); i++ {
		if c := v[i]; c >= 'a' && c <= 'z' || c >= 0x80 {
			// A Caser holds state and is not safe to share.
			return cases.Upper(language.Und).String(v)
		}
	}

	return v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
