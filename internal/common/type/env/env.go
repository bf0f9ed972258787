// Released under an MIT license. See LICENSE.

// Package env provides minimalisp's environment (context) type.
package env

import (
	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/struct/hash"
	"github.com/joe-jordan/minimalisp/internal/common/type/null"
	"github.com/joe-jordan/minimalisp/internal/common/type/sym"
)

// Policy is the strictness policy for a run. It is fixed before evaluation
// starts and shared by every environment descending from the same root.
type Policy struct {
	// Permissive relaxes unbound symbols to NIL, fills or drops arguments
	// outside a builtin's arity, and lets car and cdr pass non-pairs through.
	Permissive bool
}

// T (env) maps symbols to values. Each env owns its local bindings and
// refers to, but does not own, the env it delegates to.
type T struct {
	local    *hash.T
	module   string
	policy   *Policy
	previous *T
}

type env = T

// Root creates an env with no enclosing env.
func Root(p *Policy) *T {
	if p == nil {
		p = &Policy{}
	}

	return &env{
		local:  hash.New(),
		policy: p,
	}
}

// New creates a new env that delegates to previous and shares its module
// identity and policy.
func New(previous *T) *T {
	return &env{
		local:    hash.New(),
		module:   previous.module,
		policy:   previous.policy,
		previous: previous,
	}
}

// Tagged creates a new env that delegates to previous but belongs to the
// module identified by module.
func Tagged(previous *T, module string) *T {
	e := New(previous)
	e.module = module

	return e
}

// Bind associates the symbol s with the cell v in e itself. Bindings in
// enclosing envs are shadowed, never changed.
func (e *env) Bind(s *sym.T, v cell.I) {
	e.local.Set(s.Key(), v)
}

// Contains returns true if s is bound in e or an enclosing env.
func (e *env) Contains(s *sym.T) bool {
	for ; e != nil; e = e.previous {
		if _, ok := e.local.Get(s.Key()); ok {
			return true
		}
	}

	return false
}

// Each calls fn for every binding local to e.
func (e *env) Each(fn func(s *sym.T, v cell.I)) {
	e.local.Each(func(k string, v cell.I) {
		fn(sym.New(k), v)
	})
}

// Import copies every binding local to from into e. Later changes to
// either env are not seen by the other.
func (e *env) Import(from *T) {
	from.Each(e.Bind)
}

// Lookup retrieves the value bound to s in e or an enclosing env.
// An unbound symbol is an error unless the policy is permissive, in which
// case it is NIL.
func (e *env) Lookup(s *sym.T) (cell.I, error) {
	for c := e; c != nil; c = c.previous {
		if v, ok := c.local.Get(s.Key()); ok {
			return v, nil
		}
	}

	if e.policy.Permissive {
		return null.Null, nil
	}

	return nil, failure.Unbound(s.Key())
}

// Module returns the identity of the module e belongs to.
func (e *env) Module() string {
	return e.module
}

// Permissive returns true if e belongs to a permissive run.
func (e *env) Permissive() bool {
	return e.policy.Permissive
}

// Size returns the number of bindings local to e.
func (e *env) Size() int {
	return e.local.Size()
}
