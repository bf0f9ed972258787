// Released under an MIT license. See LICENSE.

// Package hash provides minimalisp's name to value mapping type.
package hash

import (
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
)

// T (hash) maps names to values.
type T struct {
	m map[string]cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Each calls fn for every association in the hash h.
func (h *hash) Each(fn func(k string, v cell.I)) {
	if h == nil {
		return
	}

	for k, v := range h.m {
		fn(k, v)
	}
}

// Get retrieves the value associated with the name k in the hash h.
func (h *hash) Get(k string) (cell.I, bool) {
	if h == nil {
		return nil, false
	}

	v, ok := h.m[k]

	return v, ok
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	h.m[k] = v
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	return len(h.m)
}
