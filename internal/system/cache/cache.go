// Released under an MIT license. See LICENSE.

// Package cache holds the top-level environments of loaded modules,
// keyed by module identity.
package cache

import (
	"path/filepath"

	"github.com/joe-jordan/minimalisp/internal/common/type/env"
)

// T (cache) maps module identities to top-level environments.
// Entries are never evicted except when a module fails to load.
type T struct {
	modules map[string]*env.T
}

type cache = T

// New creates an empty module cache.
func New() *T {
	return &T{modules: map[string]*env.T{}}
}

// Delete removes the module id.
func (c *cache) Delete(id string) {
	delete(c.modules, id)
}

// Get returns the top-level environment for the module id.
func (c *cache) Get(id string) (*env.T, bool) {
	e, ok := c.modules[id]

	return e, ok
}

// Set records e as the top-level environment for the module id.
func (c *cache) Set(id string, e *env.T) {
	c.modules[id] = e
}

// Size returns the number of cached modules.
func (c *cache) Size() int {
	return len(c.modules)
}

// Canonical returns the absolute path, with symbolic links resolved, that
// identifies the module at path.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}
