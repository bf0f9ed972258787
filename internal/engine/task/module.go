// Released under an MIT license. See LICENSE.

package task

import (
	"os"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/env"
	"github.com/joe-jordan/minimalisp/internal/reader/parser"
	"github.com/joe-jordan/minimalisp/internal/system/cache"
)

// Load returns the top-level environment of the module at path, reading
// and evaluating the file only the first time it is needed.
func (t *T) Load(path string) (*env.T, error) {
	id, err := cache.Canonical(path)
	if err != nil {
		return nil, failure.IO(path, err)
	}

	if top, ok := t.modules.Get(id); ok {
		t.logger.Debug("module cache hit", "module", id)

		return top, nil
	}

	source, err := os.ReadFile(id)
	if err != nil {
		return nil, failure.IO(path, err)
	}

	program, err := parser.Parse(string(source))
	if err != nil {
		return nil, err
	}

	t.logger.Debug("loading module", "module", id, "cached", t.modules.Size())

	return t.Module(id, program)
}

// Module evaluates program as the body of a closure with no arguments
// and records its environment as the top level of the module id. The
// module is recorded before evaluation starts, so modules that import
// each other see whatever bindings have been made so far. If evaluation
// fails the module is forgotten.
func (t *T) Module(id string, program cell.I) (*env.T, error) {
	statements, err := t.statements(program)
	if err != nil {
		return nil, err
	}

	k := &Closure{Body: statements, Module: id}

	top := t.TopLevel(id)
	if _, err := k.run(t, top); err != nil {
		t.modules.Delete(id)

		return nil, err
	}

	return k.Last(), nil
}

// TopLevel creates and records a fresh top-level environment for the
// module id, rooted at the globals.
func (t *T) TopLevel(id string) *env.T {
	top := env.Tagged(t.globals, id)

	t.modules.Set(id, top)

	return top
}
