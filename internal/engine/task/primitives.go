// Released under an MIT license. See LICENSE.

package task

import (
	"sort"
	"strings"

	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/env"
	"github.com/joe-jordan/minimalisp/internal/engine/commands"
)

// Primitives wraps each command as a builtin named for its key.
func Primitives(m map[string]commands.Command) []*Builtin {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}

	sort.Strings(names)

	builtins := make([]*Builtin, 0, len(names))

	for _, k := range names {
		c := m[k]

		builtins = append(builtins, NewBuiltin(
			strings.ToUpper(k), c.Min, c.Max,
			func(_ *T, e *env.T, args []cell.I) (cell.I, error) {
				return c.Fn(args, e.Permissive())
			},
		))
	}

	return builtins
}
