// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/list"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
	"github.com/joe-jordan/minimalisp/internal/common/validate"
)

func concat(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds(".", value.Strings, args)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	for _, s := range v {
		b.WriteString(s.Text())
	}

	return value.Str(b.String()), nil
}

// Without a separator, or with an empty one, split on runs of whitespace.
func split(args []cell.I, _ bool) (cell.I, error) {
	v, err := validate.Kinds("SPLIT", value.Strings, args)
	if err != nil {
		return nil, err
	}

	var fields []string
	if len(v) == 2 && v[1].Text() != "" {
		fields = strings.Split(v[0].Text(), v[1].Text())
	} else {
		fields = strings.Fields(v[0].Text())
	}

	cells := make([]cell.I, len(fields))
	for i, f := range fields {
		cells[i] = value.Str(f)
	}

	return list.New(cells...), nil
}
