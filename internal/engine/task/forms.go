// Released under an MIT license. See LICENSE.

package task

import (
	"fmt"
	"strings"

	"github.com/joe-jordan/minimalisp/internal/common"
	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
	"github.com/joe-jordan/minimalisp/internal/common/type/env"
	"github.com/joe-jordan/minimalisp/internal/common/type/list"
	"github.com/joe-jordan/minimalisp/internal/common/type/null"
	"github.com/joe-jordan/minimalisp/internal/common/type/pair"
	"github.com/joe-jordan/minimalisp/internal/common/type/sym"
	"github.com/joe-jordan/minimalisp/internal/common/type/value"
	"github.com/joe-jordan/minimalisp/internal/common/validate"
	"github.com/joe-jordan/minimalisp/internal/reader/parser"
)

// Forms returns the builtins that need access to the task or to the
// caller's environment.
func Forms() []*Builtin {
	return []*Builtin{
		NewBuiltin("BIND", 2, 2, bind),
		NewBuiltin("DOWHILE", 1, validate.Many, dowhile),
		NewBuiltin("EVAL", 1, validate.Many, eval),
		NewBuiltin("GETS", 0, validate.Many, gets),
		NewBuiltin("IF", 2, 3, iff),
		NewBuiltin("IMPORT", 1, 1, imports),
		NewBuiltin("PUTS", 0, validate.Many, puts),
		NewBuiltin("WITH", 2, validate.Many, with),
	}
}

// Register binds each builtin in e under its own name.
func Register(e *env.T, builtins ...*Builtin) {
	for _, b := range builtins {
		e.Bind(sym.New(b.name), b)
	}
}

func bind(_ *T, e *env.T, args []cell.I) (cell.I, error) {
	if !sym.Is(args[0]) {
		if e.Permissive() {
			return null.Null, nil
		}

		return nil, failure.Runtimef(
			"cannot BIND value %s to non-symbol %s",
			literal.String(args[1]), literal.String(args[0]),
		)
	}

	e.Bind(sym.To(args[0]), args[1])

	return null.Null, nil
}

// Bindings made by the body are made in the caller's environment.
func dowhile(t *T, e *env.T, args []cell.I) (cell.I, error) {
	for {
		result, err := t.sequence(e, args)
		if err != nil {
			return nil, err
		}

		if !t.Truth(e, result) {
			return null.Null, nil
		}
	}
}

func eval(t *T, e *env.T, args []cell.I) (cell.I, error) {
	return t.sequence(e, args)
}

func gets(t *T, e *env.T, args []cell.I) (cell.I, error) {
	if len(args) == 0 {
		return t.gets(">")
	}

	for _, a := range args {
		if !sym.Is(a) {
			if e.Permissive() {
				continue
			}

			return nil, failure.Runtimef(
				"GETS: cannot bind to non-symbol %s", literal.String(a),
			)
		}

		c, err := t.gets(literal.String(a) + ">")
		if err != nil {
			return nil, err
		}

		e.Bind(sym.To(a), c)
	}

	return null.Null, nil
}

func iff(t *T, e *env.T, args []cell.I) (cell.I, error) {
	if t.Truth(e, args[0]) {
		return t.Eval(e, args[1])
	}

	if len(args) == 3 { //nolint:gomnd
		return t.Eval(e, args[2])
	}

	return null.Null, nil
}

func imports(t *T, e *env.T, args []cell.I) (cell.I, error) {
	v, err := validate.Kinds("IMPORT", value.Strings, args)
	if err != nil {
		return nil, err
	}

	top, err := t.Load(v[0].Text())
	if err != nil {
		return nil, err
	}

	e.Import(top)

	return null.Null, nil
}

func puts(t *T, _ *env.T, args []cell.I) (cell.I, error) {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(common.String(a))
	}

	if _, err := fmt.Fprintln(t.output, b.String()); err != nil {
		return nil, failure.IO("<stdout>", err)
	}

	return null.Null, nil
}

func with(_ *T, e *env.T, args []cell.I) (cell.I, error) {
	k := &Closure{Body: args[1:], Module: e.Module()}

	params := args[0]

	switch {
	case sym.Is(params):
		k.Rest = sym.To(params)
	case pair.Is(params), null.Is(params):
		v, proper := list.Slice(params)
		if !proper && !e.Permissive() {
			return nil, failure.Runtimef(
				"WITH: %s is not an argument list", literal.String(params),
			)
		}

		for _, p := range v {
			if sym.Is(p) {
				k.Params = append(k.Params, sym.To(p))

				continue
			}

			if !e.Permissive() {
				return nil, failure.Runtimef(
					"WITH: cannot bind an argument to non-symbol %s", literal.String(p),
				)
			}

			k.Params = append(k.Params, nil)
		}
	default:
		if !e.Permissive() {
			return nil, failure.Runtimef(
				"WITH: %s is not an argument list", literal.String(params),
			)
		}
	}

	return k, nil
}

func (t *T) gets(prompt string) (cell.I, error) {
	if t.input == nil {
		return nil, failure.Runtimef("GETS: no input available")
	}

	line, err := t.input.Prompt(prompt)
	if err != nil {
		return nil, failure.IO("<stdin>", err)
	}

	return parser.ParseLine(line)
}
