// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed minimalisp code.
package engine

import (
	"io"
	"log/slog"
	"os"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/type/env"
	"github.com/joe-jordan/minimalisp/internal/common/type/sym"
	"github.com/joe-jordan/minimalisp/internal/engine/boot"
	"github.com/joe-jordan/minimalisp/internal/engine/commands"
	"github.com/joe-jordan/minimalisp/internal/engine/task"
	"github.com/joe-jordan/minimalisp/internal/reader/parser"
	"github.com/joe-jordan/minimalisp/internal/system/cache"
)

// Module identities for code that does not come from an imported file.
const (
	BootstrapModule = "<bootstrap>"
	MainModule      = "<main>"
)

// T (engine) is a facade in front of the machinery for evaluating
// minimalisp code.
type T struct {
	logger *slog.Logger
	main   *env.T
	task   *task.T
}

// Option configures an engine.
type Option func(*settings)

type settings struct {
	bootstrap  string
	input      task.Prompter
	logger     *slog.Logger
	maths      bool
	output     io.Writer
	permissive bool
}

// Bootstrap replaces the built-in library with source. An empty source
// means no library is evaluated.
func Bootstrap(source string) Option {
	return func(s *settings) {
		s.bootstrap = source
	}
}

// Input sets the source of lines for gets.
func Input(p task.Prompter) Option {
	return func(s *settings) {
		s.input = p
	}
}

// Logger sets the logger.
func Logger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// Maths enables the trigonometric and logarithmic functions, and pi.
func Maths(enabled bool) Option {
	return func(s *settings) {
		s.maths = enabled
	}
}

// NoBootstrap skips the library evaluated before every program.
func NoBootstrap() Option {
	return Bootstrap("")
}

// Output sets the writer used by puts.
func Output(w io.Writer) Option {
	return func(s *settings) {
		s.output = w
	}
}

// Permissive selects the permissive policy when enabled.
func Permissive(enabled bool) Option {
	return func(s *settings) {
		s.permissive = enabled
	}
}

// New creates a new engine. The globals are built and the library is
// evaluated before New returns.
func New(opts ...Option) (*T, error) {
	s := &settings{
		bootstrap: boot.Script(),
		logger:    slog.Default(),
		output:    os.Stdout,
	}

	for _, opt := range opts {
		opt(s)
	}

	root := env.Root(&env.Policy{Permissive: s.permissive})

	task.Register(root, task.Forms()...)
	task.Register(root, task.Primitives(commands.Functions())...)

	t := task.New(root, cache.New())
	t.SetInput(s.input)
	t.SetLogger(s.logger)
	t.SetOutput(s.output)

	if s.bootstrap != "" {
		program, err := parser.Parse(s.bootstrap)
		if err != nil {
			return nil, err
		}

		top, err := t.Module(BootstrapModule, program)
		if err != nil {
			return nil, err
		}

		s.logger.Debug("bootstrap loaded", "bindings", top.Size())

		t.SetGlobals(top)
	}

	if s.maths {
		globals := t.Globals()

		task.Register(globals, task.Primitives(commands.Maths())...)

		for k, v := range commands.Constants() {
			globals.Bind(sym.New(k), v)
		}
	}

	return &T{
		logger: s.logger,
		main:   t.TopLevel(MainModule),
		task:   t,
	}, nil
}

// Evaluate evaluates each statement of program in the main environment
// and returns the value of the last. Bindings persist between calls.
func (e *T) Evaluate(program cell.I) (cell.I, error) {
	return e.task.Run(e.main, program)
}

// Lookup returns the value bound to name in the main environment.
func (e *T) Lookup(name string) (cell.I, error) {
	return e.main.Lookup(sym.New(name))
}

// Run parses and evaluates source as the main program.
func (e *T) Run(source string) (cell.I, error) {
	program, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	return e.Evaluate(program)
}

// RunFile reads, parses and evaluates the file at path as the main program.
func (e *T) RunFile(path string) (cell.I, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.IO(path, err)
	}

	e.logger.Debug("running", "path", path)

	return e.Run(string(source))
}
