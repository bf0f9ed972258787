// Released under an MIT license. See LICENSE.

// Package options parses the minimalisp command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Usage is the minimalisp usage message.
const Usage = `minimalisp

Usage:
  minimalisp [-Pmndp] [-c CONFIG] [-b BOOTSTRAP] [SCRIPT]
  minimalisp -h
  minimalisp -v

Arguments:
  SCRIPT  Path to a minimalisp program. Read from stdin if omitted.

Options:
  -b, --bootstrap=BOOTSTRAP  Evaluate BOOTSTRAP instead of the built-in library.
  -c, --config=CONFIG        Read settings from CONFIG.
  -d, --debug                Log module loading to stderr.
  -m, --maths                Enable the maths functions and pi.
  -n, --no-bootstrap         Do not evaluate a library before the program.
  -p, --parse                Parse only. Print each top-level statement.
  -P, --permissive           Substitute NIL for errors where possible.
  -h, --help                 Display this help.
  -v, --version              Print minimalisp version.

If no SCRIPT is given and stdin is a TTY, minimalisp starts interactively.
`

// T holds the parsed command line.
type T struct {
	Bootstrap   string
	Config      string
	Debug       bool
	Help        bool
	Interactive bool
	Maths       bool
	NoBootstrap bool
	Parse       bool
	Permissive  bool
	Script      string
	Version     bool
}

// Parse parses argv, which should not include the program name.
// A *docopt.UserError is returned when argv does not match Usage.
func Parse(argv []string) (*T, error) {
	// docopt reads os.Args when argv is nil.
	if argv == nil {
		argv = []string{}
	}

	p := &docopt.Parser{
		HelpHandler:   docopt.NoHelpHandler,
		SkipHelpFlags: true,
	}

	opts, err := p.ParseArgs(Usage, argv, "")
	if err != nil {
		return nil, err
	}

	t := &T{}

	t.Bootstrap, _ = opts.String("--bootstrap")
	t.Config, _ = opts.String("--config")
	t.Script, _ = opts.String("SCRIPT")

	for flag, v := range map[string]*bool{
		"--debug":        &t.Debug,
		"--help":         &t.Help,
		"--maths":        &t.Maths,
		"--no-bootstrap": &t.NoBootstrap,
		"--parse":        &t.Parse,
		"--permissive":   &t.Permissive,
		"--version":      &t.Version,
	} {
		*v, _ = opts.Bool(flag)
	}

	if t.Script == "" {
		t.Interactive = isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return t, nil
}
