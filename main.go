// Released under an MIT license. See LICENSE.

/*
Minimalisp is an interpreter for a small Lisp built on cons pairs.

Programs are read from a file named on the command line, or from stdin.
When stdin is a TTY and no file is named, minimalisp starts a read-eval-print
loop with line editing and history.

	(bind 'square (with '(x) '(* x x)))
	(puts "nine is " (square 3))

Minimalisp is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joe-jordan/minimalisp/internal/common/failure"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
	"github.com/joe-jordan/minimalisp/internal/common/type/list"
	"github.com/joe-jordan/minimalisp/internal/engine"
	"github.com/joe-jordan/minimalisp/internal/reader/parser"
	"github.com/joe-jordan/minimalisp/internal/system/config"
	"github.com/joe-jordan/minimalisp/internal/system/history"
	"github.com/joe-jordan/minimalisp/internal/system/options"
	"github.com/joe-jordan/minimalisp/internal/ui"
)

const version = "0.3.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := options.Parse(argv)
	if err != nil {
		fmt.Fprint(stderr, options.Usage)

		return 2 //nolint:gomnd
	}

	switch {
	case o.Help:
		fmt.Fprint(stdout, options.Usage)

		return 0
	case o.Version:
		fmt.Fprintln(stdout, "minimalisp", version)

		return 0
	}

	level := slog.LevelWarn
	if o.Debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	c, err := config.Read(o.Config)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	c.Maths = c.Maths || o.Maths
	c.NoBootstrap = c.NoBootstrap || o.NoBootstrap
	c.Permissive = c.Permissive || o.Permissive

	if o.Bootstrap != "" {
		c.Bootstrap = o.Bootstrap
	}

	if o.Parse {
		return parse(o.Script, stdin, stdout, stderr)
	}

	opts := []engine.Option{
		engine.Logger(logger),
		engine.Maths(c.Maths),
		engine.Output(stdout),
		engine.Permissive(c.Permissive),
	}

	switch {
	case c.NoBootstrap:
		opts = append(opts, engine.NoBootstrap())
	case c.Bootstrap != "":
		source, err := os.ReadFile(c.Bootstrap)
		if err != nil {
			fmt.Fprintln(stderr, failure.IO(c.Bootstrap, err))

			return 1
		}

		opts = append(opts, engine.Bootstrap(string(source)))
	}

	if o.Interactive && stdin == os.Stdin {
		return interactive(c, opts, stdout, stderr)
	}

	opts = append(opts, engine.Input(ui.NewLines(stdin, stdout)))

	e, err := engine.New(opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	if o.Script != "" {
		_, err = e.RunFile(o.Script)
	} else {
		var source []byte

		source, err = io.ReadAll(stdin)
		if err == nil {
			_, err = e.Run(string(source))
		}
	}

	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	return 0
}

func interactive(c *config.T, opts []engine.Option, stdout, stderr io.Writer) int {
	term, err := ui.NewTerminal(history.Path(c.History))
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	defer term.Close()

	e, err := engine.New(append(opts, engine.Input(term))...)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	if err := ui.Run(e, term, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	return 0
}

func parse(path string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		err    error
		name   = "stdin"
		source []byte
	)

	if path != "" {
		name = path
		source, err = os.ReadFile(path)
	} else {
		source, err = io.ReadAll(stdin)
	}

	if err != nil {
		fmt.Fprintln(stderr, failure.IO(name, err))

		return 1
	}

	program, err := parser.Parse(string(source))
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	fmt.Fprintf(stdout, "parsed %s successfully. resulting program:\n", name)

	statements, _ := list.Slice(program)
	for _, s := range statements {
		fmt.Fprintln(stdout, literal.String(s))
	}

	return 0
}
