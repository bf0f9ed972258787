// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the minimalisp language.
package ui

import (
	"errors"
	"fmt"
	"io"

	"github.com/joe-jordan/minimalisp/internal/common/interface/cell"
	"github.com/joe-jordan/minimalisp/internal/common/interface/literal"
	"github.com/joe-jordan/minimalisp/internal/reader"
	"github.com/peterh/liner"
)

// Prompts.
const (
	Continue = "... "
	Ready    = "> "
)

// Evaluator is the interface for things that want to process parsed programs.
type Evaluator interface {
	Evaluate(program cell.I) (cell.I, error)
}

// Prompter reads a line of input after displaying a prompt.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// Run reads programs from p and sends them to e until input is exhausted.
// The value of each program is written to out. Errors are written to
// errs and do not stop the loop.
func Run(e Evaluator, p Prompter, out, errs io.Writer) error {
	r := reader.New("minimalisp")

	for {
		prompt := Ready
		if r.Pending() {
			prompt = Continue
		}

		line, err := p.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			r.Reset()

			continue
		case errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}

		program, err := r.Scan(line)
		if err != nil {
			fmt.Fprintln(errs, err)

			continue
		}

		if program == nil {
			continue
		}

		v, err := e.Evaluate(program)
		if err != nil {
			fmt.Fprintln(errs, err)

			continue
		}

		fmt.Fprintln(out, literal.String(v))
	}
}
