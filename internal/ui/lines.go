// Released under an MIT license. See LICENSE.

package ui

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// Lines reads lines from a non-interactive source.
type Lines struct {
	input  *bufio.Reader
	output io.Writer
}

// NewLines creates a Lines that reads from r and writes prompts to w.
// Prompts are discarded if w is nil.
func NewLines(r io.Reader, w io.Writer) *Lines {
	if w == nil {
		w = io.Discard
	}

	return &Lines{input: bufio.NewReader(r), output: w}
}

// Prompt writes prompt and returns the next line without its line ending.
// The last line need not end in a newline. After that, io.EOF is returned.
func (l *Lines) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(l.output, prompt); err != nil {
		return "", err
	}

	line, err := l.input.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
