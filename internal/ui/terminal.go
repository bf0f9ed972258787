// Released under an MIT license. See LICENSE.

package ui

import (
	"github.com/joe-jordan/minimalisp/internal/system/history"
	"github.com/peterh/liner"
)

// Terminal is a line editor with history.
type Terminal struct {
	history string
	state   *liner.State
}

// NewTerminal puts the terminal into raw mode and loads the history file
// at path, if it exists.
func NewTerminal(path string) (*Terminal, error) {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	t := &Terminal{history: path, state: state}

	if path != "" {
		if err := history.Load(path, state.ReadHistory); err != nil {
			state.Close()

			return nil, err
		}
	}

	return t, nil
}

// Close saves the history and restores the terminal.
func (t *Terminal) Close() error {
	if t.history != "" {
		if err := history.Save(t.history, t.state.WriteHistory); err != nil {
			t.state.Close()

			return err
		}
	}

	return t.state.Close()
}

// Prompt displays prompt and returns the line entered.
// Ctrl-C returns liner.ErrPromptAborted.
func (t *Terminal) Prompt(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if err != nil {
		return "", err
	}

	if line != "" {
		t.state.AppendHistory(line)
	}

	return line, nil
}
