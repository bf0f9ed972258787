// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive command history.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Path returns configured, if set, or the default history file.
func Path(configured string) string {
	if configured != "" {
		return configured
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".minimalisp_history")
}

// Load passes the history file at path to read. A missing file is not an
// error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save passes the truncated history file at path to write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
