// Released under an MIT license. See LICENSE.

// Package config reads minimalisp settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variable naming a configuration file.
const Variable = "MINIMALISP_CONFIG"

// T holds settings that can also be given on the command line.
type T struct {
	Bootstrap   string `yaml:"bootstrap"`
	History     string `yaml:"history"`
	Maths       bool   `yaml:"maths"`
	NoBootstrap bool   `yaml:"no-bootstrap"`
	Permissive  bool   `yaml:"permissive"`
}

// Decode reads settings from r. Unknown keys are an error. An empty
// document yields the zero settings.
func Decode(r io.Reader) (*T, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	t := &T{}
	if err := decoder.Decode(t); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return t, nil
}

// Load reads settings from the file at path.
func Load(path string) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return t, nil
}

// Path returns the configuration file to read. A path given explicitly,
// or through the environment, must exist. The default file in the home
// directory need not.
func Path(flag string) (path string, required bool) {
	if flag != "" {
		return flag, true
	}

	if v := os.Getenv(Variable); v != "" {
		return v, true
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}

	return filepath.Join(home, ".minimalisp.yaml"), false
}

// Read loads settings from the file chosen by Path.
func Read(flag string) (*T, error) {
	path, required := Path(flag)
	if path == "" {
		return &T{}, nil
	}

	t, err := Load(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return &T{}, nil
		}

		return nil, err
	}

	return t, nil
}
