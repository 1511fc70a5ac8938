package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"builder-generator/internal/gen"
)

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// LoadDir loads DefaultFilename from dir, or returns the defaults when the
// file does not exist.
func LoadDir(dir string) (*File, error) {
	path := filepath.Join(dir, DefaultFilename)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	return LoadFile(path)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.Missing == "" {
		f.Missing = string(gen.MissingFirst)
	}

	if f.Output == "" {
		f.Output = gen.DefaultFilenamePattern
	}

	if f.Runtime == "" {
		f.Runtime = gen.DefaultRuntimePath
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// Resolve layers a configuration the way builder-generator does: the file at
// path, or DefaultFilename in dir when path is empty, then the environment
// reported by lookup, then a non-empty missing override. The result is
// validated.
func Resolve(dir, path string, lookup LookupFunc, missing string) (*File, error) {
	var (
		f   *File
		err error
	)

	if path != "" {
		f, err = LoadFile(path)
	} else {
		f, err = LoadDir(dir)
	}

	if err != nil {
		return nil, err
	}

	if err := f.ApplyEnv(lookup); err != nil {
		return nil, err
	}

	if missing != "" {
		f.Missing = missing
	}

	if res := Validate(f); res.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %w", res.Error())
	}

	return f, nil
}
