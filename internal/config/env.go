package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables overriding file settings.
const (
	EnvMissing          = "BUILDERGEN_MISSING"
	EnvOptionalPointers = "BUILDERGEN_OPTIONAL_POINTERS"
	EnvOutput           = "BUILDERGEN_OUTPUT"
)

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a LookupFunc reading the process environment first and
// then the given dotenv files. Files that do not exist are skipped; the
// process environment is never modified.
func EnvLookup(files ...string) (LookupFunc, error) {
	vars := make(map[string]string)

	for _, file := range files {
		read, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", file, err)
		}

		for k, v := range read {
			if _, ok := vars[k]; !ok {
				vars[k] = v
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}

		v, ok := vars[key]

		return v, ok
	}, nil
}

// ApplyEnv overrides file settings with the environment variables lookup
// reports. Empty values are ignored.
func (f *File) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvMissing); ok && v != "" {
		f.Missing = v
	}

	if v, ok := lookup(EnvOutput); ok && v != "" {
		f.Output = v
	}

	if v, ok := lookup(EnvOptionalPointers); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", EnvOptionalPointers, v, err)
		}

		f.Wrappers.OptionalPointers = &b
	}

	return nil
}
