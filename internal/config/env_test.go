package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestApplyEnv(t *testing.T) {
	f := Default()

	err := f.ApplyEnv(lookupMap(map[string]string{
		EnvMissing:          "all",
		EnvOutput:           "{{.Snake}}_gen.go",
		EnvOptionalPointers: "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "all", f.Missing)
	assert.Equal(t, "{{.Snake}}_gen.go", f.Output)
	require.NotNil(t, f.Wrappers.OptionalPointers)
	assert.True(t, *f.Wrappers.OptionalPointers)
}

func TestApplyEnv_EmptyValuesIgnored(t *testing.T) {
	f := Default()

	require.NoError(t, f.ApplyEnv(lookupMap(map[string]string{EnvMissing: ""})))
	assert.Equal(t, "first", f.Missing)
	assert.Nil(t, f.Wrappers.OptionalPointers)
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	f := Default()

	err := f.ApplyEnv(lookupMap(map[string]string{EnvOptionalPointers: "maybe"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvOptionalPointers)
}

func TestEnvLookup(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("BUILDERGEN_OUTPUT=from_file.go\nBUILDERGEN_MISSING=all\n"), 0o644))

	t.Setenv(EnvMissing, "first")

	lookup, err := EnvLookup(envFile, filepath.Join(dir, "absent.env"))
	require.NoError(t, err)

	v, ok := lookup(EnvOutput)
	assert.True(t, ok)
	assert.Equal(t, "from_file.go", v)

	// The process environment wins over the file.
	v, ok = lookup(EnvMissing)
	assert.True(t, ok)
	assert.Equal(t, "first", v)

	_, ok = lookup("BUILDERGEN_UNSET_FOR_TEST")
	assert.False(t, ok)
}
