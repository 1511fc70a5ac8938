package golangcilintbuilder

import (
	"testing"

	"github.com/golangci/plugin-module-register/register"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	plugin, err := New(map[string]any{"types": []any{"Command", "Entry"}})
	require.NoError(t, err)
	assert.Equal(t, register.LoadModeSyntax, plugin.GetLoadMode())

	analyzers, err := plugin.BuildAnalyzers()
	require.NoError(t, err)
	require.Len(t, analyzers, 1)
	assert.Equal(t, "builder", analyzers[0].Name)
	assert.Equal(t, "Command,Entry", analyzers[0].Flags.Lookup("types").Value.String())
}

func TestNew_NoSettings(t *testing.T) {
	plugin, err := New(nil)
	require.NoError(t, err)

	analyzers, err := plugin.BuildAnalyzers()
	require.NoError(t, err)
	assert.Empty(t, analyzers[0].Flags.Lookup("types").Value.String())
}

func TestNew_BadSettings(t *testing.T) {
	_, err := New(map[string]any{"types": "Command"})
	require.Error(t, err)
}
