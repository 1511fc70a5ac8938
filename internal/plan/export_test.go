package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportYAML(t *testing.T) {
	rec, _ := parseRecord(t, `package p

type Pair[K comparable, V any] struct {
	Key K
	//builder:each="Value"
	Values field.Repeated[V]
	Note field.Optional[string]
	Raw []V
}
`)

	p, err := newTestPlanner().Plan(rec)
	require.NoError(t, err)

	data, err := ExportYAML([]*RecordPlan{p})
	require.NoError(t, err)

	var got []ExportedRecord
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Len(t, got, 1)

	assert.Equal(t, "Pair[K comparable, V any]", got[0].Record)
	assert.Equal(t, "rec.go", got[0].File)
	assert.Equal(t, []ExportedField{
		{Name: "Key", Category: "Required", Type: "K"},
		{Name: "Values", Category: "Repeated", Type: "field.Repeated[V]", Inner: "V", Each: "Value"},
		{Name: "Note", Category: "Optional", Type: "field.Optional[string]", Inner: "string"},
		{Name: "Raw", Category: "Required", Type: "[]V"},
	}, got[0].Fields)

	assert.Contains(t, string(data), "category: Repeated")
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "Required", CategoryRequired.String())
	assert.Equal(t, "Optional", CategoryOptional.String())
	assert.Equal(t, "Repeated", CategoryRepeated.String())
	assert.Equal(t, "Category(7)", Category(7).String())
}
