package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Default(t *testing.T) {
	res := Validate(Default())
	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	require.True(t, res.HasErrors())
	assert.Equal(t, "config_is_nil", res.Errors[0].Code)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *File)
		code   string
	}{
		{name: "version", modify: func(f *File) { f.Version = "2" }, code: "unsupported_version"},
		{name: "missing mode", modify: func(f *File) { f.Missing = "some" }, code: "invalid_missing"},
		{name: "output template", modify: func(f *File) { f.Output = "{{.Snake" }, code: "invalid_output"},
		{name: "output suffix", modify: func(f *File) { f.Output = "{{.Snake}}.txt" }, code: "invalid_output"},
		{name: "output test file", modify: func(f *File) { f.Output = "{{.Snake}}_test.go" }, code: "invalid_output"},
		{name: "wrapper name", modify: func(f *File) { f.Wrappers.Optional = NameList{"Opt-ional"} }, code: "invalid_wrapper"},
		{
			name: "ambiguous wrapper",
			modify: func(f *File) {
				f.Wrappers.Optional = NameList{"Maybe"}
				f.Wrappers.Repeated = NameList{"Maybe"}
			},
			code: "ambiguous_wrapper",
		},
		{name: "record type", modify: func(f *File) { f.Records = []RecordConfig{{Type: "a.B"}} }, code: "invalid_record"},
		{
			name:   "duplicate record",
			modify: func(f *File) { f.Records = []RecordConfig{{Type: "A"}, {Type: "A"}} },
			code:   "duplicate_record",
		},
		{
			name:   "builder name",
			modify: func(f *File) { f.Records = []RecordConfig{{Type: "A", Builder: "1x"}} },
			code:   "invalid_builder",
		},
		{
			name:   "constructor name",
			modify: func(f *File) { f.Records = []RecordConfig{{Type: "A", Constructor: "New A"}} },
			code:   "invalid_constructor",
		},
		{
			name:   "builder shadows record",
			modify: func(f *File) { f.Records = []RecordConfig{{Type: "A", Builder: "A"}} },
			code:   "builder_shadows_record",
		},
		{
			name:   "record missing mode",
			modify: func(f *File) { f.Records = []RecordConfig{{Type: "A", Missing: "none"}} },
			code:   "invalid_missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Default()
			tt.modify(f)

			res := Validate(f)
			require.True(t, res.HasErrors())

			var codes []string
			for _, e := range res.Errors {
				codes = append(codes, e.Code)
			}
			assert.Contains(t, codes, tt.code)
		})
	}
}

func TestValidate_ConstantOutputWarns(t *testing.T) {
	f := Default()
	f.Output = "builders.go"
	f.Records = []RecordConfig{{Type: "A"}, {Type: "B"}}

	res := Validate(f)
	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "constant_output", res.Warnings[0].Code)

	f.Records = f.Records[:1]
	assert.Empty(t, Validate(f).Warnings)
}
