package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"", ""},
		{"time", "time"},
		{"builder-generator/field", "field"},
		{"gopkg.in/yaml.v3", "yaml"},
		{"github.com/emirpasic/gods/v2", "gods"},
		{"github.com/mattn/go-sqlite3", "sqlite3"},
		{"example.com/my-pkg", "my"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, PkgAlias(tt.path))
		})
	}
}

func TestLowerFirst(t *testing.T) {
	tests := map[string]string{
		"Name":       "name",
		"ID":         "id",
		"URLPath":    "urlPath",
		"CurrentDir": "currentDir",
		"already":    "already",
		"X":          "x",
		"":           "",
	}

	for in, want := range tests {
		assert.Equal(t, want, LowerFirst(in), in)
	}
}
