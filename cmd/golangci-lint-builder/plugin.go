// Package golangcilintbuilder registers the builder analyzer as a
// golangci-lint module plugin. Reference it from .custom-gcl.yml and run
//
//	golangci-lint custom
//
// to get a golangci-lint binary that reports builder-generator errors.
//
// Settings:
//
//	linters:
//	  settings:
//	    custom:
//	      builder:
//	        type: module
//	        settings:
//	          types: [Command, Entry]
package golangcilintbuilder

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"builder-generator/pkg/builderanalysis"
)

func init() {
	register.Plugin("builder", New)
}

// Settings are the plugin options from the golangci-lint configuration.
type Settings struct {
	// Types are struct names checked even without //builder directives.
	Types []string `json:"types"`
}

// New builds the plugin from its raw settings.
func New(settings any) (register.LinterPlugin, error) {
	s, err := register.DecodeSettings[Settings](settings)
	if err != nil {
		return nil, err
	}

	return BuilderLinter{settings: s}, nil
}

// BuilderLinter serves the builder analyzer to golangci-lint.
type BuilderLinter struct {
	settings Settings
}

// BuildAnalyzers returns the builder analyzer configured with the plugin
// settings.
func (l BuilderLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{builderanalysis.New(l.settings.Types...)}, nil
}

// GetLoadMode reports that the analyzer only needs syntax.
func (BuilderLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
