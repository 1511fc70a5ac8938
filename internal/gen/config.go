package gen

import "go.uber.org/zap"

// DefaultRuntimePath is the import path of the package providing
// Optional, Repeated and Missing to generated code.
const DefaultRuntimePath = "builder-generator/field"

// DefaultFilenamePattern names the file generated for a record.
const DefaultFilenamePattern = "{{.Snake}}_builder.go"

// MissingMode controls how Build reports unset required fields.
type MissingMode string

const (
	// MissingFirst stops at the first unset required field in declaration order.
	MissingFirst MissingMode = "first"
	// MissingAll reports every unset required field, joined with errors.Join.
	MissingAll MissingMode = "all"
)

// Valid reports whether m is a known mode. The empty mode is valid and
// means MissingFirst.
func (m MissingMode) Valid() bool {
	switch m {
	case "", MissingFirst, MissingAll:
		return true
	default:
		return false
	}
}

// RecordOptions overrides generation settings for one record. Empty fields
// fall back to the generator defaults.
type RecordOptions struct {
	// Builder is the accumulator type name. Default: <Record>Builder.
	Builder string
	// Constructor is the factory name. Default: New<Builder>.
	Constructor string
	// Missing overrides GeneratorConfig.Missing.
	Missing MissingMode
}

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the package clause of generated files. Empty means the
	// package declaring the record.
	PackageName string
	// OutputDir is where debug sidecars are written when formatting fails.
	OutputDir string
	// FilenamePattern is a text/template over {Record, Snake} naming each file.
	FilenamePattern string
	// RuntimePath is the import path of package field.
	RuntimePath string
	// Missing is the default missing-field mode.
	Missing MissingMode
	// Records holds per-record overrides keyed by record name.
	Records map[string]RecordOptions
	// Logger receives generation progress. Nil disables logging.
	Logger *zap.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		FilenamePattern: DefaultFilenamePattern,
		RuntimePath:     DefaultRuntimePath,
		Missing:         MissingFirst,
	}
}
