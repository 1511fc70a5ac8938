package config

import (
	"go.uber.org/zap"

	"builder-generator/internal/gen"
	"builder-generator/internal/shape"
)

// DefaultFilename is the configuration file looked up next to a package.
const DefaultFilename = "buildergen.yaml"

// File represents the root of a builder-generator configuration file.
type File struct {
	// Version of the configuration schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Missing is the default missing-field mode: "first" or "all".
	Missing string `yaml:"missing,omitempty"`

	// Output is a text/template naming generated files, over {Record, Snake}.
	Output string `yaml:"output,omitempty"`

	// Package overrides the package clause of generated files.
	Package string `yaml:"package,omitempty"`

	// Runtime is the import path of package field.
	Runtime string `yaml:"runtime,omitempty"`

	// Wrappers configures type classification.
	Wrappers Wrappers `yaml:"wrappers,omitempty"`

	// Records selects records and overrides their naming.
	Records []RecordConfig `yaml:"records,omitempty"`
}

// Wrappers lists the wrapper names and Go-native forms to recognize.
type Wrappers struct {
	Optional         NameList `yaml:"optional,omitempty"`
	Repeated         NameList `yaml:"repeated,omitempty"`
	OptionalPointers *bool    `yaml:"optional_pointers,omitempty"`
	RepeatedSlices   *bool    `yaml:"repeated_slices,omitempty"`
}

// RecordConfig selects one record. YAML formats supported:
//   - Simple string: "Command"
//   - Full form: {type: Command, builder: CmdBuilder, missing: all}
type RecordConfig struct {
	// Type is the record type name.
	Type string `yaml:"type"`
	// Builder overrides the accumulator type name.
	Builder string `yaml:"builder,omitempty"`
	// Constructor overrides the factory name.
	Constructor string `yaml:"constructor,omitempty"`
	// Missing overrides the file-level missing mode.
	Missing string `yaml:"missing,omitempty"`
}

// NameList is a list of names that may be written as a single string.
type NameList []string

// Default returns the configuration used when no file is present.
func Default() *File {
	f := &File{}
	applyDefaults(f)

	return f
}

// Record returns the configuration of a record, if listed.
func (f *File) Record(name string) (RecordConfig, bool) {
	for _, r := range f.Records {
		if r.Type == name {
			return r, true
		}
	}

	return RecordConfig{}, false
}

// RecordNames returns the listed record names in order.
func (f *File) RecordNames() []string {
	names := make([]string, 0, len(f.Records))
	for _, r := range f.Records {
		names = append(names, r.Type)
	}

	return names
}

// Vocabulary converts the wrapper settings for the type classifier.
func (f *File) Vocabulary() shape.Vocabulary {
	v := shape.DefaultVocabulary()

	if len(f.Wrappers.Optional) > 0 {
		v.Optional = append([]string(nil), f.Wrappers.Optional...)
	}

	if len(f.Wrappers.Repeated) > 0 {
		v.Repeated = append([]string(nil), f.Wrappers.Repeated...)
	}

	if f.Wrappers.OptionalPointers != nil {
		v.OptionalPointers = *f.Wrappers.OptionalPointers
	}

	if f.Wrappers.RepeatedSlices != nil {
		v.RepeatedSlices = *f.Wrappers.RepeatedSlices
	}

	return v
}

// GeneratorConfig converts the file into generator settings.
func (f *File) GeneratorConfig(outputDir string, log *zap.Logger) gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()
	cfg.OutputDir = outputDir
	cfg.PackageName = f.Package
	cfg.Logger = log

	if f.Output != "" {
		cfg.FilenamePattern = f.Output
	}

	if f.Runtime != "" {
		cfg.RuntimePath = f.Runtime
	}

	if f.Missing != "" {
		cfg.Missing = gen.MissingMode(f.Missing)
	}

	if len(f.Records) > 0 {
		cfg.Records = make(map[string]gen.RecordOptions, len(f.Records))
		for _, r := range f.Records {
			cfg.Records[r.Type] = gen.RecordOptions{
				Builder:     r.Builder,
				Constructor: r.Constructor,
				Missing:     gen.MissingMode(r.Missing),
			}
		}
	}

	return cfg
}
