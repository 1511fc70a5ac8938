package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"builder-generator/internal/analyze"
	"builder-generator/internal/plan"
)

// Generator generates builder code from record plans.
type Generator struct {
	config GeneratorConfig
	log    *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Generator{config: config, log: log}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "command_builder.go").
	Filename string
	// Record is the record the file was generated for.
	Record string
	// Content is the formatted Go source code.
	Content []byte
}

// Artifacts are the four pieces of code synthesized for one record, each a
// complete Go declaration.
type Artifacts struct {
	Record      string
	Builder     string
	Constructor string

	// Accumulator is the builder type declaration.
	Accumulator string
	// Setters holds one method per setter, in field order.
	Setters []string
	// Build is the finalization method.
	Build string
	// Factory is the zero-argument constructor.
	Factory string
	// Imports are the imports the artifacts refer to.
	Imports []analyze.ImportSpec
}

// Synthesize emits the builder artifacts for p. On error no artifacts are
// returned; the error is a *diagnostic.Error located in the record source.
func (g *Generator) Synthesize(p *plan.RecordPlan) (*Artifacts, error) {
	data, err := g.buildTemplateData(p)
	if err != nil {
		return nil, err
	}

	a := &Artifacts{
		Record:      data.Record,
		Builder:     data.Builder,
		Constructor: data.Constructor,
		Imports:     data.imports.specs(),
	}

	if a.Accumulator, err = execute(accumulatorTemplate, data); err != nil {
		return nil, err
	}

	if a.Factory, err = execute(factoryTemplate, data); err != nil {
		return nil, err
	}

	for _, s := range data.Setters {
		text, err := execute(setterTemplate, s)
		if err != nil {
			return nil, err
		}

		a.Setters = append(a.Setters, text)
	}

	if a.Build, err = execute(buildTemplate, data); err != nil {
		return nil, err
	}

	g.log.Debug("synthesized builder",
		zap.String("record", a.Record),
		zap.String("builder", a.Builder),
		zap.Int("setters", len(a.Setters)))

	return a, nil
}

// GenerateRecord synthesizes p and assembles a formatted file.
func (g *Generator) GenerateRecord(p *plan.RecordPlan) (*GeneratedFile, error) {
	a, err := g.Synthesize(p)
	if err != nil {
		return nil, err
	}

	filename, err := g.filename(p.Name())
	if err != nil {
		return nil, err
	}

	pkgName := g.config.PackageName
	if pkgName == "" {
		pkgName = p.Record.Package
	}

	var buf bytes.Buffer

	err = fileTemplate.Execute(&buf, struct {
		*Artifacts
		PackageName string
	}{a, pkgName})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}

	g.log.Info("generated builder",
		zap.String("record", p.Name()),
		zap.String("file", filename))

	return &GeneratedFile{
		Filename: filename,
		Record:   p.Name(),
		Content:  formatted,
	}, nil
}

// Generate generates one file per plan. Records are independent: every
// failing record contributes its error, and no files are returned unless
// all records succeed.
func (g *Generator) Generate(plans []*plan.RecordPlan) ([]GeneratedFile, error) {
	var (
		files []GeneratedFile
		errs  error
	)

	for _, p := range plans {
		file, err := g.GenerateRecord(p)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		files = append(files, *file)
	}

	if errs != nil {
		return nil, errs
	}

	return files, nil
}

// filename renders the configured filename pattern for a record.
func (g *Generator) filename(record string) (string, error) {
	pattern := g.config.FilenamePattern
	if pattern == "" {
		pattern = DefaultFilenamePattern
	}

	tmpl, err := template.New("filename").Parse(pattern)
	if err != nil {
		return "", fmt.Errorf("parsing filename pattern %q: %w", pattern, err)
	}

	var buf bytes.Buffer

	err = tmpl.Execute(&buf, struct{ Record, Snake string }{record, analyze.SnakeCase(record)})
	if err != nil {
		return "", fmt.Errorf("executing filename pattern %q: %w", pattern, err)
	}

	return buf.String(), nil
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}

	return buf.String(), nil
}
