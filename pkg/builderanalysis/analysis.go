// Package builderanalysis reports builder-generator errors as analysis
// diagnostics, so editors and go vet show them where they occur.
//
// Structs carrying a //builder directive are always checked. Structs named
// by the -types flag or listed in buildergen.yaml are checked too.
package builderanalysis

import (
	"errors"
	"go/ast"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/tools/go/analysis"

	"builder-generator/internal/analyze"
	"builder-generator/internal/config"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/gen"
	"builder-generator/internal/plan"
	"builder-generator/internal/shape"
)

// Analyzer validates builder directives and record declarations.
var Analyzer = New()

type checker struct {
	types string
}

// New returns an analyzer that also checks the struct types named in types,
// whether or not they carry a directive. The list can be extended with the
// -types flag.
func New(types ...string) *analysis.Analyzer {
	c := &checker{types: strings.Join(types, ",")}

	a := &analysis.Analyzer{
		Name: "builder",
		Doc:  "report builder-generator errors on annotated structs",
		Run:  c.run,
	}
	a.Flags.StringVar(&c.types, "types", c.types, "comma-separated struct names to check even without //builder directives")

	return a
}

func (c *checker) run(pass *analysis.Pass) (any, error) {
	if len(pass.Files) == 0 {
		return nil, nil
	}

	cfg, err := loadConfig(pass, pass.Files[0])
	if err != nil {
		return nil, err
	}

	planner := plan.NewPlanner(shape.NewClassifier(cfg.Vocabulary()))
	generator := gen.NewGenerator(cfg.GeneratorConfig("", nil))
	selected := c.selected(cfg)

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			continue
		}

		for _, rec := range analyze.RecordsFromFile(pass.Fset, file) {
			if !rec.HasAnnotations() && !selected[rec.Name] {
				continue
			}

			report(pass, check(planner, generator, rec))
		}
	}

	return nil, nil
}

// check runs planning and synthesis for one record.
func check(planner *plan.Planner, generator *gen.Generator, rec analyze.Record) error {
	p, err := planner.Plan(rec)
	if err != nil {
		return err
	}

	_, err = generator.Synthesize(p)

	return err
}

// report unrolls err and reports every located generation error.
func report(pass *analysis.Pass, err error) {
	for _, e := range multierr.Errors(err) {
		var gerr *diagnostic.Error
		if !errors.As(e, &gerr) || !gerr.Pos.IsValid() {
			continue
		}

		pass.Report(analysis.Diagnostic{
			Pos:      gerr.Pos,
			End:      gerr.End,
			Category: gerr.Kind.String(),
			Message:  gerr.Error(),
		})
	}
}

// loadConfig resolves the package configuration like builder-generator run
// by go generate: buildergen.yaml and .env from the package directory, with
// the process environment taking precedence.
func loadConfig(pass *analysis.Pass, file *ast.File) (*config.File, error) {
	tf := pass.Fset.File(file.Pos())
	if tf == nil {
		return config.Default(), nil
	}

	return resolveConfig(filepath.Dir(tf.Name()))
}

func resolveConfig(dir string) (*config.File, error) {
	lookup, err := config.EnvLookup(filepath.Join(dir, ".env"))
	if err != nil {
		return nil, err
	}

	return config.Resolve(dir, "", lookup, "")
}

// selected lists the records checked regardless of directives: the
// configured ones and the -types flag.
func (c *checker) selected(cfg *config.File) map[string]bool {
	selected := make(map[string]bool)

	for _, name := range cfg.RecordNames() {
		selected[name] = true
	}

	for _, name := range strings.Split(c.types, ",") {
		if name = strings.TrimSpace(name); name != "" {
			selected[name] = true
		}
	}

	return selected
}
