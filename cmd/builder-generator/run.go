package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"builder-generator/internal/analyze"
	"builder-generator/internal/config"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/gen"
	"builder-generator/internal/match"
	"builder-generator/internal/plan"
	"builder-generator/internal/shape"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// options are the command-line flags.
type options struct {
	types      string
	configPath string
	outputDir  string
	missing    string
	dumpPlan   string
	envFile    string
	dir        string
	dryRun     bool
	verbose    bool
	patterns   []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("builder-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.types, "type", "", "comma-separated list of record names; default: configured or annotated records")
	fs.StringVar(&opts.configPath, "config", "", "configuration file; default: "+config.DefaultFilename+" in the package directory")
	fs.StringVar(&opts.outputDir, "output", "", "output directory; default: the package directory")
	fs.StringVar(&opts.missing, "missing", "", "missing-field mode of Build: first or all")
	fs.StringVar(&opts.dumpPlan, "dump-plan", "", "write the field plans as YAML to this file (- for stdout)")
	fs.StringVar(&opts.envFile, "env", ".env", "dotenv file with BUILDERGEN_* settings")
	fs.StringVar(&opts.dir, "dir", "", "directory package patterns are resolved from; default: the working directory")
	fs.BoolVar(&opts.dryRun, "n", false, "print generated code instead of writing files")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.patterns = fs.Args()
	if len(opts.patterns) == 0 {
		opts.patterns = []string{"."}
	}

	if !gen.MissingMode(opts.missing).Valid() {
		return nil, fmt.Errorf("invalid -missing %q (expected %q or %q)", opts.missing, gen.MissingFirst, gen.MissingAll)
	}

	return opts, nil
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return zap.New(core).Named("builder-generator")
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := newLogger(stderr, opts.verbose)
	defer func() { _ = logger.Sync() }()

	lookup, err := config.EnvLookup(opts.envFile)
	if err != nil {
		logger.Error("Failed to read environment", zap.Error(err))
		return exitError
	}

	// Environment variable is set by `go generate`.
	if pkgName := os.Getenv("GOPACKAGE"); pkgName != "" {
		logger.Debug("Running under go generate", zap.String("package", pkgName))
	}

	pkgs, err := analyze.Load(opts.dir, opts.patterns...)
	if err != nil {
		logger.Error("Failed to load packages", zap.Strings("patterns", opts.patterns), zap.Error(err))
		return exitError
	}

	var errs error
	for _, pkg := range pkgs {
		if err := generatePackage(pkg, opts, lookup, stdout, stderr, logger); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if errs != nil {
		logger.Debug("Generation failed", zap.Int("errors", len(multierr.Errors(errs))))
		return exitError
	}

	return exitOK
}

// generatePackage generates builders for one package. Located errors are
// printed to stderr as they are found; the returned error only signals
// failure.
func generatePackage(
	pkg *analyze.Package,
	opts *options,
	lookup config.LookupFunc,
	stdout, stderr io.Writer,
	logger *zap.Logger,
) error {
	log := logger.With(zap.String("package", pkg.Path))

	cfg, err := loadConfig(pkg, opts, lookup)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	records, err := selectRecords(pkg, cfg, opts.types)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	if len(records) == 0 {
		log.Info("No records to generate")
		return nil
	}

	planner := plan.NewPlanner(shape.NewClassifier(cfg.Vocabulary()))

	var (
		plans []*plan.RecordPlan
		errs  error
	)

	for _, rec := range records {
		p, err := planner.Plan(rec)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		plans = append(plans, p)
	}

	if opts.dumpPlan != "" {
		if err := dumpPlans(plans, opts.dumpPlan, stdout); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if log.Core().Enabled(zap.DebugLevel) {
		log.Debug("Planned records", zap.String("plans", spew.Sdump(plan.Export(plans))))
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = pkg.Dir
	}

	generator := gen.NewGenerator(cfg.GeneratorConfig(outputDir, log))

	files, err := generator.Generate(plans)
	errs = multierr.Append(errs, err)

	if errs != nil {
		for _, e := range multierr.Errors(errs) {
			fmt.Fprintln(stderr, diagnostic.Format(pkg.Fset, e))
		}

		return errs
	}

	if opts.dryRun {
		for _, f := range files {
			fmt.Fprintf(stdout, "=== %s ===\n%s", f.Filename, f.Content)
		}

		return nil
	}

	if err := gen.WriteFiles(files, outputDir); err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	for _, f := range files {
		log.Info("Wrote builder", zap.String("file", filepath.Join(outputDir, f.Filename)))
	}

	return nil
}

// loadConfig layers the configuration file, the environment and flags.
func loadConfig(pkg *analyze.Package, opts *options, lookup config.LookupFunc) (*config.File, error) {
	return config.Resolve(pkg.Dir, opts.configPath, lookup, opts.missing)
}

// selectRecords picks the records to generate: the -type list, else the
// configured records, else every record carrying a directive.
func selectRecords(pkg *analyze.Package, cfg *config.File, types string) ([]analyze.Record, error) {
	var names []string

	switch {
	case types != "":
		for _, name := range strings.Split(types, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	case len(cfg.Records) > 0:
		names = cfg.RecordNames()
	default:
		var out []analyze.Record
		for _, rec := range pkg.Records {
			if rec.HasAnnotations() {
				out = append(out, rec)
			}
		}

		return out, nil
	}

	out := make([]analyze.Record, 0, len(names))

	var errs error
	for _, name := range names {
		rec, ok := pkg.Record(name)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: no struct type %s%s",
				pkg.Path, name, match.DidYouMean(name, pkg.RecordNames())))
			continue
		}

		out = append(out, rec)
	}

	if errs != nil {
		return nil, errs
	}

	return out, nil
}

func dumpPlans(plans []*plan.RecordPlan, path string, stdout io.Writer) error {
	data, err := plan.ExportYAML(plans)
	if err != nil {
		return fmt.Errorf("exporting plans: %w", err)
	}

	if path == "-" {
		_, err = stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing plans: %w", err)
	}

	return nil
}
