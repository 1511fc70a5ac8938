package config

import (
	"fmt"
	"go/token"
	"strings"
	"text/template"

	"builder-generator/internal/diagnostic"
	"builder-generator/internal/gen"
)

// Validate validates a configuration file. It checks the shape of the
// settings only; whether listed records exist is checked once the package
// is loaded.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config file is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q (expected \"1\")", f.Version), "", "")
	}

	validateMissing(res, f.Missing, "")
	validateOutput(res, f)
	validateWrappers(res, &f.Wrappers)

	seen := map[string]struct{}{}

	for i := range f.Records {
		r := &f.Records[i]

		if !token.IsIdentifier(r.Type) {
			res.AddError("invalid_record", fmt.Sprintf("record type %q is not a Go identifier", r.Type), r.Type, "")
			continue
		}

		if _, ok := seen[r.Type]; ok {
			res.AddError("duplicate_record", fmt.Sprintf("duplicate record %q", r.Type), r.Type, "")
			continue
		}

		seen[r.Type] = struct{}{}

		if r.Builder != "" && !token.IsIdentifier(r.Builder) {
			res.AddError("invalid_builder", fmt.Sprintf("builder name %q is not a Go identifier", r.Builder), r.Type, "")
		}

		if r.Constructor != "" && !token.IsIdentifier(r.Constructor) {
			res.AddError("invalid_constructor",
				fmt.Sprintf("constructor name %q is not a Go identifier", r.Constructor), r.Type, "")
		}

		if r.Builder == r.Type {
			res.AddError("builder_shadows_record", "builder name equals the record name", r.Type, "")
		}

		validateMissing(res, r.Missing, r.Type)
	}

	return res
}

func validateMissing(res *diagnostic.Diagnostics, missing, record string) {
	if !gen.MissingMode(missing).Valid() {
		res.AddError("invalid_missing",
			fmt.Sprintf("invalid missing mode %q (expected %q or %q)", missing, gen.MissingFirst, gen.MissingAll),
			record, "")
	}
}

func validateOutput(res *diagnostic.Diagnostics, f *File) {
	if _, err := template.New("output").Parse(f.Output); err != nil {
		res.AddError("invalid_output", fmt.Sprintf("invalid output pattern: %v", err), "", "")
		return
	}

	if !strings.HasSuffix(f.Output, ".go") {
		res.AddError("invalid_output", fmt.Sprintf("output pattern %q must end in .go", f.Output), "", "")
	}

	if strings.HasSuffix(f.Output, "_test.go") {
		res.AddError("invalid_output", fmt.Sprintf("output pattern %q names a test file", f.Output), "", "")
	}

	if !strings.Contains(f.Output, "{{") && len(f.Records) != 1 {
		res.AddWarning("constant_output",
			fmt.Sprintf("output pattern %q is the same for every record; builders overwrite each other", f.Output), "", "")
	}
}

func validateWrappers(res *diagnostic.Diagnostics, w *Wrappers) {
	optional := map[string]struct{}{}

	for _, name := range w.Optional {
		if !token.IsIdentifier(name) {
			res.AddError("invalid_wrapper", fmt.Sprintf("optional wrapper %q is not a Go identifier", name), "", "")
		}

		optional[name] = struct{}{}
	}

	for _, name := range w.Repeated {
		if !token.IsIdentifier(name) {
			res.AddError("invalid_wrapper", fmt.Sprintf("repeated wrapper %q is not a Go identifier", name), "", "")
		}

		if _, ok := optional[name]; ok {
			res.AddError("ambiguous_wrapper", fmt.Sprintf("wrapper %q is both optional and repeated", name), "", "")
		}
	}
}
