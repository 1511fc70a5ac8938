package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages. Types are not
// requested: records are read from syntax only.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// Load loads the packages matching patterns, resolved relative to dir, and
// extracts their records. Patterns are standard Go package patterns
// (e.g., ".", "./examples/...", "builder-generator/examples/command").
func Load(dir string, patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Type errors are expected while builders are not generated yet.
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				continue
			}
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var out []*Package
	for _, pkg := range pkgs {
		out = append(out, fromPackage(pkg))
	}

	return out, nil
}

// fromPackage extracts records from a loaded package.
func fromPackage(pkg *packages.Package) *Package {
	p := &Package{
		Name: pkg.Name,
		Path: pkg.PkgPath,
		Fset: pkg.Fset,
	}

	if len(pkg.GoFiles) > 0 {
		p.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		p.Records = append(p.Records, RecordsFromFile(pkg.Fset, file)...)
	}

	return p
}

// ParseSource parses a single in-memory Go file and extracts its records.
// It is the front-end used by tests and by tools that already hold source.
func ParseSource(filename string, src any) (*Package, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	return &Package{
		Name:    file.Name.Name,
		Dir:     filepath.Dir(filename),
		Fset:    fset,
		Records: RecordsFromFile(fset, file),
	}, nil
}

// RecordsFromFile returns every struct type declared at the top level of
// file, in source order.
func RecordsFromFile(fset *token.FileSet, file *ast.File) []Record {
	imports := fileImports(file)
	filename := fset.Position(file.Package).Filename

	var records []Record
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			rec, ok := RecordFromSpec(typeSpec)
			if !ok {
				continue
			}

			rec.Imports = imports
			rec.Filename = filename
			rec.Package = file.Name.Name
			records = append(records, rec)
		}
	}

	return records
}

// RecordFromSpec converts a struct type spec into a Record. It returns false
// for aliases and non-struct types. Imports and file information are left
// for the caller to fill in.
func RecordFromSpec(spec *ast.TypeSpec) (Record, bool) {
	if spec.Assign.IsValid() {
		return Record{}, false
	}

	st, ok := spec.Type.(*ast.StructType)
	if !ok {
		return Record{}, false
	}

	rec := Record{
		Name:       spec.Name.Name,
		Ident:      spec.Name,
		TypeParams: spec.TypeParams,
	}

	if st.Fields == nil {
		return rec, true
	}

	for _, f := range st.Fields.List {
		annotations := fieldAnnotations(f)

		if len(f.Names) == 0 {
			rec.Fields = append(rec.Fields, FieldDecl{
				Type:        f.Type,
				Annotations: annotations,
				Field:       f,
			})
			continue
		}

		for _, name := range f.Names {
			rec.Fields = append(rec.Fields, FieldDecl{
				Name:        name,
				Type:        f.Type,
				Annotations: annotations,
				Field:       f,
			})
		}
	}

	return rec, true
}

// fieldAnnotations collects //builder comments from the field's doc comment
// and trailing line comment.
func fieldAnnotations(f *ast.Field) []Annotation {
	var out []Annotation
	for _, group := range []*ast.CommentGroup{f.Doc, f.Comment} {
		if group == nil {
			continue
		}

		for _, c := range group.List {
			if !strings.HasPrefix(c.Text, DirectivePrefix) {
				continue
			}
			out = append(out, Annotation{Text: c.Text, Slash: c.Slash})
		}
	}

	return out
}

// fileImports lists the named and unnamed imports of file. Blank and dot
// imports are dropped since generated code never refers to them.
func fileImports(file *ast.File) []ImportSpec {
	var out []ImportSpec
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		spec := ImportSpec{Path: path}
		if imp.Name != nil {
			if imp.Name.Name == "_" || imp.Name.Name == "." {
				continue
			}
			spec.Name = imp.Name.Name
		}

		out = append(out, spec)
	}

	return out
}
