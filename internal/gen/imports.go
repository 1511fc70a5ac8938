package gen

import (
	"go/ast"
	"sort"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
)

// importSet tracks the imports available to a generated file and which of
// them the emitted code refers to. Imports of the record's file are reused
// under the same local names so that copied type expressions stay valid.
type importSet struct {
	byPath map[string]string // path -> local name
	byName map[string]string // local name -> path
	used   map[string]bool   // paths referenced by generated code
}

func newImportSet(file []analyze.ImportSpec) *importSet {
	s := &importSet{
		byPath: make(map[string]string),
		byName: make(map[string]string),
		used:   make(map[string]bool),
	}

	for _, imp := range file {
		name := imp.Name
		if name == "" {
			name = common.PkgAlias(imp.Path)
		}

		if _, ok := s.byPath[imp.Path]; ok {
			continue
		}

		s.byPath[imp.Path] = name
		s.byName[name] = imp.Path
	}

	return s
}

// require marks path as used and returns its local name, adding an import
// if the file does not have one. A name taken by another path gets a prefix.
func (s *importSet) require(path, prefix string) string {
	if name, ok := s.byPath[path]; ok {
		s.used[path] = true
		return name
	}

	name := common.PkgAlias(path)
	for {
		if _, taken := s.byName[name]; !taken {
			break
		}
		name = prefix + name
	}

	s.byPath[path] = name
	s.byName[name] = path
	s.used[path] = true

	return name
}

// useQualifiers marks every import referenced by a qualified identifier in
// expr, such as time in time.Duration.
func (s *importSet) useQualifiers(expr ast.Node) {
	if expr == nil {
		return
	}

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if x, ok := sel.X.(*ast.Ident); ok {
			if path, ok := s.byName[x.Name]; ok {
				s.used[path] = true
			}
		}

		return true
	})
}

// specs returns the used imports sorted by path. Names are explicit only
// where they differ from the default.
func (s *importSet) specs() []analyze.ImportSpec {
	out := make([]analyze.ImportSpec, 0, len(s.used))

	for path := range s.used {
		spec := analyze.ImportSpec{Path: path}
		if name := s.byPath[path]; name != common.PkgAlias(path) {
			spec.Name = name
		}

		out = append(out, spec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}
