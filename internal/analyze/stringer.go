package analyze

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"
	"unicode"
)

// TypeString renders a type expression as Go source, e.g. "field.Optional[string]".
// Struct tags are kept, since a tagged struct type differs from an untagged one.
func TypeString(expr ast.Expr) string {
	if expr == nil {
		return "<nil>"
	}

	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), expr); err != nil {
		return "<invalid>"
	}

	return buf.String()
}

// TypeParamsDecl renders a type parameter list for a declaration,
// e.g. "[K comparable, V any]". It returns "" for a nil or empty list.
func TypeParamsDecl(fl *ast.FieldList) string {
	if fl == nil || len(fl.List) == 0 {
		return ""
	}

	parts := make([]string, 0, len(fl.List))
	for _, f := range fl.List {
		names := make([]string, 0, len(f.Names))
		for _, n := range f.Names {
			names = append(names, n.Name)
		}
		parts = append(parts, strings.Join(names, ", ")+" "+TypeString(f.Type))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// TypeParamsUse renders the type arguments that instantiate a generic type
// with its own parameters, e.g. "[K, V]". It returns "" for a nil list.
func TypeParamsUse(fl *ast.FieldList) string {
	if fl == nil || len(fl.List) == 0 {
		return ""
	}

	var names []string
	for _, f := range fl.List {
		for _, n := range f.Names {
			names = append(names, n.Name)
		}
	}

	return "[" + strings.Join(names, ", ") + "]"
}

// SnakeCase converts a Go identifier to snake_case, keeping initialisms
// together: "Command" -> "command", "HTTPServer" -> "http_server".
func SnakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
