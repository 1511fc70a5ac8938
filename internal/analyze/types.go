package analyze

import (
	"go/ast"
	"go/token"
)

// DirectivePrefix starts every comment that is handed to the directive
// parser as a raw annotation.
const DirectivePrefix = "//builder"

// Package holds the records found in one Go package.
type Package struct {
	Name    string         // package name, e.g. "command"
	Path    string         // import path, empty for in-memory sources
	Dir     string         // directory of the package sources
	Fset    *token.FileSet // positions of every node in Records
	Records []Record       // struct declarations in source order
}

// Record returns the record with the given type name.
func (p *Package) Record(name string) (Record, bool) {
	for _, r := range p.Records {
		if r.Name == name {
			return r, true
		}
	}

	return Record{}, false
}

// RecordNames lists the record names in source order.
func (p *Package) RecordNames() []string {
	names := make([]string, 0, len(p.Records))
	for _, r := range p.Records {
		names = append(names, r.Name)
	}

	return names
}

// Record is a struct type declaration.
type Record struct {
	Name       string         // type name, e.g. "Command"
	Ident      *ast.Ident     // type name node
	TypeParams *ast.FieldList // nil unless the record is generic
	Fields     []FieldDecl    // fields in declaration order
	Imports    []ImportSpec   // imports of the declaring file
	Filename   string         // declaring file
	Package    string         // package name
}

// Pos returns the position of the record name.
func (r *Record) Pos() token.Pos {
	if r.Ident == nil {
		return token.NoPos
	}

	return r.Ident.Pos()
}

// End returns the end position of the record name.
func (r *Record) End() token.Pos {
	if r.Ident == nil {
		return token.NoPos
	}

	return r.Ident.End()
}

// IsGeneric reports whether the record declares type parameters.
func (r *Record) IsGeneric() bool {
	return r.TypeParams != nil && len(r.TypeParams.List) > 0
}

// HasAnnotations reports whether any field carries a builder directive.
func (r *Record) HasAnnotations() bool {
	for _, f := range r.Fields {
		if len(f.Annotations) > 0 {
			return true
		}
	}

	return false
}

// FieldDecl is one struct field. A field list such as "A, B int" produces
// one FieldDecl per name sharing the same type and annotations.
type FieldDecl struct {
	Name        *ast.Ident   // nil for embedded fields
	Type        ast.Expr     // declared type as written
	Annotations []Annotation // raw //builder directives in source order
	Field       *ast.Field   // the declaring field node
}

// Embedded reports whether the field has no name.
func (f *FieldDecl) Embedded() bool {
	return f.Name == nil
}

// Ident returns the field name, or "" for embedded fields.
func (f *FieldDecl) Ident() string {
	if f.Name == nil {
		return ""
	}

	return f.Name.Name
}

// Annotation is a raw directive comment, e.g. //builder:each="Tag".
type Annotation struct {
	Text  string    // full comment text including the leading "//"
	Slash token.Pos // position of the leading "//"
}

// Pos returns the position of the comment.
func (a Annotation) Pos() token.Pos {
	return a.Slash
}

// End returns the position just past the comment.
func (a Annotation) End() token.Pos {
	return a.Slash + token.Pos(len(a.Text))
}

// ImportSpec is one import of the file declaring a record.
type ImportSpec struct {
	Name string // explicit local name, empty if none
	Path string // import path
}
