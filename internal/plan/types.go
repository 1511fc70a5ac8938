package plan

import (
	"go/ast"

	"builder-generator/internal/analyze"
	"builder-generator/internal/directive"
	"builder-generator/internal/shape"
)

//go:generate go tool stringer -type=Category -trimprefix=Category -output=category_string.go

// Category decides how a field is stored, set and finalized.
type Category int

const (
	// CategoryRequired fields must be set before Build succeeds.
	CategoryRequired Category = iota
	// CategoryOptional fields stay absent unless set.
	CategoryOptional
	// CategoryRepeated fields collect items, empty by default.
	CategoryRepeated
)

// RecordPlan is the planned form of one record.
type RecordPlan struct {
	// Record is the declaration the plan was built from.
	Record analyze.Record
	// Fields holds one plan per named field, in declaration order.
	Fields []FieldPlan
}

// Name returns the record type name.
func (p *RecordPlan) Name() string {
	return p.Record.Name
}

// FieldPlan is the categorized plan for one field.
type FieldPlan struct {
	// Name is the field identifier.
	Name string
	// Ident is the field name node.
	Ident *ast.Ident
	// Category is Required, Optional or Repeated.
	Category Category
	// Type is the declared type, used verbatim for Required fields.
	Type ast.Expr
	// Shape is the classification of Type.
	Shape shape.Shape
	// Each is the per-item setter directive; set only for Repeated fields.
	Each *directive.Each
}

// Inner returns the wrapped type of Optional and Repeated shapes, or nil if
// the declared type has no wrapper.
func (f *FieldPlan) Inner() ast.Expr {
	if f.Shape.Kind == shape.Plain {
		return nil
	}

	return f.Shape.Inner
}

// AppendName returns the per-item setter name, or "" for non-repeated fields.
func (f *FieldPlan) AppendName() string {
	if f.Each == nil {
		return ""
	}

	return f.Each.Name
}

// AppendIsSetter reports whether the per-item setter shares the field's own
// name. The comparison is textual.
func (f *FieldPlan) AppendIsSetter() bool {
	return f.Each != nil && f.Each.Name == f.Name
}
