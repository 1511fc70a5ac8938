// Package shape classifies declared field types as plain, optional or
// repeated by matching the outermost generic wrapper name.
//
// Matching is purely syntactic: any type whose last name segment is a
// recognized wrapper name is treated as that wrapper, whether or not it is
// the one from package field. Only the outermost wrapper is stripped, so
// Repeated[Optional[T]] is a repeated collection of Optional[T].
package shape

import (
	"go/ast"
	"slices"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

// Kind is the classification of a declared type.
type Kind int

const (
	Plain Kind = iota
	Optional
	Repeated
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Optional:
		return "optional"
	case Repeated:
		return "repeated"
	default:
		return "unknown"
	}
}

// Form tells how a non-plain shape was spelled.
type Form int

const (
	// FormNone is used for Plain shapes.
	FormNone Form = iota
	// FormWrapper is a named generic wrapper such as Optional[T].
	FormWrapper
	// FormBuiltin is a Go-native spelling: []T or *T.
	FormBuiltin
)

// Shape is the result of classifying one declared type.
type Shape struct {
	Kind    Kind
	Form    Form
	Type    ast.Expr // declared type as written
	Inner   ast.Expr // wrapped type; equals Type for Plain
	Wrapper string   // matched wrapper name, e.g. "Optional"; empty otherwise
}

// Vocabulary lists the names and Go-native forms the classifier recognizes.
type Vocabulary struct {
	Optional         []string // wrapper names meaning "optional", e.g. "Optional"
	Repeated         []string // wrapper names meaning "repeated", e.g. "Repeated"
	OptionalPointers bool     // classify *T as optional
	RepeatedSlices   bool     // classify []T as repeated
}

// DefaultVocabulary returns the names used by package field, with unsized
// slices treated as repeated.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Optional:       []string{"Optional"},
		Repeated:       []string{"Repeated"},
		RepeatedSlices: true,
	}
}

// Classifier classifies declared types against a Vocabulary. It holds no
// other state and is safe for concurrent use.
type Classifier struct {
	vocab Vocabulary
}

// NewClassifier creates a Classifier for vocab.
func NewClassifier(vocab Vocabulary) *Classifier {
	return &Classifier{vocab: vocab}
}

// Classify inspects the outermost segment of declared. A recognized wrapper
// name with anything other than exactly one type argument is a
// KindMalformedWrapper error located at declared.
func (c *Classifier) Classify(declared ast.Expr) (Shape, error) {
	plain := Shape{Kind: Plain, Form: FormNone, Type: declared, Inner: declared}

	expr := ast.Unparen(declared)

	var (
		base ast.Expr
		args []ast.Expr
	)

	switch e := expr.(type) {
	case *ast.IndexExpr:
		base, args = e.X, []ast.Expr{e.Index}
	case *ast.IndexListExpr:
		base, args = e.X, e.Indices
	case *ast.Ident, *ast.SelectorExpr:
		base = e
	case *ast.ArrayType:
		if e.Len == nil && c.vocab.RepeatedSlices {
			return Shape{Kind: Repeated, Form: FormBuiltin, Type: declared, Inner: e.Elt}, nil
		}
		return plain, nil
	case *ast.StarExpr:
		if c.vocab.OptionalPointers {
			return Shape{Kind: Optional, Form: FormBuiltin, Type: declared, Inner: e.X}, nil
		}
		return plain, nil
	default:
		return plain, nil
	}

	name := lastSegment(base)
	kind, ok := c.wrapperKind(name)
	if !ok {
		return plain, nil
	}

	if base == expr {
		return Shape{}, diagnostic.Errorf(diagnostic.KindMalformedWrapper, declared,
			"%s requires exactly one type argument, as in %s[T]", name, name)
	}

	if len(args) != 1 {
		return Shape{}, diagnostic.Errorf(diagnostic.KindMalformedWrapper, declared,
			"%s takes exactly one type argument, got %d in %s", name, len(args), analyze.TypeString(declared))
	}

	return Shape{Kind: kind, Form: FormWrapper, Type: declared, Inner: args[0], Wrapper: name}, nil
}

// wrapperKind maps a wrapper name to its kind.
func (c *Classifier) wrapperKind(name string) (Kind, bool) {
	switch {
	case name == "":
		return Plain, false
	case slices.Contains(c.vocab.Optional, name):
		return Optional, true
	case slices.Contains(c.vocab.Repeated, name):
		return Repeated, true
	default:
		return Plain, false
	}
}

// lastSegment returns the name of an identifier or the selected name of a
// qualified identifier.
func lastSegment(expr ast.Expr) string {
	switch e := ast.Unparen(expr).(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Sel.Name
	default:
		return ""
	}
}
