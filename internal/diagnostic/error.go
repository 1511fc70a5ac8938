package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind classifies a generation error.
type Kind int

const (
	KindUnknown Kind = iota
	// KindMalformedWrapper is a wrapper name used without exactly one type argument.
	KindMalformedWrapper
	// KindMalformedAnnotation is a builder directive with the wrong shape.
	KindMalformedAnnotation
	// KindDuplicateAnnotation is more than one builder directive on a field.
	KindDuplicateAnnotation
	// KindExpectedRepeatedType is an each directive on a non-repeated field.
	KindExpectedRepeatedType
	// KindEmptyRecord is a record without fields.
	KindEmptyRecord
	// KindUnsupportedField is an embedded (unnamed) field.
	KindUnsupportedField
	// KindConflictingMember is two generated members sharing a name.
	KindConflictingMember
)

// Poser is anything with a source position, typically an ast.Node.
type Poser interface {
	Pos() token.Pos
}

// Ender is anything with an end position, typically an ast.Node.
type Ender interface {
	End() token.Pos
}

// Error is a generation failure located in the user's source code.
type Error struct {
	Kind   Kind
	Pos    token.Pos // may be token.NoPos
	End    token.Pos // may be token.NoPos
	Record string    // record type name, if known
	Field  string    // field name, if known
	Msg    string
}

// Errorf builds an *Error of the given kind located at node. node may be nil.
func Errorf(kind Kind, node Poser, format string, args ...any) *Error {
	e := &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, args...),
	}

	if node != nil {
		e.Pos = node.Pos()
		if ender, ok := node.(Ender); ok {
			e.End = ender.End()
		}
	}

	return e
}

// At builds an *Error located at an explicit position range.
func At(kind Kind, pos, end token.Pos, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Pos:  pos,
		End:  end,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface. Positions are not included because
// rendering them needs a FileSet; see Format.
func (e *Error) Error() string {
	return e.subject() + e.Msg
}

func (e *Error) subject() string {
	switch {
	case e.Record != "" && e.Field != "":
		return e.Record + "." + e.Field + ": "
	case e.Record != "":
		return e.Record + ": "
	case e.Field != "":
		return "field " + e.Field + ": "
	default:
		return ""
	}
}

// Position resolves the start position of the error.
func (e *Error) Position(fset *token.FileSet) token.Position {
	if fset == nil || !e.Pos.IsValid() {
		return token.Position{}
	}

	return fset.Position(e.Pos)
}

// WithContext fills in the record and field names of a generation error that
// does not carry them yet. Other errors are returned unchanged.
func WithContext(err error, record, field string) error {
	var gerr *Error
	if !errors.As(err, &gerr) {
		return err
	}

	if gerr.Record == "" {
		gerr.Record = record
	}

	if gerr.Field == "" {
		gerr.Field = field
	}

	return err
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Kind
	}

	return KindUnknown
}

// Format renders err as "file:line:col: [Kind] message" when it is a located
// generation error, and as err.Error() otherwise.
func Format(fset *token.FileSet, err error) string {
	var gerr *Error
	if !errors.As(err, &gerr) {
		return err.Error()
	}

	msg := fmt.Sprintf("[%s] %s", gerr.Kind, gerr.Error())

	pos := gerr.Position(fset)
	if !pos.IsValid() {
		return msg
	}

	return pos.String() + ": " + msg
}
