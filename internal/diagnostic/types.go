package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"go.uber.org/multierr"
)

// Diagnostics holds diagnostic information collected over one run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Record identifies which record this relates to (if any).
	Record string
	// Field identifies which field this relates to (if any).
	Field string
	// Position is where the problem is in source (may be invalid).
	Position token.Position
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, record, field string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, record, field string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, record, field string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Record:   record,
		Field:    field,
	})
}

// AddErr records err as error diagnostics, one per error combined with
// multierr. Located generation errors keep their kind as the code and their
// resolved position.
func (d *Diagnostics) AddErr(fset *token.FileSet, err error) {
	for _, e := range multierr.Errors(err) {
		d.addErr(fset, e)
	}
}

func (d *Diagnostics) addErr(fset *token.FileSet, err error) {
	var gerr *Error
	if !errors.As(err, &gerr) {
		d.AddError("error", err.Error(), "", "")
		return
	}

	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     gerr.Kind.String(),
		Message:  gerr.Msg,
		Record:   gerr.Record,
		Field:    gerr.Field,
		Position: gerr.Position(fset),
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Position.IsValid() {
		prefix = append(prefix, d.Position.String()+":")
	}

	switch {
	case d.Record != "" && d.Field != "":
		prefix = append(prefix, d.Record+"."+d.Field+":")
	case d.Record != "":
		prefix = append(prefix, d.Record+":")
	case d.Field != "":
		prefix = append(prefix, d.Field+":")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + " " + msg
	}

	return msg
}
