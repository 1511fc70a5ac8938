package field

import "errors"

// ErrMissingField matches every MissingFieldError via errors.Is.
var ErrMissingField = errors.New("missing required field")

// MissingFieldError is returned by a generated Build method when a required
// field was never set.
type MissingFieldError struct {
	Record string // record type name, e.g. "Command"
	Field  string // Go field name, e.g. "ID"
}

// Missing returns a *MissingFieldError for the given record and field.
func Missing(record, field string) error {
	return &MissingFieldError{Record: record, Field: field}
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	if e.Record == "" {
		return "missing required field " + e.Field
	}

	return e.Record + ": missing required field " + e.Field
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
