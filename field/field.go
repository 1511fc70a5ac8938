// Package field provides the wrapper types recognized by builder-generator
// and the runtime error returned by generated Build methods.
//
// A record opts into builder semantics per field through its declared type:
//
//	type Command struct {
//		ID   int64                  // required
//		Note field.Optional[string] // optional, absent unless set
//		//builder:each="Tag"
//		Tags field.Repeated[string] // repeated, Tag appends one item
//	}
package field

import "fmt"

// Optional holds a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value T
	valid bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool {
	return o.valid
}

// OrElse returns the held value, or def if absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.valid {
		return def
	}

	return o.value
}

// Set stores v, overwriting any previous value.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.valid = true
}

// Clear makes the Optional absent again.
func (o *Optional[T]) Clear() {
	var zero T
	o.value = zero
	o.valid = false
}

// String returns "None" or "Some(<value>)".
func (o Optional[T]) String() string {
	if !o.valid {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Repeated is an ordered collection of values. A nil Repeated is empty.
type Repeated[T any] []T

// Len returns the number of items.
func (r Repeated[T]) Len() int {
	return len(r)
}

// Values returns the items as a plain slice.
func (r Repeated[T]) Values() []T {
	return []T(r)
}
