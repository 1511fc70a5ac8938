// Package gen synthesizes builder code from record plans.
//
// Generation uses text/template and golang.org/x/tools/imports for
// readable, deterministic Go code. For a record R it emits:
//   - RBuilder, the accumulator with one storage slot per field
//   - one setter per field, plus a per-item setter for each repeated field
//     whose each directive names a different method
//   - Build, which checks required fields and returns R
//   - NewRBuilder, which returns an accumulator with empty collections
//
// Required fields are stored behind a pointer so that "never set" is
// distinguishable from the zero value. Optional fields keep their declared
// wrapper, which is already absent by default. Repeated fields keep their
// declared collection type and are cloned on Build so that later appends do
// not alias a built record.
package gen
