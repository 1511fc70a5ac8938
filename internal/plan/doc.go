// Package plan turns record declarations into field plans consumed by code
// generation.
//
// Planning pipeline, per field and in declaration order:
//  1. Parse //builder directives (errors here win; they are the most specific)
//  2. Classify the declared type (plain, optional or repeated shape)
//  3. Pick the category:
//     - an each directive makes the field Repeated, whatever its shape
//     - otherwise an optional shape makes it Optional
//     - everything else is Required, using the declared type verbatim
//
// The first error aborts planning of the record.
package plan
