// Package analyze provides package loading and record declaration extraction.
//
// It uses golang.org/x/tools/go/packages in syntax mode to read the struct
// declarations of a package without type-checking it, so a package can be
// analyzed before its builders have been generated.
//
// Key types:
//   - Package: one loaded package and its records
//   - Record: a named struct declaration (optionally generic)
//   - FieldDecl: one named field with its declared type and raw directives
//   - Annotation: a raw //builder directive comment attached to a field
package analyze
