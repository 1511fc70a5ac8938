// Package diagnostic provides positioned generation errors and structured
// diagnostics for the builder generator.
//
// Key capabilities:
//   - Error: a single generation failure pinned to a token.Pos range
//   - Kind: the error taxonomy (malformed wrapper, malformed directive, ...)
//   - Diagnostics: collected errors and warnings rendered as file:line:col
package diagnostic
