// Package match suggests the closest known name for a misspelled one, as in
// "no struct type Comand; did you mean Command?".
package match
