package common

import "unicode"

// LowerFirst lowercases the leading upper-case run of an identifier, leaving
// the last letter of an initialism upper-case when a lower-case letter
// follows it: "Name" -> "name", "ID" -> "id", "URLPath" -> "urlPath".
func LowerFirst(name string) string {
	runes := []rune(name)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	if n > 1 && n < len(runes) && unicode.IsLower(runes[n]) {
		n--
	}

	for i := range n {
		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
