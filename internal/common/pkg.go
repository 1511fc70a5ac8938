package common

import (
	"path"
	"strconv"
	"strings"
	"unicode"
)

// PkgAlias returns the name a package is referred to by when it is imported
// without an explicit name: the last path element, skipping a trailing
// major-version element ("v2"), without a "go-" prefix and cut at the first
// character that is not valid in an identifier. "gopkg.in/yaml.v3" gives
// "yaml". Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if strings.HasPrefix(base, "v") {
		if _, err := strconv.Atoi(base[1:]); err == nil {
			if dir := path.Dir(pkgPath); dir != "." {
				base = path.Base(dir)
			}
		}
	}

	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexFunc(base, notIdentifier); i >= 0 {
		base = base[:i]
	}

	return base
}

func notIdentifier(r rune) bool {
	return r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
