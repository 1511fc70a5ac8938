package match

import (
	"strings"
	"unicode"
)

// MinSimilarity is the lowest score Suggest accepts.
const MinSimilarity = 0.6

// Normalize folds case and strips '_', '-' and spaces.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Suggest returns the candidate most similar to name, or "" when none
// scores at least MinSimilarity. Ties go to the earlier candidate.
func Suggest(name string, candidates []string) string {
	best, bestScore := "", 0.0

	for _, c := range candidates {
		if c == name {
			continue
		}

		if score := Similarity(name, c); score >= MinSimilarity && score > bestScore {
			best, bestScore = c, score
		}
	}

	return best
}

// DidYouMean formats a suggestion suffix such as "; did you mean Command?",
// or returns "" when nothing is close enough.
func DidYouMean(name string, candidates []string) string {
	if s := Suggest(name, candidates); s != "" {
		return "; did you mean " + s + "?"
	}

	return ""
}
