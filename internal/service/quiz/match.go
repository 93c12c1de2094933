package quiz

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/one393143/quizlet/internal/domain"
)

// DefaultMaxDistance is the largest edit distance a lenient written answer may have.
const DefaultMaxDistance = 2

// EditDistance is the Levenshtein distance between a and b, counted in runes.
func EditDistance(a, b string) int {
	return levenshtein.ComputeDistance(a, b)
}

// MatchWritten compares a typed answer with the expected one.
// Strict mode wants the trimmed texts to be equal. Lenient mode ignores case
// and repeated spaces and accepts up to maxDistance edits.
// An empty answer never matches.
func MatchWritten(given, expected string, strict bool, maxDistance int) bool {
	given = strings.TrimSpace(given)
	if given == "" {
		return false
	}
	if strict {
		return given == strings.TrimSpace(expected)
	}
	return EditDistance(domain.NormalizeText(given), domain.NormalizeText(expected)) <= maxDistance
}
