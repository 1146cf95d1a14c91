package text

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NullText is what a nil value turns into before matching.
const NullText = "None"

var stripMarks = runes.Remove(runes.In(unicode.Mn))

// Normalize brings text to its canonical form: lower case, no combining marks
// (after canonical decomposition) and no surrounding whitespace.
// Normalize(Normalize(s)) == Normalize(s) holds for any input.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	decomposed := norm.NFD.String(strings.ToLower(s))

	stripped, _, _ := transform.String(stripMarks, decomposed)

	return strings.TrimSpace(stripped)
}

// Contains reports whether the canonical needle is a substring of the canonical haystack.
// An empty needle matches any haystack.
func Contains(haystack, needle string) bool {
	return strings.Contains(Normalize(haystack), Normalize(needle))
}

// ContainsValue is Contains for loosely typed cell values.
// A nil haystack is matched as the literal NullText, so callers that must not
// match missing values should filter them out first.
func ContainsValue(haystack interface{}, needle string) bool {
	return Contains(Stringify(haystack), needle)
}

// Stringify converts a cell value into the text the matcher works on.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return NullText
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
