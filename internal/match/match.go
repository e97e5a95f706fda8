// Package match provides the keyword-scanning primitives shared by the
// scorer, signal synthesizer, scenario engine, and narrative clustering.
//
// All heuristic classification in the pipeline reduces to a handful of scan
// policies over lowercased text: "does any keyword appear", "which keywords
// appear", "first table entry that matches". Centralizing them here keeps the
// first-match/union-match semantics explicit at each call site.
package match

import "strings"

// Fold lowercases text once so callers can scan repeatedly without
// re-normalizing. All other functions in this package expect folded text.
func Fold(text string) string {
	return strings.ToLower(text)
}

// ContainsAny reports whether any keyword appears as a substring of the
// folded text. Keywords are assumed to be lowercase already.
func ContainsAny(folded string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			return true
		}
	}
	return false
}

// CountDistinct returns how many of the keywords appear as substrings of the
// folded text. Each keyword counts at most once regardless of how many times
// it occurs.
func CountDistinct(folded string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(folded, kw) {
			n++
		}
	}
	return n
}

// ContainsWord checks if text contains word as a whole word (not substring).
// "iran" must not match inside "veteran".
func ContainsWord(folded, word string) bool {
	idx := strings.Index(folded, word)
	if idx < 0 {
		return false
	}

	// Check left boundary
	if idx > 0 && isAlphaNum(folded[idx-1]) {
		return ContainsWord(folded[idx+len(word):], word)
	}

	// Check right boundary
	end := idx + len(word)
	if end < len(folded) && isAlphaNum(folded[end]) {
		return ContainsWord(folded[end:], word)
	}

	return true
}

func isAlphaNum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Tokens splits folded text into tokens of at least minLen characters.
// Used by the novelty check to compare titles on their substantive words.
func Tokens(folded string, minLen int) []string {
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9')
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) >= minLen {
			out = append(out, f)
		}
	}
	return out
}

// Entry is one row of an ordered keyword table: if any keyword matches, the
// entry's value is selected.
type Entry struct {
	Keywords []string
	Value    string
}

// FirstMatch scans entries in declaration order and returns the value of the
// first entry with a keyword hit, or fallback if none match.
func FirstMatch(folded string, entries []Entry, fallback string) string {
	for _, e := range entries {
		if ContainsAny(folded, e.Keywords) {
			return e.Value
		}
	}
	return fallback
}
