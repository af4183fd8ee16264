package nlp

import (
	"regexp"
	"strings"
)

var (
	reSpecial = regexp.MustCompile(`[^a-z0-9\s]`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// Normalize reduces text to a canonical comparable form:
// - lowercases
// - expands synonym variants to canonical skill tokens (single ordered pass)
// - replaces everything outside [a-z0-9 whitespace] with spaces
// - collapses whitespace runs
// Pure and deterministic; empty input yields "".
func (e *Extractor) Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	for _, rule := range e.synonyms {
		s = rule.re.ReplaceAllString(s, rule.replacement)
	}
	s = reSpecial.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ContainsPhrase reports whether a normalized phrase occurs as whole words
// inside normalized text.
// Example: "rest api" is found in " ... rest api ..." but not in " ... rest apis ..."
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	if normalizedPhrase == "" {
		return false
	}
	// ensure word boundaries by padding with spaces
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	return strings.Contains(hay, needle)
}
