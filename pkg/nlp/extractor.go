package nlp

import (
	"regexp"
	"time"
)

// Synonym maps a variant phrase onto its canonical skill token.
// Entries are applied in slice order, one sequential pass each.
type Synonym struct {
	Variant   string
	Canonical string
}

// DefaultSkillVocabulary is the controlled list of recognized skill tokens.
var DefaultSkillVocabulary = []string{
	"react",
	"node",
	"mongodb",
	"express",
	"javascript",
	"html",
	"css",
	"python",
	"java",
	"sql",
	"aws",
}

// DefaultSynonyms is the fixed substitution table, in application order.
var DefaultSynonyms = []Synonym{
	{"reactjs", "react"},
	{"react.js", "react"},
	{"react js", "react"},
	{"nodejs", "node"},
	{"node.js", "node"},
	{"node js", "node"},
	{"mongo db", "mongodb"},
	{"mongo-db", "mongodb"},
	{"js", "javascript"},
	{"javascript(es6)", "javascript"},
	{"amazon web services", "aws"},
}

// DefaultEducationKeywords mark lines likely describing academic credentials.
var DefaultEducationKeywords = []string{
	"bachelor",
	"master",
	"bsc",
	"b.sc",
	"btech",
	"b.tech",
	"be",
	"b.e",
	"mtech",
	"m.tech",
	"msc",
	"m.sc",
	"phd",
	"degree",
}

type synonymRule struct {
	re          *regexp.Regexp
	replacement string
}

// Extractor bundles the normalization, skill, experience and education
// extraction steps over fixed vocabulary tables. Tables are supplied at
// construction and never mutated afterwards.
type Extractor struct {
	vocab       []string
	synonyms    []synonymRule
	eduKeywords []string

	// Now supplies the current time for date-range experience estimates.
	// Overridable in tests.
	Now func() time.Time
}

// NewExtractor builds an Extractor over the given tables. Nil slices fall
// back to the package defaults.
func NewExtractor(vocab []string, synonyms []Synonym, eduKeywords []string) *Extractor {
	if vocab == nil {
		vocab = DefaultSkillVocabulary
	}
	if synonyms == nil {
		synonyms = DefaultSynonyms
	}
	if eduKeywords == nil {
		eduKeywords = DefaultEducationKeywords
	}
	e := &Extractor{
		vocab:       vocab,
		eduKeywords: eduKeywords,
		Now:         time.Now,
	}
	for _, s := range synonyms {
		e.synonyms = append(e.synonyms, synonymRule{
			re:          compilePhrase(s.Variant),
			replacement: " " + s.Canonical + " ",
		})
	}
	return e
}

// NewDefaultExtractor returns an Extractor over the default tables.
func NewDefaultExtractor() *Extractor {
	return NewExtractor(nil, nil, nil)
}

// Vocabulary returns the controlled skill list.
func (e *Extractor) Vocabulary() []string { return e.vocab }

var reWordChar = regexp.MustCompile(`^[a-z0-9]`)
var reWordCharEnd = regexp.MustCompile(`[a-z0-9]$`)

// compilePhrase builds a whole-phrase matcher. Word boundaries are anchored
// only where the phrase starts/ends with a word character, so variants like
// "javascript(es6)" still match.
func compilePhrase(variant string) *regexp.Regexp {
	pattern := regexp.QuoteMeta(variant)
	if reWordChar.MatchString(variant) {
		pattern = `\b` + pattern
	}
	if reWordCharEnd.MatchString(variant) {
		pattern += `\b`
	}
	return regexp.MustCompile(pattern)
}
