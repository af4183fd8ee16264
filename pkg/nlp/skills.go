package nlp

// Skills returns the distinct vocabulary tokens occurring as whole words in
// already-normalized text. Membership only: no frequency or position
// weighting. Order follows the vocabulary enumeration.
func (e *Extractor) Skills(normalizedText string) []string {
	found := []string{}
	if normalizedText == "" {
		return found
	}
	for _, skill := range e.vocab {
		if ContainsPhrase(normalizedText, skill) {
			found = append(found, skill)
		}
	}
	return found
}
