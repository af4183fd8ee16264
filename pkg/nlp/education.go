package nlp

import "strings"

const maxEducationLines = 5

// Education pulls lines that likely describe academic credentials, keyed on
// a fixed keyword list (case-insensitive substring match per line). At most
// the first five matched lines are kept, trimmed, joined with " | ".
func (e *Extractor) Education(text string) string {
	if text == "" {
		return ""
	}
	var matched []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		lower := strings.ToLower(line)
		for _, kw := range e.eduKeywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, strings.TrimSpace(line))
				break
			}
		}
		if len(matched) == maxEducationLines {
			break
		}
	}
	return strings.Join(matched, " | ")
}
