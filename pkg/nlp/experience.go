package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "5 years of experience", "3+ yrs exp"
	reExplicitYears = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|yrs?)\s+(?:of\s+)?(?:experience|exp)`)
	// "2015 - 2019", "2018 - Present"
	reDateRange = regexp.MustCompile(`(?i)(\d{4})\s*[-–]\s*(present|current|\d{4})`)
)

// ExperienceYears estimates total years of experience from raw resume text.
// Two independent heuristics run over the text and the larger estimate wins;
// they are never summed. Empty input yields 0.
func (e *Extractor) ExperienceYears(text string) int {
	if text == "" {
		return 0
	}
	years := explicitYears(text)
	if rangeYears := dateRangeYears(text, e.Now().Year()); rangeYears > years {
		years = rangeYears
	}
	return years
}

// explicitYears scans for "<N> [+] years [of] experience" style statements
// and returns the maximum N found.
func explicitYears(text string) int {
	best := 0
	for _, m := range reExplicitYears.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > best {
			best = n
		}
	}
	return best
}

// dateRangeYears scans for "YYYY - YYYY" and "YYYY - Present" ranges and
// returns the maximum span. Open-ended ranges close at the current year.
func dateRangeYears(text string, currentYear int) int {
	best := 0
	for _, m := range reDateRange.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if !strings.EqualFold(m[2], "present") && !strings.EqualFold(m[2], "current") {
			if n, err := strconv.Atoi(m[2]); err == nil {
				end = n
			}
		}
		if end < start {
			continue
		}
		if span := end - start; span > best {
			best = span
		}
	}
	return best
}
