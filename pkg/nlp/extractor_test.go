package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedExtractor(year int) *Extractor {
	e := NewDefaultExtractor()
	e.Now = func() time.Time { return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC) }
	return e
}

func TestNormalize(t *testing.T) {
	e := NewDefaultExtractor()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercase and punctuation", "Hello, World!", "hello world"},
		{"whitespace collapse", "  a\t\tb \n c  ", "a b c"},
		{"reactjs variant", "Experienced ReactJS developer", "experienced react developer"},
		{"react dot js variant", "Built apps with React.js", "built apps with react"},
		{"node variants", "Node.js and NodeJS and node js", "node and node and node"},
		{"mongo variants", "Mongo DB, mongo-db", "mongodb mongodb"},
		{"bare js", "wrote JS daily", "wrote javascript daily"},
		{"js es6 variant", "javascript(es6) expert", "javascript expert"},
		{"aws long form", "deployed on Amazon Web Services", "deployed on aws"},
		{"no false substring hit", "jsonschema parser", "jsonschema parser"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	e := NewDefaultExtractor()
	in := "Senior React.js / Node.js engineer, 5 years of experience on Amazon Web Services"
	once := e.Normalize(in)
	assert.Equal(t, once, e.Normalize(once))
}

func TestNormalizeDeterministic(t *testing.T) {
	e := NewDefaultExtractor()
	in := "ReactJS, NodeJS, Mongo DB and JS"
	first := e.Normalize(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, e.Normalize(in))
	}
}

func TestSkills(t *testing.T) {
	e := NewDefaultExtractor()

	t.Run("membership only, vocabulary order", func(t *testing.T) {
		text := e.Normalize("Python and SQL, then more python, some React.js and aws")
		got := e.Skills(text)
		assert.Equal(t, []string{"react", "python", "sql", "aws"}, got)
	})

	t.Run("empty input yields empty non-nil slice", func(t *testing.T) {
		got := e.Skills("")
		require.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("whole word matching", func(t *testing.T) {
		text := e.Normalize("expressive cascading htmlparser")
		assert.Empty(t, e.Skills(text))
	})

	t.Run("only vocabulary tokens are reported", func(t *testing.T) {
		text := e.Normalize("golang rust kubernetes css")
		assert.Equal(t, []string{"css"}, e.Skills(text))
	})
}

func TestExperienceYears(t *testing.T) {
	e := fixedExtractor(2024)

	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"no signal", "worked on various projects", 0},
		{"explicit years", "5 years of experience in backend", 5},
		{"plus and abbreviations", "3+ yrs exp with databases", 3},
		{"singular year", "1 year of experience", 1},
		{"closed range", "Acme Corp 2015 - 2019", 4},
		{"open range to present", "Acme Corp 2018 - Present", 6},
		{"open range to current", "Acme Corp 2020 - current", 4},
		{"max of both heuristics", "7 years of experience; 2019 - 2021 at Acme", 7},
		{"range beats explicit", "2 years of experience; 2014 - 2022 at Acme", 8},
		{"inverted range ignored", "2022 - 2015 typo", 0},
		{"max across ranges", "2010 - 2013, then 2015 - Present", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ExperienceYears(tt.in))
		})
	}
}

func TestEducation(t *testing.T) {
	e := NewDefaultExtractor()

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", e.Education(""))
	})

	t.Run("keyword lines joined and trimmed", func(t *testing.T) {
		text := "John Doe\n  Bachelor of Science in CS  \nWorked at Acme\nMaster of Engineering\n"
		assert.Equal(t, "Bachelor of Science in CS | Master of Engineering", e.Education(text))
	})

	t.Run("case insensitive keyword match", func(t *testing.T) {
		assert.Equal(t, "BTECH IN ELECTRONICS", e.Education("BTECH IN ELECTRONICS"))
	})

	t.Run("windows line endings", func(t *testing.T) {
		text := "intro\r\nPhD in Physics\r\noutro"
		assert.Equal(t, "PhD in Physics", e.Education(text))
	})

	t.Run("caps at five lines", func(t *testing.T) {
		text := "degree 1\ndegree 2\ndegree 3\ndegree 4\ndegree 5\ndegree 6"
		assert.Equal(t, "degree 1 | degree 2 | degree 3 | degree 4 | degree 5", e.Education(text))
	})
}

func TestContainsPhrase(t *testing.T) {
	assert.True(t, ContainsPhrase("senior rest api developer", "rest api"))
	assert.False(t, ContainsPhrase("senior rest apis developer", "rest api"))
	assert.False(t, ContainsPhrase("anything", ""))
}
