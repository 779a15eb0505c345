// Package analyzer derives structured features from raw session transcripts.
//
// Everything here is pure string inspection with no I/O and no clock.
// Matching is case-insensitive substring search: the transcript is
// lowercased once and indicator terms are checked against it verbatim.
// Two depths exist. Analyze is the cheap pass the decision stage runs on
// every invocation; AnalyzeDeep adds the language/framework/tool/pattern/
// issue detection and session-type classification used only when
// suggestions are actually generated.
package analyzer

import "strings"

// Features is the cheap-pass feature record for a transcript.
type Features struct {
	// Length is the transcript size in bytes.
	Length int `json:"length"`

	// HasCode reports whether any code-definition keyword appears.
	HasCode bool `json:"has_code"`

	// HasErrors reports whether any error-related keyword appears.
	HasErrors bool `json:"has_errors"`

	// HasTesting reports whether any testing-related keyword appears.
	HasTesting bool `json:"has_testing"`

	// HasGit reports whether any git-activity keyword appears.
	HasGit bool `json:"has_git"`

	// ComplexityIndicators counts whitespace-separated words that are
	// exactly one of the complexity markers (todo, fixme, hack, temp).
	ComplexityIndicators int `json:"complexity_indicators"`
}

var (
	codeKeywords    = []string{"def ", "function", "class ", "import ", "const ", "var ", "let "}
	errorKeywords   = []string{"error", "exception", "failed", "traceback", "syntax error"}
	testingKeywords = []string{"test", "pytest", "unittest", "jest", "spec"}
	gitKeywords     = []string{"git ", "commit", "branch", "merge", "pull request"}
)

// complexityWords are matched against whole words only, unlike the keyword
// lists above: "todo" counts, "todos" does not.
var complexityWords = map[string]bool{
	"todo":  true,
	"fixme": true,
	"hack":  true,
	"temp":  true,
}

// Analyze runs the cheap feature pass over a transcript.
func Analyze(transcript string) Features {
	lower := strings.ToLower(transcript)
	return Features{
		Length:               len(transcript),
		HasCode:              containsAny(lower, codeKeywords),
		HasErrors:            containsAny(lower, errorKeywords),
		HasTesting:           containsAny(lower, testingKeywords),
		HasGit:               containsAny(lower, gitKeywords),
		ComplexityIndicators: countComplexityWords(transcript),
	}
}

// containsAny reports whether any of the terms is a substring of s.
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// countComplexityWords counts words whose lowercase form is a complexity
// marker.
func countComplexityWords(transcript string) int {
	count := 0
	for _, word := range strings.Fields(transcript) {
		if complexityWords[strings.ToLower(word)] {
			count++
		}
	}
	return count
}
