package analyzer

import "strings"

// Profile is the deep-pass feature record used for suggestion generation.
// Slice fields follow indicator-table order and are nil when nothing was
// detected.
type Profile struct {
	Languages   []string    `json:"languages"`
	Frameworks  []string    `json:"frameworks"`
	Tools       []string    `json:"tools"`
	Patterns    []string    `json:"patterns"`
	Issues      []string    `json:"issues"`
	SessionType SessionType `json:"session_type"`
}

// AnalyzeDeep runs the full detection pass over a transcript.
func AnalyzeDeep(transcript string) Profile {
	lower := strings.ToLower(transcript)
	return Profile{
		Languages:   detect(lower, languageIndicators, 1),
		Frameworks:  detect(lower, frameworkIndicators, 1),
		Tools:       detect(lower, toolIndicators, 1),
		Patterns:    detect(lower, patternIndicators, 2),
		Issues:      detect(lower, issueIndicators, 1),
		SessionType: classifySessionType(lower),
	}
}

// detect returns the names of indicators with at least minHits distinct
// term matches in the lowercased transcript.
func detect(lower string, table []indicator, minHits int) []string {
	var found []string
	for _, ind := range table {
		hits := 0
		for _, term := range ind.terms {
			if strings.Contains(lower, term) {
				hits++
				if hits >= minHits {
					found = append(found, ind.name)
					break
				}
			}
		}
	}
	return found
}
