package analyzer

import "strings"

// SessionType is a coarse label for the dominant nature of a session.
// It selects the wording of fallback suggestions when the remote model
// is unavailable.
type SessionType string

// The seven session categories. Classification tests them in this order
// and returns the first match, so a transcript mentioning both "bug" and
// "feature" is a bug-fixing session.
const (
	SessionProjectSetup SessionType = "project_setup"
	SessionBugFixing    SessionType = "bug_fixing"
	SessionFeatureDev   SessionType = "feature_development"
	SessionRefactoring  SessionType = "refactoring"
	SessionTesting      SessionType = "testing"
	SessionDeployment   SessionType = "deployment"
	SessionGeneralDev   SessionType = "general_development"
)

// sessionTypeRules are tested in priority order. Keep the order stable:
// it decides which fallback template a user sees.
var sessionTypeRules = []struct {
	sessionType SessionType
	terms       []string
}{
	{SessionProjectSetup, []string{"new project", "initial", "setup", "scaffold"}},
	{SessionBugFixing, []string{"bug", "fix", "error", "debug"}},
	{SessionFeatureDev, []string{"feature", "implement", "add", "create"}},
	{SessionRefactoring, []string{"refactor", "cleanup", "optimize", "improve"}},
	{SessionTesting, []string{"test", "testing", "spec", "coverage"}},
	{SessionDeployment, []string{"deploy", "release", "production", "ci/cd"}},
}

// ClassifySessionType returns the session category for a transcript.
// Every input maps to exactly one category; anything unmatched is
// general_development.
func ClassifySessionType(transcript string) SessionType {
	return classifySessionType(strings.ToLower(transcript))
}

func classifySessionType(lower string) SessionType {
	for _, rule := range sessionTypeRules {
		if containsAny(lower, rule.terms) {
			return rule.sessionType
		}
	}
	return SessionGeneralDev
}
