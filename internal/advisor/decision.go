package advisor

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/ccguide/internal/analyzer"
)

// FallbackThreshold is the minimum FallbackScore at which the local
// heuristic decides to suggest when the decision model is unreachable.
const FallbackThreshold = 3

// decisionPromptTemplate asks the decision model for a bare YES/NO
// verdict on whether suggestions are worth showing.
const decisionPromptTemplate = `
You are a smart filter for Claude Code AI suggestions. Analyze the session and decide if suggestions would be valuable.

SESSION METRICS:
- Length: %d characters
- Has code: %t
- Has errors: %t
- Has testing: %t
- Has git activity: %t
- Complexity indicators: %d

FULL SESSION CONTEXT:
%s

DECISION CRITERIA:
✅ Suggest if:
- Significant coding work was done
- Code quality issues are apparent
- Security concerns exist
- Testing gaps are visible
- Documentation is missing
- Architecture could be improved
- Best practices weren't followed

❌ Don't suggest if:
- Task is trivial (simple edits, file reads)
- User is just exploring/learning
- Session is primarily conversational
- Work is already high-quality
- Previous suggestions were ignored

Respond with only "YES" or "NO".
`

// ShouldAdvise decides whether this session deserves suggestions. The
// checks run cheapest first and each one short-circuits to false. On
// every path that returns true the cooldown is recorded before
// returning, so a later generation failure still consumes the window.
func (a *Advisor) ShouldAdvise(sessionID, transcript string) bool {
	if !a.cfg.EnableSuggestions {
		a.logger.Info("suggestions disabled in config")
		return false
	}

	if len(transcript) < a.cfg.MinSessionLength {
		a.logger.Info("session too short for suggestions",
			"length", len(transcript), "min", a.cfg.MinSessionLength)
		return false
	}

	if a.cooldown.InCooldown(a.cfg.CooldownDuration()) {
		a.logger.Info("in cooldown, skipping suggestions", "session", sessionID)
		return false
	}

	features := analyzer.Analyze(transcript)
	a.logger.Info("session analysis",
		"length", features.Length,
		"has_code", features.HasCode,
		"has_errors", features.HasErrors,
		"has_testing", features.HasTesting,
		"has_git", features.HasGit,
		"complexity", features.ComplexityIndicators)

	reply, err := a.model.Classify(decisionPrompt(features, transcript))
	if err != nil {
		a.logger.Error("decision model failed", "error", err)
		return a.fallbackDecision(features)
	}

	// Strict literal match: anything other than YES, after trimming and
	// uppercasing, is a no.
	decision := strings.ToUpper(strings.TrimSpace(reply))
	should := decision == "YES"
	a.logger.Info("model decision", "session", sessionID, "reply", decision, "advise", should)

	if should {
		a.cooldown.Record()
	}
	return should
}

// fallbackDecision applies the local heuristic when the remote
// classifier is unavailable.
func (a *Advisor) fallbackDecision(features analyzer.Features) bool {
	score := FallbackScore(features)
	should := score >= FallbackThreshold

	if should {
		a.cooldown.Record()
	}

	a.logger.Info("fallback decision", "score", score, "advise", should)
	return should
}

// FallbackScore is the local stand-in for the decision model: +1 for
// length over 1000, +2 for code, +1 for errors, +1 for any complexity
// markers, giving a maximum of 5.
func FallbackScore(features analyzer.Features) int {
	score := 0
	if features.Length > 1000 {
		score++
	}
	if features.HasCode {
		score += 2
	}
	if features.HasErrors {
		score++
	}
	if features.ComplexityIndicators > 0 {
		score++
	}
	return score
}

func decisionPrompt(features analyzer.Features, transcript string) string {
	return fmt.Sprintf(decisionPromptTemplate,
		features.Length,
		features.HasCode,
		features.HasErrors,
		features.HasTesting,
		features.HasGit,
		features.ComplexityIndicators,
		transcript)
}
