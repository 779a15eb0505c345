package advisor

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/ccguide/internal/analyzer"
)

// adviceHeader opens every suggestion block, generated or fallback.
const adviceHeader = "## 🧭 CCGuide Suggestions\n\n"

// suggestionPromptTemplate asks the suggestion model for the full
// markdown guidance block.
const suggestionPromptTemplate = `
You are CCGuide, an expert AI assistant providing intelligent coding guidance for Claude Code sessions.

SESSION ANALYSIS:
- Type: %s
- Languages: %s
- Frameworks: %s
- Tools: %s
- Patterns: %s
- Potential Issues: %s

SESSION TRANSCRIPT:
%s

GUIDANCE REQUEST:
As CCGuide, provide intelligent, actionable suggestions tailored to this specific session. Focus on:

1. **Code Quality & Best Practices** - Specific improvements for the languages/frameworks used
2. **Security Considerations** - Address any security concerns relevant to the work done
3. **Performance Optimization** - Suggest performance improvements where applicable  
4. **Testing Strategy** - Recommend testing approaches for the current work
5. **Documentation & Maintainability** - Suggest documentation improvements
6. **Architecture & Design** - Propose better patterns or architectural improvements
7. **Tooling & Workflow** - Recommend tools or processes that could help

FORMATTING:
Format as markdown with clear sections. Make suggestions:
- Specific to the actual code and context shown
- Actionable with clear next steps
- Prioritized by impact
- Relevant to the session type and detected technologies

Begin with: "## 🧭 CCGuide Suggestions"
`

// GenerateAdvice produces the suggestion text for a transcript that
// already passed the decision stage. It never returns an empty string:
// a model failure selects a static template instead.
func (a *Advisor) GenerateAdvice(transcript string) string {
	profile := analyzer.AnalyzeDeep(transcript)

	reply, err := a.model.Generate(suggestionPrompt(profile, transcript))
	if err != nil {
		a.logger.Error("suggestion model failed", "error", err)
		return fallbackAdvice(profile)
	}

	text := strings.TrimSpace(reply)
	a.logger.Info("generated suggestions",
		"chars", len(text), "session_type", profile.SessionType)
	return text + adviceFooter(profile)
}

func suggestionPrompt(profile analyzer.Profile, transcript string) string {
	return fmt.Sprintf(suggestionPromptTemplate,
		profile.SessionType,
		listOrNone(profile.Languages),
		listOrNone(profile.Frameworks),
		listOrNone(profile.Tools),
		listOrNone(profile.Patterns),
		listOrNone(profile.Issues),
		transcript)
}

// adviceFooter summarizes the detected session type, languages, and
// frameworks under the generated text. Empty sets contribute nothing.
func adviceFooter(profile analyzer.Profile) string {
	var sb strings.Builder
	sb.WriteString("\n\n---\n*Session Analysis: ")
	sb.WriteString(string(profile.SessionType))
	sb.WriteString("*")
	if len(profile.Languages) > 0 {
		sb.WriteString(" *| Languages: " + strings.Join(profile.Languages, ", ") + "*")
	}
	if len(profile.Frameworks) > 0 {
		sb.WriteString(" *| Frameworks: " + strings.Join(profile.Frameworks, ", ") + "*")
	}
	return sb.String()
}

// fallbackAdvice is the static guidance used when the suggestion model
// is unavailable, worded per session type.
func fallbackAdvice(profile analyzer.Profile) string {
	var sb strings.Builder
	sb.WriteString(adviceHeader)

	switch profile.SessionType {
	case analyzer.SessionBugFixing:
		sb.WriteString("**Bug Fixing Session Detected**\n")
		sb.WriteString("- Consider adding tests to prevent regression\n")
		sb.WriteString("- Document the root cause in comments\n")
		sb.WriteString("- Review error handling around the fix\n\n")
	case analyzer.SessionFeatureDev:
		sb.WriteString("**Feature Development Session Detected**\n")
		sb.WriteString("- Write tests before or alongside implementation\n")
		sb.WriteString("- Consider breaking down large features into smaller components\n")
		sb.WriteString("- Document new functionality\n\n")
	default:
		sb.WriteString("**Development Session Detected**\n")
		sb.WriteString("- Consider adding or updating tests\n")
		sb.WriteString("- Review code for security best practices\n")
		sb.WriteString("- Ensure proper error handling\n\n")
	}

	if len(profile.Languages) > 0 {
		sb.WriteString("**Technologies Used:** " + strings.Join(profile.Languages, ", ") + "\n")
	}

	sb.WriteString("\n*CCGuide AI suggestions temporarily unavailable - using fallback guidance*")
	return sb.String()
}

// listOrNone joins items with commas, or reports "None detected".
func listOrNone(items []string) string {
	if len(items) == 0 {
		return "None detected"
	}
	return strings.Join(items, ", ")
}
