package output

import (
	"fmt"
	"strings"
)

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 44))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// Bar renders value out of max as a filled bar, colored by how full it is.
// Example: "████░ 4/5". Used for the offline decision score in self tests.
func Bar(value, max, width int) string {
	if max <= 0 {
		max = 1
	}
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}
	if width <= 0 {
		width = max
	}

	filled := value * width / max
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	ratio := float64(value) / float64(max)
	var styled string
	switch {
	case ratio >= 0.7:
		styled = StyleSuccess.Render(bar)
	case ratio >= 0.4:
		styled = StyleWarning.Render(bar)
	default:
		styled = StyleError.Render(bar)
	}

	return fmt.Sprintf("%s %s", styled, StyleMuted.Render(fmt.Sprintf("%d/%d", value, max)))
}

// KeyValue renders an aligned "label  value" line for status-style output.
func KeyValue(label, value string) string {
	return fmt.Sprintf("  %s %s", StyleLabel.Render(label), value)
}
