package output

import (
	"fmt"
	"regexp"
	"strings"
)

// Table is a simple styled table renderer. Cells may contain lipgloss-styled
// text; column widths are computed from visible length, not byte length.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = visualLen(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row of values to the table. Extra values are dropped,
// missing values render empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
		}
		if w := visualLen(row[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// Render returns the formatted table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder

	for i, h := range t.headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(StyleHeader.Render(pad(h, t.widths[i])))
	}
	sb.WriteString("\n")

	for i, w := range t.widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(StyleMuted.Render(strings.Repeat("─", w)))
	}
	sb.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(pad(cell, t.widths[i]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Print writes the table to stdout.
func (t *Table) Print() {
	fmt.Print(t.Render())
}

// ansiPattern matches CSI escape sequences emitted by lipgloss.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// visualLen returns the number of visible characters in s, ignoring ANSI
// styling sequences.
func visualLen(s string) int {
	if strings.Contains(s, "\x1b") {
		s = ansiPattern.ReplaceAllString(s, "")
	}
	return len([]rune(s))
}

// pad right-pads a string to the given visible width. Strings already at or
// over the width are returned unchanged; cells are never truncated.
func pad(s string, width int) string {
	gap := width - visualLen(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
