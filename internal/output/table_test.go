package output

import (
	"strings"
	"testing"
)

func TestVisualLen_PlainText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"abc def", 7},
	}

	for _, tc := range tests {
		got := visualLen(tc.input)
		if got != tc.want {
			t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestVisualLen_StripsANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "bold",
			input: "\x1b[1mhello\x1b[0m",
			want:  5,
		},
		{
			name:  "color",
			input: "\x1b[31mred\x1b[0m",
			want:  3,
		},
		{
			name:  "multiple sequences",
			input: "\x1b[1m\x1b[34mblue bold\x1b[0m",
			want:  9,
		},
		{
			name:  "no ansi",
			input: "plain text",
			want:  10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := visualLen(tc.input)
			if got != tc.want {
				t.Errorf("visualLen() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int // expected visible length of output
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7}, // no truncation
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if visualLen(got) != tc.want {
				t.Errorf("pad(%q, %d) visible len = %d, want %d", tc.input, tc.width, visualLen(got), tc.want)
			}
		})
	}
}

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Session", "Advised")
	tbl.AddRow("abc123", "yes")
	tbl.AddRow("def456", "no")

	output := tbl.Render()

	if !strings.Contains(output, "Session") {
		t.Error("expected header 'Session' in output")
	}
	if !strings.Contains(output, "Advised") {
		t.Error("expected header 'Advised' in output")
	}
	if !strings.Contains(output, "abc123") {
		t.Error("expected 'abc123' in output")
	}
	if !strings.Contains(output, "def456") {
		t.Error("expected 'def456' in output")
	}
	if !strings.Contains(output, "─") {
		t.Error("expected separator character in output")
	}

	// Header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_StyledCellsAlign(t *testing.T) {
	tbl := NewTable("A", "B")
	tbl.AddRow("\x1b[32myes\x1b[0m", "x")
	tbl.AddRow("no", "y")

	// Column width is driven by visible length, so the styled "yes" (3
	// visible chars) sets the width, not its byte length.
	if tbl.widths[0] != 3 {
		t.Errorf("expected column width 3, got %d", tbl.widths[0])
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	output := tbl.Render()
	if output != "" {
		t.Errorf("expected empty output for empty table, got %q", output)
	}
}

func TestTable_ColumnWidths(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A", "LongHeader")
	tbl.AddRow("VeryLongValue", "X")

	output := tbl.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}

	dataLine := lines[2]
	if !strings.Contains(dataLine, "VeryLongValue") {
		t.Error("expected data row to contain 'VeryLongValue'")
	}
}

func TestTable_String(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Col1")
	tbl.AddRow("Val1")

	if tbl.String() != tbl.Render() {
		t.Error("String() != Render()")
	}
}

func TestBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		name          string
		value, max    int
		width         int
		wantFilled    int
		wantRemainder int
	}{
		{"full", 5, 5, 5, 5, 0},
		{"four of five", 4, 5, 5, 4, 1},
		{"zero", 0, 5, 5, 0, 5},
		{"clamped above", 9, 5, 5, 5, 0},
		{"clamped below", -1, 5, 5, 0, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Bar(tc.value, tc.max, tc.width)
			if n := strings.Count(got, "█"); n != tc.wantFilled {
				t.Errorf("Bar() filled = %d, want %d (output %q)", n, tc.wantFilled, got)
			}
			if n := strings.Count(got, "░"); n != tc.wantRemainder {
				t.Errorf("Bar() remainder = %d, want %d (output %q)", n, tc.wantRemainder, got)
			}
		})
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	rendered := StyleHeader.Render("test")
	if strings.Contains(rendered, "\x1b[") {
		t.Error("expected no ANSI codes after SetNoColor(true)")
	}
	SetNoColor(false)
}
