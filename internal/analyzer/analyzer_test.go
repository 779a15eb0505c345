package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeEmptyTranscript(t *testing.T) {
	t.Parallel()

	for _, transcript := range []string{"", "   \n\t  "} {
		f := Analyze(transcript)
		assert.Equal(t, len(transcript), f.Length)
		assert.False(t, f.HasCode)
		assert.False(t, f.HasErrors)
		assert.False(t, f.HasTesting)
		assert.False(t, f.HasGit)
		assert.Zero(t, f.ComplexityIndicators)
	}
}

func TestAnalyzeKeywordFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		transcript string
		check      func(t *testing.T, f Features)
	}{
		{
			name:       "code via def",
			transcript: "here is def calculate(): pass",
			check:      func(t *testing.T, f Features) { assert.True(t, f.HasCode) },
		},
		{
			name:       "code is case-insensitive",
			transcript: "a JavaScript Function declaration",
			check:      func(t *testing.T, f Features) { assert.True(t, f.HasCode) },
		},
		{
			name:       "def without trailing space is not code",
			transcript: "the word undefined appears",
			check:      func(t *testing.T, f Features) { assert.False(t, f.HasCode) },
		},
		{
			name:       "errors via traceback",
			transcript: "Traceback (most recent call last):",
			check:      func(t *testing.T, f Features) { assert.True(t, f.HasErrors) },
		},
		{
			name:       "testing via jest",
			transcript: "ran the jest suite",
			check:      func(t *testing.T, f Features) { assert.True(t, f.HasTesting) },
		},
		{
			name:       "git via commit",
			transcript: "made a commit",
			check:      func(t *testing.T, f Features) { assert.True(t, f.HasGit) },
		},
		{
			name:       "git keyword needs trailing space",
			transcript: "gitignore mentioned",
			check:      func(t *testing.T, f Features) { assert.False(t, f.HasGit) },
		},
		{
			name:       "plain prose has nothing",
			transcript: "we talked about the weather",
			check: func(t *testing.T, f Features) {
				assert.False(t, f.HasCode)
				assert.False(t, f.HasErrors)
				assert.False(t, f.HasTesting)
				assert.False(t, f.HasGit)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, Analyze(tt.transcript))
		})
	}
}

func TestComplexityIndicatorsCountWholeWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		transcript string
		want       int
	}{
		{"none", "clean code throughout", 0},
		{"single todo", "one todo remains", 1},
		{"mixed case counts", "TODO and FIXME and hack", 3},
		{"repeated words all count", "todo todo todo", 3},
		{"substring does not count", "todos and hacky and temperature", 0},
		{"punctuated word does not count", "todo: finish this", 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Analyze(tt.transcript).ComplexityIndicators)
		})
	}
}

func TestAnalyzeLength(t *testing.T) {
	t.Parallel()

	transcript := strings.Repeat("a", 50)
	assert.Equal(t, 50, Analyze(transcript).Length)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	t.Parallel()

	transcript := "def main(): pass  # todo fix the error in the test before git push"
	first := Analyze(transcript)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Analyze(transcript))
	}
}
