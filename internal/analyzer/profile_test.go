package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeDeepEmptyTranscript(t *testing.T) {
	t.Parallel()

	p := AnalyzeDeep("")
	assert.Nil(t, p.Languages)
	assert.Nil(t, p.Frameworks)
	assert.Nil(t, p.Tools)
	assert.Nil(t, p.Patterns)
	assert.Nil(t, p.Issues)
	assert.Equal(t, SessionGeneralDev, p.SessionType)
}

func TestAnalyzeDeepLanguages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		transcript string
		want       []string
	}{
		{
			name:       "python via file extension",
			transcript: "edited main.py to add logging",
			want:       []string{"python"},
		},
		{
			name:       "sql via file extension",
			transcript: "applied migrations from schema.sql",
			want:       []string{"sql"},
		},
		{
			// The sql keyword terms are uppercase and the transcript is
			// lowercased first, so a bare query never registers.
			name:       "sql statements alone do not register",
			transcript: "SELECT * FROM users WHERE id = 1",
			want:       nil,
		},
		{
			name:       "multiple languages keep table order",
			transcript: "ported utils.py to helper.rs last week",
			want:       []string{"python", "rust"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, AnalyzeDeep(tt.transcript).Languages)
		})
	}
}

func TestAnalyzeDeepFrameworksKeepTableOrder(t *testing.T) {
	t.Parallel()

	p := AnalyzeDeep("used react with numpy arrays")
	assert.Equal(t, []string{"react", "numpy"}, p.Frameworks)
}

func TestAnalyzeDeepTools(t *testing.T) {
	t.Parallel()

	p := AnalyzeDeep("ran docker-compose up and kubectl apply")
	assert.Equal(t, []string{"docker", "kubernetes"}, p.Tools)
}

func TestAnalyzeDeepPatternsNeedTwoHits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		transcript string
		want       []string
	}{
		{
			name:       "single term is not enough",
			transcript: "the api is slow",
			want:       nil,
		},
		{
			name:       "two distinct terms register",
			transcript: "hit the api endpoint",
			want:       []string{"api_development"},
		},
		{
			name:       "same term twice still counts once",
			transcript: "api api api",
			want:       nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, AnalyzeDeep(tt.transcript).Patterns)
		})
	}
}

func TestAnalyzeDeepIssues(t *testing.T) {
	t.Parallel()

	p := AnalyzeDeep(`the config had password = "hunter2" committed`)
	assert.Equal(t, []string{"hardcoded_credentials"}, p.Issues)
}

func TestAnalyzeDeepSessionTypeMatchesClassifier(t *testing.T) {
	t.Parallel()

	transcript := "debugging the flaky startup error"
	assert.Equal(t, ClassifySessionType(transcript), AnalyzeDeep(transcript).SessionType)
}

func TestAnalyzeDeepIsDeterministic(t *testing.T) {
	t.Parallel()

	transcript := "applied migrations from schema.sql after the api endpoint review"
	first := AnalyzeDeep(transcript)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AnalyzeDeep(transcript))
	}
}
