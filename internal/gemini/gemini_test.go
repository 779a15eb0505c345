package gemini

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer returns a server recording the last request and a client
// pointed at it.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, New(srv.URL, "test-key", "decision-model", "suggestion-model")
}

func candidateResponse(texts ...string) generateResponse {
	var parts []part
	for _, text := range texts {
		parts = append(parts, part{Text: text})
	}
	return generateResponse{
		Candidates: []candidate{{Content: content{Parts: parts}}},
	}
}

func TestClassifyRequestShape(t *testing.T) {
	var gotPath, gotKey, gotContentType string
	var gotBody generateRequest

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		require.NoError(t, json.NewEncoder(w).Encode(candidateResponse("YES")))
	})

	reply, err := client.Classify("should we advise?")
	require.NoError(t, err)
	assert.Equal(t, "YES", reply)
	assert.Equal(t, "/models/decision-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "application/json", gotContentType)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "should we advise?", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateUsesSuggestionModel(t *testing.T) {
	var gotPath string

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewEncoder(w).Encode(candidateResponse("some advice")))
	})

	reply, err := client.Generate("write suggestions")
	require.NoError(t, err)
	assert.Equal(t, "some advice", reply)
	assert.Equal(t, "/models/suggestion-model:generateContent", gotPath)
}

func TestGenerateJoinsParts(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(candidateResponse("first", " second")))
	})

	reply, err := client.Generate("prompt")
	require.NoError(t, err)
	assert.Equal(t, "first second", reply)
}

func TestGenerateNon200Status(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})

	_, err := client.Generate("prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateErrorPayload(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		resp := generateResponse{
			Error: &apiError{Code: 400, Message: "API key not valid", Status: "INVALID_ARGUMENT"},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	_, err := client.Generate("prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_ARGUMENT")
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGenerateNoCandidates(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(generateResponse{}))
	})

	_, err := client.Generate("prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGenerateEmptyParts(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		resp := generateResponse{Candidates: []candidate{{Content: content{}}}}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})

	_, err := client.Generate("prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text content")
}

func TestGenerateConnectionFailure(t *testing.T) {
	srv, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.Generate("prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending request")
}

func TestNewDefaultsBaseURL(t *testing.T) {
	client := New("", "key", "d", "s")
	assert.Equal(t, defaultBaseURL, client.baseURL)
}
