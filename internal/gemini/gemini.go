// Package gemini is a minimal client for the Gemini generateContent API.
// It speaks plain net/http and sends exactly one request per call; retry
// policy belongs to the caller.
package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	apiTimeout     = 60 * time.Second
)

// Client calls the generateContent endpoint with a fixed pair of models:
// a small fast one for yes/no classification and a larger one for prose.
type Client struct {
	baseURL         string
	apiKey          string
	decisionModel   string
	suggestionModel string
	httpClient      *http.Client
}

// New returns a Client. An empty baseURL selects the public Gemini
// endpoint; tests point it at a local server.
func New(baseURL, apiKey, decisionModel, suggestionModel string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:         baseURL,
		apiKey:          apiKey,
		decisionModel:   decisionModel,
		suggestionModel: suggestionModel,
		httpClient:      &http.Client{Timeout: apiTimeout},
	}
}

// Classify sends prompt to the decision model and returns the raw reply.
func (c *Client) Classify(prompt string) (string, error) {
	return c.generate(c.decisionModel, prompt)
}

// Generate sends prompt to the suggestion model and returns the raw reply.
func (c *Client) Generate(prompt string) (string, error) {
	return c.generate(c.suggestionModel, prompt)
}

// generateRequest is the request body for the generateContent API.
type generateRequest struct {
	Contents []content `json:"contents"`
}

// content is a single turn in the generateContent request or response.
type content struct {
	Parts []part `json:"parts"`
}

// part is one text fragment inside a content turn.
type part struct {
	Text string `json:"text"`
}

// generateResponse is the response body from the generateContent API.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error,omitempty"`
}

// candidate is a single generated completion.
type candidate struct {
	Content content `json:"content"`
}

// apiError represents an error payload from the Gemini API.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// generate sends one prompt to one model and returns the joined text of
// the first candidate.
func (c *Client) generate(model, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequest("POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d: %.200s", resp.StatusCode, respBytes)
	}

	var apiResp generateResponse
	if err := json.Unmarshal(respBytes, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshaling response: %w", err)
	}

	if apiResp.Error != nil {
		return "", fmt.Errorf("API error %s: %s", apiResp.Error.Status, apiResp.Error.Message)
	}

	if len(apiResp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in API response")
	}

	var sb strings.Builder
	for _, p := range apiResp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in API response")
	}

	return sb.String(), nil
}
