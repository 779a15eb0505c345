// Package advisor implements the stop-hook advisory pipeline: decide
// whether a finished session deserves unsolicited suggestions, and if so,
// generate them. The pipeline only ever annotates the host session, it
// never blocks it, so every path degrades toward "no suggestion" rather
// than toward an error the host would see.
package advisor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/blackwell-systems/ccguide/internal/config"
	"github.com/blackwell-systems/ccguide/internal/cooldown"
)

// Model is the remote-inference surface the pipeline depends on.
// Classify answers the cheap yes/no decision prompt, Generate produces
// the suggestion prose. gemini.Client implements it; tests substitute
// counting stubs.
type Model interface {
	Classify(prompt string) (string, error)
	Generate(prompt string) (string, error)
}

// Advisor runs the decision and suggestion stages for one session.
type Advisor struct {
	cfg      config.Config
	model    Model
	cooldown cooldown.Store
	logger   *slog.Logger
}

// New returns an Advisor. The API key is the one piece of configuration
// that cannot degrade gracefully, so its absence is the one fatal error.
func New(cfg config.Config, model Model, store cooldown.Store, logger *slog.Logger) (*Advisor, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("GEMINI_API_KEY not found in config or environment")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Advisor{
		cfg:      cfg,
		model:    model,
		cooldown: store,
		logger:   logger,
	}, nil
}

// Result is the JSON document handed back to the host after a run.
// Block is always false: the pipeline annotates sessions, it never
// halts them.
type Result struct {
	Block   bool   `json:"block"`
	Context string `json:"context,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Run executes the full pipeline for one session transcript. It never
// panics past its own boundary: anything unexpected is folded into the
// Error field of an otherwise inert Result.
func (a *Advisor) Run(sessionID, transcriptPath string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("hook handler panicked", "error", r)
			result = Result{Error: fmt.Sprintf("Hook handler failed: %v", r)}
		}
	}()

	a.logger.Info("processing stop hook", "session", sessionID)

	transcript := a.readTranscript(transcriptPath)
	if transcript == "" {
		return Result{}
	}

	if !a.ShouldAdvise(sessionID, transcript) {
		a.logger.Info("no suggestions needed", "session", sessionID)
		return Result{}
	}

	advice := a.GenerateAdvice(transcript)
	if advice == "" {
		return Result{}
	}

	return Result{
		Context: advice,
		Reason:  "CCGuide suggestions available",
	}
}

// readTranscript loads the session transcript. A read failure is
// indistinguishable from an empty session and is treated the same way.
func (a *Advisor) readTranscript(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		a.logger.Error("failed to read transcript", "path", path, "error", err)
		return ""
	}
	a.logger.Info("read transcript", "chars", len(data))
	return string(data)
}
