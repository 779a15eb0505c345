package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ccguide/internal/advisor"
	"github.com/blackwell-systems/ccguide/internal/analyzer"
	"github.com/blackwell-systems/ccguide/internal/config"
	"github.com/blackwell-systems/ccguide/internal/cooldown"
	"github.com/blackwell-systems/ccguide/internal/gemini"
	"github.com/blackwell-systems/ccguide/internal/history"
	"github.com/blackwell-systems/ccguide/internal/logging"
)

// maxHookStdinBytes caps stdin reads. Hook payloads are small JSON objects;
// 1 MB is generous headroom that prevents unbounded allocation.
const maxHookStdinBytes = 1 << 20

// hookInput is the JSON Claude Code sends on stdin to Stop hooks.
type hookInput struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	HookEventName  string `json:"hook_event_name"`
	StopHookActive bool   `json:"stop_hook_active"`
	CWD            string `json:"cwd"`
}

var hookCmd = &cobra.Command{
	Use:   "hook [session-id] [transcript-path]",
	Short: "Stop hook handler invoked by Claude Code",
	Long: `Reads the Stop hook payload from stdin (Claude Code provides session_id
and transcript_path), runs the suggestion pipeline, and writes the result
JSON to stdout. SESSION_ID and TRANSCRIPT_PATH environment variables or
positional arguments override the payload for manual invocation.

The hook always exits 0: a guidance failure must never block the session.`,
	Hidden:        true,
	Args:          cobra.MaximumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runHook,
}

func init() {
	rootCmd.AddCommand(hookCmd)
}

func runHook(cmd *cobra.Command, args []string) error {
	input := readHookInput()

	// Claude Code sets stop_hook_active when the session is already
	// continuing because of a previous Stop hook. Bail out immediately
	// or the hook would feed itself.
	if input.StopHookActive {
		emitResult(advisor.Result{})
		return nil
	}

	sessionID, transcriptPath := resolveSession(input, args)
	if transcriptPath == "" {
		emitResult(advisor.Result{Error: "No transcript path provided"})
		return nil
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		emitResult(advisor.Result{Error: fmt.Sprintf("Hook handler failed: %v", err)})
		return nil
	}

	logger, closeLog := logging.Open(config.LogPath(), cfg.LogLevel)
	defer closeLog()
	if cfg.Warning != "" {
		logger.Warn("config load", "warning", cfg.Warning)
	}

	model := gemini.New("", cfg.GeminiAPIKey, cfg.DecisionModel, cfg.SuggestionModel)
	store := cooldown.NewFileStore(config.CooldownPath(), logger)

	adv, err := advisor.New(*cfg, model, store, logger)
	if err != nil {
		logger.Error("hook handler failed", "error", err)
		result := advisor.Result{Error: fmt.Sprintf("Hook handler failed: %v", err)}
		recordRun(logger, sessionID, transcriptPath, result)
		emitResult(result)
		return nil
	}

	result := adv.Run(sessionID, transcriptPath)
	recordRun(logger, sessionID, transcriptPath, result)
	emitResult(result)
	return nil
}

// readHookInput reads the hook payload from stdin. An interactive terminal
// means a manual invocation with no payload; env vars and arguments carry
// the session then. Malformed payloads degrade to an empty input rather
// than failing the hook.
func readHookInput() hookInput {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return hookInput{}
	}

	data, err := io.ReadAll(io.LimitReader(os.Stdin, maxHookStdinBytes))
	if err != nil || len(data) == 0 {
		return hookInput{}
	}

	var input hookInput
	_ = json.Unmarshal(data, &input)
	return input
}

// resolveSession merges the stdin payload with environment variables and
// positional arguments. The payload wins, then SESSION_ID/TRANSCRIPT_PATH,
// then the arguments. A session without an ID is "unknown".
func resolveSession(input hookInput, args []string) (sessionID, transcriptPath string) {
	sessionID = input.SessionID
	if sessionID == "" {
		sessionID = os.Getenv("SESSION_ID")
	}
	if sessionID == "" && len(args) > 0 {
		sessionID = args[0]
	}
	if sessionID == "" {
		sessionID = "unknown"
	}

	transcriptPath = input.TranscriptPath
	if transcriptPath == "" {
		transcriptPath = os.Getenv("TRANSCRIPT_PATH")
	}
	if transcriptPath == "" && len(args) > 1 {
		transcriptPath = args[1]
	}
	return sessionID, transcriptPath
}

// emitResult writes the hook result JSON to stdout. Stdout carries nothing
// else: Claude Code parses it directly. A failed write has nowhere useful
// to go; the hook exits 0 regardless.
func emitResult(result advisor.Result) {
	_ = json.NewEncoder(os.Stdout).Encode(result)
}

// recordRun appends the run outcome to the local history database. History
// is best effort: failures are logged and never change the hook result.
func recordRun(logger *slog.Logger, sessionID, transcriptPath string, result advisor.Result) {
	db, err := history.Open(config.DBPath())
	if err != nil {
		logger.Warn("history unavailable", "error", err)
		return
	}
	defer db.Close()

	var transcript string
	if data, err := os.ReadFile(transcriptPath); err == nil {
		transcript = string(data)
	}

	run := history.Run{
		SessionID:       sessionID,
		TranscriptChars: len(transcript),
		SessionType:     string(analyzer.ClassifySessionType(transcript)),
		Advised:         result.Context != "",
		AdviceChars:     len(result.Context),
		Error:           result.Error,
	}
	if err := db.RecordRun(&run); err != nil {
		logger.Warn("history record failed", "error", err)
	}
}
