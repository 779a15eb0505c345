package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/ccguide/internal/config"
	"github.com/blackwell-systems/ccguide/internal/gemini"
	"github.com/blackwell-systems/ccguide/internal/history"
	"github.com/blackwell-systems/ccguide/internal/output"
)

var doctorAPI bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the ccguide setup is healthy",
	Long: `Run a series of health checks against the ccguide configuration and the
Claude Code hook registration. Prints a pass/fail line for each check and
a summary of how many checks passed.

With --api, also probes the configured Gemini models. That makes two
small API calls.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorAPI, "api", false, "Probe the configured Gemini models (makes API calls)")
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// doctorOutput is the JSON-serializable result of the doctor command.
type doctorOutput struct {
	Checks      []doctorCheck `json:"checks"`
	PassedCount int           `json:"passed"`
	TotalCount  int           `json:"total"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	output.AutoDetect()
	if flagNoColor {
		output.SetNoColor(true)
	}

	var checks []doctorCheck

	// 1. Config file: exists and parsed cleanly.
	checks = append(checks, checkConfigFile(cfg.Warning))

	// 2. Config directory: writable, the hook stores its state there.
	checks = append(checks, checkConfigDir())

	// 3. API key: present in config or environment.
	checks = append(checks, checkAPIKey(cfg))

	// 4. Suggestions: enabled in config.
	checks = append(checks, checkSuggestionsEnabled(cfg))

	// 5. Cooldown marker: absent or a valid timestamp.
	checks = append(checks, checkCooldown())

	// 6. History database: opens and answers a count query.
	checks = append(checks, checkDatabase())

	// 7. Hook registration: ccguide appears in the Stop hooks.
	checks = append(checks, checkHookRegistered())

	// 8. Live model probes, only on request.
	if doctorAPI {
		if cfg.APIKeySet() {
			checks = append(checks, checkModels(cfg)...)
		} else {
			checks = append(checks, doctorCheck{
				Name:    "Live API probe",
				Passed:  false,
				Message: "skipped: no API key configured",
			})
		}
	}

	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}

	if flagJSON {
		out := doctorOutput{
			Checks:      checks,
			PassedCount: passed,
			TotalCount:  len(checks),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println(output.Section("Doctor"))
	fmt.Println()

	for _, c := range checks {
		renderDoctorCheck(c)
	}

	fmt.Println()
	summary := fmt.Sprintf("%d/%d checks passed", passed, len(checks))
	if passed == len(checks) {
		fmt.Printf(" %s\n\n", output.StyleSuccess.Render(summary))
	} else {
		fmt.Printf(" %s\n\n", output.StyleWarning.Render(summary))
	}

	return nil
}

// renderDoctorCheck prints a single check result line.
func renderDoctorCheck(c doctorCheck) {
	var indicator string
	if c.Passed {
		indicator = output.StyleSuccess.Render("✓")
	} else {
		indicator = output.StyleWarning.Render("✗")
	}
	label := output.StyleBold.Render(c.Name)
	detail := output.StyleMuted.Render(c.Message)
	fmt.Printf("  %s  %-30s %s\n", indicator, label, detail)
}

// checkConfigFile verifies the config file exists and parsed without
// warnings. The hook runs fine on defaults, but a missing file usually
// means setup never happened.
func checkConfigFile(warning string) doctorCheck {
	path := config.File()
	if _, err := os.Stat(path); err != nil {
		return doctorCheck{
			Name:    "Config file",
			Passed:  false,
			Message: fmt.Sprintf("not found at %s (run 'ccguide enable' to create)", path),
		}
	}
	if warning != "" {
		return doctorCheck{
			Name:    "Config file",
			Passed:  false,
			Message: warning,
		}
	}
	return doctorCheck{
		Name:    "Config file",
		Passed:  true,
		Message: path,
	}
}

// checkConfigDir verifies the config directory can be created and written.
// The hook needs it for the cooldown marker, the log, and the database.
func checkConfigDir() doctorCheck {
	dir := config.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return doctorCheck{
			Name:    "Config directory",
			Passed:  false,
			Message: fmt.Sprintf("cannot create: %v", err),
		}
	}
	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return doctorCheck{
			Name:    "Config directory",
			Passed:  false,
			Message: fmt.Sprintf("not writable: %v", err),
		}
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return doctorCheck{
		Name:    "Config directory",
		Passed:  true,
		Message: dir,
	}
}

// checkAPIKey verifies a Gemini API key is configured.
func checkAPIKey(cfg *config.Config) doctorCheck {
	if !cfg.APIKeySet() {
		return doctorCheck{
			Name:    "Gemini API key",
			Passed:  false,
			Message: "not set (set with 'ccguide config --api-key')",
		}
	}
	key := strings.TrimSpace(cfg.GeminiAPIKey)
	// Show only the first few characters for security.
	masked := key[:min(8, len(key))] + "..."
	return doctorCheck{
		Name:    "Gemini API key",
		Passed:  true,
		Message: fmt.Sprintf("set (%s)", masked),
	}
}

// checkSuggestionsEnabled reports whether the pipeline is switched on.
func checkSuggestionsEnabled(cfg *config.Config) doctorCheck {
	if !cfg.EnableSuggestions {
		return doctorCheck{
			Name:    "Suggestions",
			Passed:  false,
			Message: "disabled (enable with 'ccguide enable')",
		}
	}
	return doctorCheck{
		Name:    "Suggestions",
		Passed:  true,
		Message: "enabled",
	}
}

// checkCooldown verifies the cooldown marker is absent or holds a valid
// timestamp.
func checkCooldown() doctorCheck {
	path := config.CooldownPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return doctorCheck{
			Name:    "Cooldown marker",
			Passed:  true,
			Message: "no suggestion recorded yet",
		}
	}
	if err != nil {
		return doctorCheck{
			Name:    "Cooldown marker",
			Passed:  false,
			Message: fmt.Sprintf("unreadable: %v", err),
		}
	}
	stamp, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return doctorCheck{
			Name:    "Cooldown marker",
			Passed:  false,
			Message: fmt.Sprintf("malformed timestamp in %s", path),
		}
	}
	last := time.Unix(int64(stamp), 0)
	return doctorCheck{
		Name:    "Cooldown marker",
		Passed:  true,
		Message: fmt.Sprintf("last suggestion %s", last.Local().Format("2006-01-02 15:04")),
	}
}

// checkDatabase verifies the history database opens and answers a query.
func checkDatabase() doctorCheck {
	path := config.DBPath()
	if _, err := os.Stat(path); err != nil {
		return doctorCheck{
			Name:    "History database",
			Passed:  false,
			Message: fmt.Sprintf("not found at %s (created on first hook run)", path),
		}
	}
	db, err := history.Open(path)
	if err != nil {
		return doctorCheck{
			Name:    "History database",
			Passed:  false,
			Message: fmt.Sprintf("cannot open: %v", err),
		}
	}
	defer func() { _ = db.Close() }()

	count, err := db.CountRuns()
	if err != nil {
		return doctorCheck{
			Name:    "History database",
			Passed:  false,
			Message: fmt.Sprintf("query failed: %v", err),
		}
	}
	return doctorCheck{
		Name:    "History database",
		Passed:  true,
		Message: fmt.Sprintf("%d runs recorded", count),
	}
}

// checkHookRegistered looks for a ccguide command in the Stop hooks of
// Claude Code's settings.json.
func checkHookRegistered() doctorCheck {
	path := claudeSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return doctorCheck{
			Name:    "Hook registration",
			Passed:  false,
			Message: "settings.json not found (run 'ccguide hooks' for the snippet)",
		}
	}
	var settings hookSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return doctorCheck{
			Name:    "Hook registration",
			Passed:  false,
			Message: fmt.Sprintf("settings.json unreadable: %v", err),
		}
	}
	for _, group := range settings.Hooks["Stop"] {
		for _, h := range group.Hooks {
			if h.Type == "command" && strings.Contains(h.Command, "ccguide") {
				return doctorCheck{
					Name:    "Hook registration",
					Passed:  true,
					Message: "Stop hook registered",
				}
			}
		}
	}
	return doctorCheck{
		Name:    "Hook registration",
		Passed:  false,
		Message: "no Stop hook found (run 'ccguide hooks' for the snippet)",
	}
}

// checkModels probes both configured models with a one-word prompt. The
// probes run concurrently; each costs one small API call.
func checkModels(cfg *config.Config) []doctorCheck {
	client := gemini.New("", cfg.GeminiAPIKey, cfg.DecisionModel, cfg.SuggestionModel)

	checks := make([]doctorCheck, 2)
	var g errgroup.Group
	g.Go(func() error {
		checks[0] = probeModel("Decision model", cfg.DecisionModel, client.Classify)
		return nil
	})
	g.Go(func() error {
		checks[1] = probeModel("Suggestion model", cfg.SuggestionModel, client.Generate)
		return nil
	})
	_ = g.Wait()
	return checks
}

// probeModel sends a trivial prompt and reports whether the model answered.
func probeModel(name, model string, call func(string) (string, error)) doctorCheck {
	_, err := call(`Reply with the single word "OK".`)
	if err != nil {
		msg := err.Error()
		if len(msg) > 60 {
			msg = msg[:60] + "..."
		}
		return doctorCheck{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("%s: %s", model, msg),
		}
	}
	return doctorCheck{
		Name:    name,
		Passed:  true,
		Message: fmt.Sprintf("%s responded", model),
	}
}
