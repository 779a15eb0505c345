package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ccguide/internal/config"
	"github.com/blackwell-systems/ccguide/internal/cooldown"
	"github.com/blackwell-systems/ccguide/internal/history"
	"github.com/blackwell-systems/ccguide/internal/logging"
	"github.com/blackwell-systems/ccguide/internal/output"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and cooldown state",
	Long: `Show whether suggestions are enabled, whether an API key is configured,
and whether the suggestion cooldown is active. Use --verbose for file
locations and the most recent hook run.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// statusOutput is the JSON-serializable result of the status command.
type statusOutput struct {
	Enabled            bool         `json:"enabled"`
	APIKeySet          bool         `json:"api_key_set"`
	InCooldown         bool         `json:"in_cooldown"`
	MinSessionLength   int          `json:"min_session_length"`
	SuggestionCooldown int          `json:"suggestion_cooldown"`
	DecisionModel      string       `json:"decision_model"`
	SuggestionModel    string       `json:"suggestion_model"`
	ConfigFile         string       `json:"config_file"`
	LastModified       string       `json:"last_modified,omitempty"`
	LastRun            *history.Run `json:"last_run,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	output.AutoDetect()
	if flagNoColor {
		output.SetNoColor(true)
	}

	store := cooldown.NewFileStore(config.CooldownPath(), logging.Discard())

	st := statusOutput{
		Enabled:            cfg.EnableSuggestions,
		APIKeySet:          cfg.APIKeySet(),
		InCooldown:         store.InCooldown(cfg.CooldownDuration()),
		MinSessionLength:   cfg.MinSessionLength,
		SuggestionCooldown: cfg.SuggestionCooldown,
		DecisionModel:      cfg.DecisionModel,
		SuggestionModel:    cfg.SuggestionModel,
		ConfigFile:         config.File(),
	}
	if info, err := os.Stat(config.File()); err == nil {
		st.LastModified = info.ModTime().Local().Format("2006-01-02 15:04:05")
	}
	if _, err := os.Stat(config.DBPath()); err == nil {
		if db, err := history.Open(config.DBPath()); err == nil {
			st.LastRun, _ = db.LastRun()
			_ = db.Close()
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	fmt.Println(output.Section("Status"))
	fmt.Println()

	if st.Enabled {
		fmt.Println(output.KeyValue("Suggestions", output.StyleSuccess.Render("enabled")))
	} else {
		fmt.Println(output.KeyValue("Suggestions", output.StyleError.Render("disabled")))
	}

	if st.APIKeySet {
		fmt.Println(output.KeyValue("API key", "set"))
	} else {
		fmt.Println(output.KeyValue("API key", output.StyleWarning.Render("not set")))
	}

	if st.InCooldown {
		fmt.Println(output.KeyValue("Cooldown", output.StyleWarning.Render("active")))
	} else {
		fmt.Println(output.KeyValue("Cooldown", "ready"))
	}

	fmt.Println(output.KeyValue("Min length", fmt.Sprintf("%d chars", st.MinSessionLength)))
	fmt.Println(output.KeyValue("Cooldown period", (time.Duration(st.SuggestionCooldown) * time.Second).String()))
	fmt.Println(output.KeyValue("Models", fmt.Sprintf("%s / %s", st.DecisionModel, st.SuggestionModel)))

	if !st.APIKeySet {
		fmt.Println()
		fmt.Printf("  %s\n", output.StyleMuted.Render("Set an API key with: ccguide config --api-key YOUR_KEY"))
	}

	if flagVerbose {
		fmt.Println(output.Section("Files"))
		fmt.Println()
		fmt.Println(output.KeyValue("Config", st.ConfigFile))
		fmt.Println(output.KeyValue("Cooldown file", config.CooldownPath()))
		fmt.Println(output.KeyValue("Log file", config.LogPath()))
		fmt.Println(output.KeyValue("Database", config.DBPath()))
		if st.LastModified != "" {
			fmt.Println(output.KeyValue("Last modified", st.LastModified))
		}

		if st.LastRun != nil {
			fmt.Println(output.Section("Last Run"))
			fmt.Println()
			fmt.Println(output.KeyValue("Session", truncateID(st.LastRun.SessionID)))
			fmt.Println(output.KeyValue("Time", st.LastRun.CreatedAt.Local().Format("2006-01-02 15:04")))
			fmt.Println(output.KeyValue("Type", st.LastRun.SessionType))
			if st.LastRun.Advised {
				fmt.Println(output.KeyValue("Advised", fmt.Sprintf("yes (%d chars)", st.LastRun.AdviceChars)))
			} else {
				fmt.Println(output.KeyValue("Advised", "no"))
			}
		}
	}

	fmt.Println()
	return nil
}

// truncateID shortens a session UUID for display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
