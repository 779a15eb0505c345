package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ccguide/internal/output"
)

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Print the Claude Code hook registration snippet",
	Long: `Print the JSON snippet that registers ccguide as a Stop hook in Claude
Code's settings.json. The command path points at the current binary.`,
	RunE: runHooks,
}

func init() {
	rootCmd.AddCommand(hooksCmd)
}

// hookSettings mirrors the hooks section of Claude Code's settings.json.
type hookSettings struct {
	Hooks map[string][]hookGroup `json:"hooks"`
}

type hookGroup struct {
	Matcher string     `json:"matcher,omitempty"`
	Hooks   []hookSpec `json:"hooks"`
}

type hookSpec struct {
	Type    string `json:"type"`
	Command string `json:"command"`
}

func runHooks(cmd *cobra.Command, args []string) error {
	output.AutoDetect()
	if flagNoColor {
		output.SetNoColor(true)
	}

	exe, err := os.Executable()
	if err != nil || exe == "" {
		exe = "ccguide"
	}

	snippet := hookSettings{
		Hooks: map[string][]hookGroup{
			"Stop": {{
				Hooks: []hookSpec{{
					Type:    "command",
					Command: exe + " hook",
				}},
			}},
		},
	}

	data, err := json.MarshalIndent(snippet, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding hooks config: %w", err)
	}

	fmt.Println(output.Section("Claude Code Hook Registration"))
	fmt.Println()
	fmt.Printf("Merge this into %s:\n\n", claudeSettingsPath())
	fmt.Println(string(data))
	fmt.Println()
	fmt.Println("Claude Code runs the Stop hook when a session ends; ccguide reads")
	fmt.Println("the transcript and replies with guidance when the session warrants")
	fmt.Println("it. Verify the registration with 'ccguide doctor'.")

	return nil
}

// claudeSettingsPath returns the global Claude Code settings file.
func claudeSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join("~", ".claude", "settings.json")
	}
	return filepath.Join(home, ".claude", "settings.json")
}
