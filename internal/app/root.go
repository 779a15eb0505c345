// Package app contains the Cobra command tree for ccguide.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "ccguide",
	Short: "AI-powered session guidance for Claude Code",
	Long: `ccguide reviews Claude Code sessions as they end and decides, via a
two-stage Gemini pipeline, whether the session deserves improvement
suggestions. It runs as a Stop hook: Claude Code invokes 'ccguide hook'
when a session finishes, and any generated guidance is returned to the
session as additional context.

Run 'ccguide' with no arguments to see the available commands. Use
'ccguide hooks' to print the settings snippet that registers the hook.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("ccguide", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  status    Show configuration and cooldown state")
		fmt.Println("  enable    Turn session suggestions on")
		fmt.Println("  disable   Turn session suggestions off")
		fmt.Println("  toggle    Flip session suggestions on or off")
		fmt.Println("  config    Change settings in the config file")
		fmt.Println("  test      Run the offline analyzer against a transcript")
		fmt.Println("  history   Show recent hook runs")
		fmt.Println("  logs      Show recent log entries")
		fmt.Println("  doctor    Check installation health")
		fmt.Println("  hooks     Print the Claude Code hook registration snippet")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.ccguide/config.json)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
