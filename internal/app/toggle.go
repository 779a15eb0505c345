package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ccguide/internal/config"
	"github.com/blackwell-systems/ccguide/internal/output"
)

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn session suggestions on",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setSuggestions(true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn session suggestions off",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setSuggestions(false)
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip session suggestions on or off",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return setSuggestions(!cfg.EnableSuggestions)
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(toggleCmd)
}

// setSuggestions writes the enable_suggestions flag to the config file,
// creating the file with defaults if it does not exist yet. Setting the
// current state again is a no-op.
func setSuggestions(enable bool) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	output.AutoDetect()
	if flagNoColor {
		output.SetNoColor(true)
	}

	if cfg.EnableSuggestions == enable {
		if enable {
			fmt.Println("Suggestions are already enabled")
		} else {
			fmt.Println("Suggestions are already disabled")
		}
		return nil
	}

	cfg.EnableSuggestions = enable
	if err := config.Save(cfg, flagConfig); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if enable {
		fmt.Println(output.StyleSuccess.Render("Suggestions enabled"))
		fmt.Println("Guidance will be offered after qualifying Claude Code sessions")
		if !cfg.APIKeySet() {
			fmt.Println()
			fmt.Println(output.StyleWarning.Render("Warning: Gemini API key not configured"))
			fmt.Println("Set it with: ccguide config --api-key YOUR_KEY")
		}
	} else {
		fmt.Println(output.StyleSuccess.Render("Suggestions disabled"))
		fmt.Println("No guidance will be offered until re-enabled")
	}

	return nil
}
