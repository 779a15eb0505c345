package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ccguide/internal/config"
	"github.com/blackwell-systems/ccguide/internal/output"
)

var (
	configAPIKey          string
	configCooldown        int
	configMinLength       int
	configDecisionModel   string
	configSuggestionModel string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Change settings in the config file",
	Long: `Update individual settings in the config file. Only flags that are
given are changed; everything else keeps its current value.

Examples:
  ccguide config --api-key AIza...
  ccguide config --cooldown 600
  ccguide config --min-length 200
  ccguide config --suggestion-model gemini-2.5-pro`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&configAPIKey, "api-key", "", "Set the Gemini API key")
	configCmd.Flags().IntVar(&configCooldown, "cooldown", 0, "Set the suggestion cooldown in seconds")
	configCmd.Flags().IntVar(&configMinLength, "min-length", 0, "Set the minimum session length in characters")
	configCmd.Flags().StringVar(&configDecisionModel, "decision-model", "", "Set the decision model")
	configCmd.Flags().StringVar(&configSuggestionModel, "suggestion-model", "", "Set the suggestion model")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	output.AutoDetect()
	if flagNoColor {
		output.SetNoColor(true)
	}

	changed := false

	if cmd.Flags().Changed("api-key") {
		if strings.TrimSpace(configAPIKey) != "" {
			cfg.GeminiAPIKey = strings.TrimSpace(configAPIKey)
			fmt.Println("API key updated")
			changed = true
		} else {
			fmt.Println(output.StyleWarning.Render("Ignoring blank API key"))
		}
	}

	if cmd.Flags().Changed("cooldown") {
		if configCooldown >= 0 {
			cfg.SuggestionCooldown = configCooldown
			fmt.Printf("Cooldown set to %d seconds\n", configCooldown)
			changed = true
		} else {
			fmt.Println(output.StyleWarning.Render("Cooldown must be >= 0"))
		}
	}

	if cmd.Flags().Changed("min-length") {
		if configMinLength >= 0 {
			cfg.MinSessionLength = configMinLength
			fmt.Printf("Minimum session length set to %d characters\n", configMinLength)
			changed = true
		} else {
			fmt.Println(output.StyleWarning.Render("Minimum session length must be >= 0"))
		}
	}

	if cmd.Flags().Changed("decision-model") {
		if strings.TrimSpace(configDecisionModel) != "" {
			cfg.DecisionModel = strings.TrimSpace(configDecisionModel)
			fmt.Printf("Decision model set to %s\n", cfg.DecisionModel)
			changed = true
		} else {
			fmt.Println(output.StyleWarning.Render("Ignoring blank decision model"))
		}
	}

	if cmd.Flags().Changed("suggestion-model") {
		if strings.TrimSpace(configSuggestionModel) != "" {
			cfg.SuggestionModel = strings.TrimSpace(configSuggestionModel)
			fmt.Printf("Suggestion model set to %s\n", cfg.SuggestionModel)
			changed = true
		} else {
			fmt.Println(output.StyleWarning.Render("Ignoring blank suggestion model"))
		}
	}

	if !changed {
		fmt.Println("No changes made. Run 'ccguide status' to see current settings.")
		return nil
	}

	if err := config.Save(cfg, flagConfig); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Println(output.StyleSuccess.Render("Configuration saved"))

	return nil
}
