package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ccguide/internal/config"
	"github.com/blackwell-systems/ccguide/internal/output"
)

var logsLines int

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show recent log entries",
	Long: `Print the tail of the hook's log file. The hook writes everything it
does there, so this is the first place to look when suggestions are not
showing up.`,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 20, "Number of log lines to show")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, args []string) error {
	output.AutoDetect()
	if flagNoColor {
		output.SetNoColor(true)
	}

	path := config.LogPath()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fmt.Println("No logs found")
		fmt.Printf("  %s\n", output.StyleMuted.Render(path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading log file: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		lines = nil
	}
	if logsLines > 0 && len(lines) > logsLines {
		lines = lines[len(lines)-logsLines:]
	}

	fmt.Println(output.Section(fmt.Sprintf("Last %d Log Entries", len(lines))))
	fmt.Println()
	for _, line := range lines {
		fmt.Println(line)
	}
	fmt.Println()

	return nil
}
