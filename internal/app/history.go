package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ccguide/internal/config"
	"github.com/blackwell-systems/ccguide/internal/history"
	"github.com/blackwell-systems/ccguide/internal/output"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent hook runs",
	Long: `List the most recent Stop hook runs recorded in the local database:
when each session ended, how it was classified, and whether guidance was
generated for it.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	output.AutoDetect()
	if flagNoColor {
		output.SetNoColor(true)
	}

	db, err := history.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	runs, err := db.RecentRuns(historyLimit)
	if err != nil {
		return fmt.Errorf("querying runs: %w", err)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No hook runs recorded yet. Runs appear here once the Stop hook fires.")
		return nil
	}

	fmt.Println(output.Section("Recent Hook Runs"))
	fmt.Println()

	tbl := output.NewTable("Time", "Session", "Type", "Chars", "Advised", "Error")
	for _, r := range runs {
		advised := "no"
		if r.Advised {
			advised = fmt.Sprintf("yes (%d)", r.AdviceChars)
		}
		errStr := r.Error
		if len(errStr) > 40 {
			errStr = errStr[:40] + "..."
		}
		tbl.AddRow(
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncateID(r.SessionID),
			r.SessionType,
			strconv.Itoa(r.TranscriptChars),
			advised,
			errStr,
		)
	}
	tbl.Print()

	if total, err := db.CountRuns(); err == nil && total > len(runs) {
		fmt.Printf("\n %s\n", output.StyleMuted.Render(fmt.Sprintf("showing %d of %d runs", len(runs), total)))
	}

	return nil
}
