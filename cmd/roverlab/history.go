package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roverlab/internal/storage"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [scenario]",
	Short: "Show recorded runs",
	Long: `Shows runs saved with 'roverlab run --record'.

Without a scenario the most recent runs are listed. With a scenario the
best runs are listed: most resources first, fewer ticks breaking ties.

Examples:
  roverlab history
  roverlab history loop --limit 5
  roverlab history loop --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Delete the scenario's recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.History.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if len(args) == 0 {
		if historyClear {
			return fmt.Errorf("--clear needs a scenario")
		}
		runs, err := store.RecentRuns(historyLimit)
		if err != nil {
			return err
		}
		printRuns(cmd, "Recent runs:", runs)
		return nil
	}

	id := args[0]
	if historyClear {
		if err := store.ClearRuns(id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared runs for %s.\n", id)
		return nil
	}

	runs, err := store.BestRuns(id, historyLimit)
	if err != nil {
		return err
	}
	printRuns(cmd, fmt.Sprintf("Best runs for %s:", id), runs)
	return nil
}

func printRuns(cmd *cobra.Command, title string, runs []storage.RunRecord) {
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return
	}

	maxIDLen := len("Scenario")
	for _, r := range runs {
		maxIDLen = max(maxIDLen, len(r.ScenarioID))
	}

	fmt.Fprintln(out, title)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %4s  %-*s  %5s  %9s  %7s  %-11s  %s\n",
		"#", maxIDLen, "Scenario", "Ticks", "Resources", "Blocked", "End", "Program")
	for _, r := range runs {
		fmt.Fprintf(out, "  %4d  %-*s  %5d  %9d  %7d  %-11s  %s\n",
			r.ID, maxIDLen, r.ScenarioID, r.Ticks, r.Resources, r.Blocked, r.EndReason, r.Program)
	}
}
