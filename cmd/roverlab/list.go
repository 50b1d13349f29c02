package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roverlab/internal/registry"
	"github.com/vovakirdan/roverlab/internal/scenario"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available scenarios",
	Long: `Shows the scenarios built into roverlab, followed by any found in the
--scenarios directory.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

type listEntry struct {
	ID, Title, Source string
}

func runList(cmd *cobra.Command, args []string) error {
	entries := make([]listEntry, 0)
	for _, info := range registry.List() {
		entries = append(entries, listEntry{ID: info.ID, Title: info.Title, Source: "builtin"})
	}

	if flagScenarios != "" {
		scenarios, err := scenario.NewLoader(flagScenarios).LoadAll()
		if err != nil {
			return err
		}
		for _, sc := range scenarios {
			if registry.Exists(sc.ID) {
				logger.Warn("scenario shadowed by builtin", "id", sc.ID, "file", sc.FilePath)
				continue
			}
			entries = append(entries, listEntry{ID: sc.ID, Title: sc.Name, Source: sc.FilePath})
		}
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No scenarios available.")
		return nil
	}

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, e := range entries {
		maxIDLen = max(maxIDLen, len(e.ID))
		maxTitleLen = max(maxTitleLen, len(e.Title))
	}

	fmt.Fprintln(out, "Available scenarios:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Source")
	fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "------")
	for _, e := range entries {
		fmt.Fprintf(out, "  %-*s  %-*s  %s\n", maxIDLen, e.ID, maxTitleLen, e.Title, e.Source)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'roverlab run <id>' to run a scenario.")
	return nil
}
