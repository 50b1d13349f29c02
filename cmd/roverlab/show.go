package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roverlab/internal/clock"
	"github.com/vovakirdan/roverlab/internal/view"
)

var showFile string

var showCmd = &cobra.Command{
	Use:   "show [scenario]",
	Short: "Print a scenario's starting board",
	Long: `Prints the board a scenario starts with, north up.

Examples:
  roverlab show starter
  roverlab show --file ./my-yard.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showFile, "file", "", "Path to a scenario YAML file")
}

func runShow(cmd *cobra.Command, args []string) error {
	id := "starter"
	if len(args) == 1 {
		id = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	color, err := useColor(os.Stdout)
	if err != nil {
		return err
	}

	board, name, err := buildBoard(id, showFile, cfg.Settings(), time.Now())
	if err != nil {
		return err
	}

	d := clock.New(board, cfg.TickPeriod())
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, name)
	fmt.Fprintln(out, view.Render(view.Frame(d.Current()), color))
	fmt.Fprintln(out)
	fmt.Fprintln(out, view.Legend())
	return nil
}
