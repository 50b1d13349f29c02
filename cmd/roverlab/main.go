// roverlab runs the rover programming simulation in the terminal.
//
// Usage:
//
//	roverlab list                    - List available scenarios
//	roverlab show <scenario>         - Print a scenario's starting board
//	roverlab run [scenario]          - Step a scenario and print each tick
//	roverlab check <file>            - Parse a rover program
//	roverlab history [scenario]      - Show recorded runs
//
// Global flags:
//
//	--config <path>      - Config file (default: search ~/.roverlab and ./configs)
//	--scenarios <dir>    - Extra directory of scenario files
//	--log-level <level>  - debug, info, warn or error (default: warn)
//	--color <mode>       - auto, always or never (default: auto)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagScenarios string
	flagLogLevel  string
	flagColor     string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "roverlab",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "roverlab",
	Short: "Roverlab - program rovers on a grid",
	Long: `Roverlab is a small tick-based simulation: rovers loop over a
programmed list of actions on a grid, and mines yield resources to rovers
parked in front of them.

Available commands:
  list     - Show all available scenarios
  show     - Print a scenario's starting board
  run      - Step a scenario and print the board
  check    - Parse a rover program
  history  - Show recorded runs

Examples:
  roverlab list
  roverlab show yard
  roverlab run loop --ticks 16
  roverlab run starter --program "repeat 2 { forward } right"
  roverlab run standoff --realtime
  roverlab check -e "repeat 4 { forward right }"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return err
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagScenarios, "scenarios", "", "Directory with extra scenario files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
}
