package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roverlab/internal/program"
)

var checkExpr string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse a rover program",
	Long: `Parses a rover program and prints its canonical form and length.
Reads the program from a file, from -e, or from stdin when the file is "-".

Examples:
  roverlab check square.rover
  roverlab check -e "repeat 4 { forward forward right }"
  echo "f f r" | roverlab check -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkExpr, "expr", "e", "", "Program text to check")
}

func runCheck(cmd *cobra.Command, args []string) error {
	name, src, err := programSource(cmd, args)
	if err != nil {
		return err
	}

	actions, err := program.ParseNamed(name, src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, program.Format(actions))
	fmt.Fprintf(out, "%d actions\n", len(actions))
	return nil
}

func programSource(cmd *cobra.Command, args []string) (name, src string, err error) {
	switch {
	case checkExpr != "" && len(args) > 0:
		return "", "", fmt.Errorf("give either a file or -e, not both")
	case checkExpr != "":
		return "expr", checkExpr, nil
	case len(args) == 0:
		return "", "", fmt.Errorf("nothing to check: give a file or -e")
	case args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return "stdin", string(data), nil
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("reading file %s: %w", args[0], err)
		}
		return args[0], string(data), nil
	}
}
