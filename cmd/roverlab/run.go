package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roverlab/internal/clock"
	"github.com/vovakirdan/roverlab/internal/program"
	"github.com/vovakirdan/roverlab/internal/storage"
	"github.com/vovakirdan/roverlab/internal/view"
)

var (
	runFile     string
	runTicks    int
	runProgram  string
	runRealtime bool
	runFinal    bool
	runRecord   bool
)

var runCmd = &cobra.Command{
	Use:   "run [scenario]",
	Short: "Step a scenario and print the board",
	Long: `Runs a scenario and prints the board after every tick.

By default ticks are simulated back to back, with the clock advancing one
tick period per step. With --realtime the board is ticked by a wall clock
at the configured period until --ticks is reached or Ctrl+C is pressed.

Examples:
  roverlab run loop --ticks 16
  roverlab run starter --program "forward forward right forward"
  roverlab run yard --ticks 30 --final
  roverlab run standoff --realtime --ticks 0
  roverlab run --file ./my-yard.yaml
  roverlab run loop --ticks 32 --record`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFile, "file", "", "Path to a scenario YAML file")
	runCmd.Flags().IntVar(&runTicks, "ticks", 16, "Number of ticks to run (0 = until interrupted, realtime only)")
	runCmd.Flags().StringVarP(&runProgram, "program", "p", "", "Program for the selected rover, replacing the scenario's")
	runCmd.Flags().BoolVar(&runRealtime, "realtime", false, "Tick on the wall clock at the configured period")
	runCmd.Flags().BoolVar(&runFinal, "final", false, "Print only the last board")
	runCmd.Flags().BoolVar(&runRecord, "record", false, "Save the result to the run history")
}

func runRun(cmd *cobra.Command, args []string) error {
	id := "starter"
	if len(args) == 1 {
		id = args[0]
	}
	if runTicks < 0 || (runTicks == 0 && !runRealtime) {
		return fmt.Errorf("invalid --ticks %d", runTicks)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	color, err := useColor(os.Stdout)
	if err != nil {
		return err
	}

	start := time.Now()
	board, name, err := buildBoard(id, runFile, cfg.Settings(), start)
	if err != nil {
		return err
	}

	opts := []clock.Option{clock.WithLogger(logger)}
	if runRealtime {
		opts = append(opts, clock.WithTickLimit(uint64(runTicks)))
	}
	d := clock.New(board, cfg.TickPeriod(), opts...)
	if runProgram != "" {
		actions, err := program.Parse(runProgram)
		if err != nil {
			return err
		}
		if err := d.Program(actions); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if tw := terminalWidth(os.Stdout); tw > 0 {
		if w, _ := view.BoardSize(d.Current().Grid); tw < w {
			logger.Warn("terminal narrower than board", "board", w, "terminal", tw)
		}
	}
	logger.Info("running scenario", "scenario", name, "ticks", runTicks, "realtime", runRealtime)

	var reason string
	if runRealtime {
		reason, err = runOnClock(cmd.Context(), d, out, color)
	} else {
		reason, err = runSimulated(d, start, out, color)
	}
	if runRecord {
		key := id
		if runFile != "" {
			key = runFile
		}
		if rerr := recordRun(cfg.History.Database, key, d.Current(), reason); rerr != nil {
			return errors.Join(err, rerr)
		}
	}
	return err
}

// recordRun saves the outcome of a run to the history database.
func recordRun(dbPath, scenarioID string, f *clock.Frame, reason string) error {
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	var text string
	if _, r, ok := f.SelectedRover(); ok {
		text = program.Format(r.Actions())
	}
	id, err := store.SaveRun(storage.RunRecord{
		ScenarioID: scenarioID,
		Program:    text,
		Ticks:      int(f.Tick),
		Resources:  f.Resources,
		Blocked:    f.Blocked,
		EndReason:  reason,
	})
	if err != nil {
		return err
	}
	logger.Info("run recorded", "id", id, "scenario", scenarioID, "resources", f.Resources)
	return nil
}

// runSimulated steps the board back to back on a simulated clock and
// returns how the run ended.
func runSimulated(d *clock.Driver, start time.Time, out io.Writer, color bool) (string, error) {
	// Nothing fires the driver's timer here, but the frames should still
	// read as a running board.
	d.SetRunning(true)
	if !runFinal {
		printFrame(out, d.Current(), color, false)
	}

	for i := 1; i <= runTicks; i++ {
		if _, err := d.StepAt(start.Add(time.Duration(i) * d.Period())); err != nil {
			d.SetRunning(false)
			printFrame(out, d.Current(), color, false)
			return storage.EndFailed, fmt.Errorf("tick %d: %w", i, err)
		}
		if !runFinal {
			printFrame(out, d.Current(), color, false)
		}
	}

	f := d.Current()
	if runFinal {
		printFrame(out, f, color, false)
	}
	printSummary(out, f)
	return storage.EndCompleted, nil
}

// runOnClock lets the driver tick the board at its period until the tick
// limit, an error or an interrupt, and returns how the run ended.
func runOnClock(ctx context.Context, d *clock.Driver, out io.Writer, color bool) (string, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	redraw := color && terminalWidth(os.Stdout) > 0
	sub := d.Subscribe(16)
	defer d.Unsubscribe(sub)

	errc := make(chan error, 1)
	go func() {
		errc <- d.Run(ctx)
	}()
	d.SetRunning(true)
	printFrame(out, d.Current(), color, redraw)

	show := func(f *clock.Frame) {
		if f.Result != nil && !runFinal {
			printFrame(out, f, color, redraw)
		}
	}

	for {
		select {
		case f := <-sub.Frames():
			show(f)
		case err := <-errc:
			// Frames published before Run returned are still buffered.
			for drained := false; !drained; {
				select {
				case f := <-sub.Frames():
					show(f)
				default:
					drained = true
				}
			}

			f := d.Current()
			if runFinal || err != nil {
				printFrame(out, f, color, false)
			}
			printSummary(out, f)
			switch {
			case err != nil:
				return storage.EndFailed, err
			case runTicks > 0 && f.Tick >= uint64(runTicks):
				return storage.EndCompleted, nil
			default:
				return storage.EndInterrupted, nil
			}
		}
	}
}

func printSummary(out io.Writer, f *clock.Frame) {
	fmt.Fprintf(out, "%d ticks, %d resources collected, %d blocked moves\n", f.Tick, f.Resources, f.Blocked)
}

func printFrame(out io.Writer, f *clock.Frame, color, redraw bool) {
	if redraw {
		fmt.Fprint(out, "\x1b[H\x1b[2J")
	}
	fmt.Fprintln(out, view.Render(view.Frame(f), color))
	fmt.Fprintln(out)
}
