package main

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// isolate points HOME and the working directory at fresh temp dirs so the
// config search and the history database stay inside the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		flagConfig, flagScenarios, flagLogLevel, flagColor = "", "", "warn", "auto"
		runFile, runTicks, runProgram, runRealtime, runFinal, runRecord = "", 16, "", false, false, false
		showFile, checkExpr = "", ""
		historyLimit, historyClear = 10, false
	})
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--color", "never"))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListBuiltins(t *testing.T) {
	isolate(t)
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, id := range []string{"starter", "loop", "standoff", "yard"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestCheckExpr(t *testing.T) {
	isolate(t)
	out, err := execute(t, "check", "-e", "f f f f r // spin")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	expected := "repeat 4 { forward } right\n5 actions\n"
	if out != expected {
		t.Errorf("check output = %q, expected %q", out, expected)
	}
}

func TestCheckRejectsBadProgram(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "check", "-e", "forward jump"); err == nil {
		t.Error("expected parse error")
	}
}

func TestShowUnknownScenario(t *testing.T) {
	isolate(t)
	_, err := execute(t, "show", "nowhere")
	if err == nil || !strings.Contains(err.Error(), "unknown scenario") {
		t.Errorf("expected unknown scenario error, got %v", err)
	}
}

func TestRunRecordsHistory(t *testing.T) {
	isolate(t)

	out, err := execute(t, "run", "loop", "--ticks", "16", "--final", "--record")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "16 ticks, 1 resources collected") {
		t.Errorf("run summary missing:\n%s", out)
	}
	if strings.Count(out, "tick ") != 1 {
		t.Errorf("--final should print one board:\n%s", out)
	}

	out, err = execute(t, "history", "loop")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "Best runs for loop:") {
		t.Errorf("history output:\n%s", out)
	}
	if !strings.Contains(out, "forward forward right forward") {
		t.Errorf("history missing recorded program:\n%s", out)
	}
}

func TestRunSimulatedFramesReadRunning(t *testing.T) {
	isolate(t)

	out, err := execute(t, "run", "loop", "--ticks", "2")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if n := strings.Count(out, "running"); n != 3 {
		t.Errorf("%d frames marked running, expected 3:\n%s", n, out)
	}
	if strings.Contains(out, "paused") {
		t.Errorf("simulated run printed a paused frame:\n%s", out)
	}
}

func TestRunRealtimeStopsAtTicks(t *testing.T) {
	isolate(t)
	cfg := "timing:\n  tick_period_seconds: 0.005\n"
	if err := os.WriteFile("fast.yaml", []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "run", "standoff", "--config", "fast.yaml", "--realtime", "--ticks", "3", "--final")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "3 ticks,") {
		t.Errorf("realtime run did not stop at 3 ticks:\n%s", out)
	}
}

func TestRunRejectsZeroTicksWithoutRealtime(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "run", "--ticks", "0"); err == nil {
		t.Error("expected error for --ticks 0")
	}
}
