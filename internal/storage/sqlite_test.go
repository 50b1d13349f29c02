package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustSave(t *testing.T, s *Store, r RunRecord) int64 {
	t.Helper()
	id, err := s.SaveRun(r)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	return id
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.roverlab/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".roverlab", "runs.db")); err != nil {
		t.Errorf("Database not created under HOME: %v", err)
	}
}

func TestStoreSaveAndGet(t *testing.T) {
	store := openTestStore(t)

	id := mustSave(t, store, RunRecord{
		ScenarioID: "loop",
		Program:    "forward forward right forward",
		Ticks:      16,
		Resources:  1,
		Blocked:    2,
	})

	got, err := store.Run(id)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if got.ScenarioID != "loop" || got.Ticks != 16 || got.Resources != 1 || got.Blocked != 2 {
		t.Errorf("Run() = %+v", got)
	}
	if got.Program != "forward forward right forward" {
		t.Errorf("Program = %q", got.Program)
	}
	if got.EndReason != EndCompleted {
		t.Errorf("EndReason = %q, expected default %q", got.EndReason, EndCompleted)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	if _, err := store.Run(id + 100); !errors.Is(err, ErrNoRun) {
		t.Errorf("Run(missing) error = %v, expected ErrNoRun", err)
	}
}

func TestStoreBestRunsOrder(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, RunRecord{ScenarioID: "yard", Ticks: 30, Resources: 2})
	mustSave(t, store, RunRecord{ScenarioID: "yard", Ticks: 20, Resources: 2})
	mustSave(t, store, RunRecord{ScenarioID: "yard", Ticks: 10, Resources: 0})
	mustSave(t, store, RunRecord{ScenarioID: "yard", Ticks: 40, Resources: 5})
	mustSave(t, store, RunRecord{ScenarioID: "loop", Ticks: 16, Resources: 9})

	runs, err := store.BestRuns("yard", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 4 {
		t.Fatalf("Expected 4 yard runs, got %d", len(runs))
	}

	want := []struct{ resources, ticks int }{{5, 40}, {2, 20}, {2, 30}, {0, 10}}
	for i, w := range want {
		if runs[i].Resources != w.resources || runs[i].Ticks != w.ticks {
			t.Errorf("runs[%d] = %d resources in %d ticks, expected %d in %d",
				i, runs[i].Resources, runs[i].Ticks, w.resources, w.ticks)
		}
	}
}

func TestStoreBestRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, RunRecord{ScenarioID: "test", Ticks: 10, Resources: i + 1})
	}

	runs, err := store.BestRuns("test", 3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Resources != 5 || runs[1].Resources != 4 || runs[2].Resources != 3 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, RunRecord{ScenarioID: "a", Ticks: 1})
	mustSave(t, store, RunRecord{ScenarioID: "b", Ticks: 2, EndReason: EndFailed})
	mustSave(t, store, RunRecord{ScenarioID: "c", Ticks: 3, EndReason: EndInterrupted})

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].ScenarioID != "c" || runs[1].ScenarioID != "b" {
		t.Errorf("RecentRuns() order = %s, %s; expected c, b", runs[0].ScenarioID, runs[1].ScenarioID)
	}
	if runs[0].EndReason != EndInterrupted || runs[1].EndReason != EndFailed {
		t.Errorf("end reasons = %s, %s", runs[0].EndReason, runs[1].EndReason)
	}
}

func TestStoreBestResources(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestResources("loop")
	if err != nil {
		t.Fatalf("BestResources() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for a scenario without runs, got %d", best)
	}

	mustSave(t, store, RunRecord{ScenarioID: "loop", Resources: 1})
	mustSave(t, store, RunRecord{ScenarioID: "loop", Resources: 3})
	mustSave(t, store, RunRecord{ScenarioID: "loop", Resources: 2})

	best, err = store.BestResources("loop")
	if err != nil {
		t.Fatalf("BestResources() failed: %v", err)
	}
	if best != 3 {
		t.Errorf("Expected best of 3, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, RunRecord{ScenarioID: "loop", Resources: 1})
	mustSave(t, store, RunRecord{ScenarioID: "loop", Resources: 2})
	mustSave(t, store, RunRecord{ScenarioID: "yard", Resources: 3})

	if err := store.ClearRuns("loop"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	loopRuns, _ := store.BestRuns("loop", 10)
	if len(loopRuns) != 0 {
		t.Errorf("Expected 0 loop runs after clear, got %d", len(loopRuns))
	}

	yardRuns, _ := store.BestRuns("yard", 10)
	if len(yardRuns) != 1 {
		t.Errorf("Yard runs should not be affected by clearing loop")
	}
}
