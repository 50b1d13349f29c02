// Package storage provides SQLite-based persistence for rover run results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons recorded for a run.
const (
	EndCompleted   = "completed"   // ran the requested number of ticks
	EndFailed      = "failed"      // a tick returned an error
	EndInterrupted = "interrupted" // stopped before the requested ticks
)

// ErrNoRun is returned by Run when no record has the given ID.
var ErrNoRun = errors.New("storage: run not found")

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run of a scenario.
type RunRecord struct {
	ID         int64
	ScenarioID string
	Program    string // canonical program text of the selected rover
	Ticks      int
	Resources  int
	Blocked    int // blocked moves summed over all ticks
	EndReason  string
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scenario_id TEXT NOT NULL,
			program TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL,
			resources INTEGER NOT NULL,
			blocked INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario_id ON runs(scenario_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(scenario_id, resources DESC, ticks ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	if r.EndReason == "" {
		r.EndReason = EndCompleted
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (scenario_id, program, ticks, resources, blocked, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ScenarioID, r.Program, r.Ticks, r.Resources, r.Blocked, r.EndReason,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestRuns retrieves the top N runs for the given scenario: most resources
// first, fewer ticks breaking ties.
func (s *Store) BestRuns(scenarioID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, scenario_id, program, ticks, resources, blocked, end_reason, created_at
		 FROM runs
		 WHERE scenario_id = ?
		 ORDER BY resources DESC, ticks ASC, id ASC
		 LIMIT ?`,
		scenarioID, limit,
	)
}

// RecentRuns retrieves the latest N runs across all scenarios, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, scenario_id, program, ticks, resources, blocked, end_reason, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// Run retrieves a single run by ID.
func (s *Store) Run(id int64) (RunRecord, error) {
	runs, err := s.query(
		`SELECT id, scenario_id, program, ticks, resources, blocked, end_reason, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	)
	if err != nil {
		return RunRecord{}, err
	}
	if len(runs) == 0 {
		return RunRecord{}, fmt.Errorf("%w: %d", ErrNoRun, id)
	}
	return runs[0], nil
}

// BestResources returns the most resources any run of the scenario collected.
// Returns 0 if no runs exist.
func (s *Store) BestResources(scenarioID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(resources) FROM runs WHERE scenario_id = ?",
		scenarioID,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best resources: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// ClearRuns deletes all runs for the given scenario.
func (s *Store) ClearRuns(scenarioID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE scenario_id = ?", scenarioID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func (s *Store) query(q string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.ScenarioID, &r.Program, &r.Ticks,
			&r.Resources, &r.Blocked, &r.EndReason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string, depending on how the driver
// returns DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
