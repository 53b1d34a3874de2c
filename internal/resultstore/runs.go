package resultstore

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubesolver/internal/bench"
)

// Run is one persisted benchmark run.
type Run struct {
	RunID       string
	StartedAt   time.Time
	SourceFile  string
	Total       int
	Successful  int
	SuccessRate float64
}

// SaveRun records one completed benchmark run and its per-scramble
// results inside a single transaction.
func (s *Store) SaveRun(sourceFile string, results []bench.Result) (string, error) {
	stats, _ := bench.Analyze(results)
	runID := uuid.New().String()
	startedAt := time.Now().UTC()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO benchmark_runs (run_id, started_at, source_file, total, successful, success_rate)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, startedAt.Format(time.RFC3339Nano), sourceFile, len(results), stats.Successful, stats.SuccessRate)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("insert benchmark run: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO benchmark_results (run_id, scramble, success, solve_time_ms, solution_length)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return "", fmt.Errorf("prepare result insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		success := 0
		if r.Success {
			success = 1
		}
		if _, err := stmt.Exec(runID, r.Scramble, success, r.SolveTime.Milliseconds(), r.SolutionLength); err != nil {
			tx.Rollback()
			return "", fmt.Errorf("insert benchmark result: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit benchmark run: %w", err)
	}

	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	rows, err := s.db.Query(`
		SELECT run_id, started_at, source_file, total, successful, success_rate
		FROM benchmark_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list benchmark runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var startedAtStr string
		if err := rows.Scan(&r.RunID, &startedAtStr, &r.SourceFile, &r.Total, &r.Successful, &r.SuccessRate); err != nil {
			return nil, fmt.Errorf("scan benchmark run: %w", err)
		}
		r.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAtStr)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
