// Package db persists benchmark runs in SQL databases.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"microbench/internal/benchmark"
)

// sqlStore holds the queries shared by the SQLite and Postgres stores.
// Timestamps are stored as unix nanoseconds so both drivers agree.
type sqlStore struct {
	db          *sql.DB
	placeholder func(n int) string
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func (s *sqlStore) p(n int) string {
	return s.placeholder(n)
}

func (s *sqlStore) Save(run benchmark.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		fmt.Sprintf(`INSERT INTO runs (id, suite, commit_hash, created_at_ns) VALUES (%s, %s, %s, %s)`,
			s.p(1), s.p(2), s.p(3), s.p(4)),
		run.ID, run.Suite, run.Commit, run.Timestamp.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert run %s: %w", run.ID, err)
	}

	insert := fmt.Sprintf(`INSERT INTO results (run_id, position, name, iterations, elapsed_ns) VALUES (%s, %s, %s, %s, %s)`,
		s.p(1), s.p(2), s.p(3), s.p(4), s.p(5))
	for i, r := range run.Results {
		if _, err := tx.Exec(insert, run.ID, i, r.Name, r.Iterations, r.Elapsed.Nanoseconds()); err != nil {
			return fmt.Errorf("failed to insert result %s: %w", r.Name, err)
		}
	}

	return tx.Commit()
}

func (s *sqlStore) LoadAll(suite string) ([]benchmark.Run, error) {
	query := `SELECT id, suite, commit_hash, created_at_ns FROM runs`
	var args []any
	if suite != "" {
		query += fmt.Sprintf(` WHERE suite = %s`, s.p(1))
		args = append(args, suite)
	}
	query += ` ORDER BY created_at_ns ASC, id ASC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}

	runs := []benchmark.Run{}
	for rows.Next() {
		var run benchmark.Run
		var ns int64
		if err := rows.Scan(&run.ID, &run.Suite, &run.Commit, &ns); err != nil {
			rows.Close()
			return nil, err
		}
		run.Timestamp = time.Unix(0, ns).UTC()
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range runs {
		results, err := s.loadResults(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Results = results
	}
	return runs, nil
}

func (s *sqlStore) loadResults(runID string) ([]benchmark.Result, error) {
	rows, err := s.db.Query(
		fmt.Sprintf(`SELECT name, iterations, elapsed_ns FROM results WHERE run_id = %s ORDER BY position ASC`, s.p(1)),
		runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results of run %s: %w", runID, err)
	}
	defer rows.Close()

	var results []benchmark.Result
	for rows.Next() {
		var r benchmark.Result
		var ns int64
		if err := rows.Scan(&r.Name, &r.Iterations, &ns); err != nil {
			return nil, err
		}
		r.Elapsed = time.Duration(ns)
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *sqlStore) LoadLatest(suite string) (*benchmark.Run, error) {
	runs, err := s.LoadAll(suite)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}

func (s *sqlStore) migrate(queries []string) error {
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
