package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"ospfwatch/internal/domain"
	"ospfwatch/internal/repository"

	_ "modernc.org/sqlite"
)

// Store implements repository.Store using SQLite
type Store struct {
	db *sql.DB
}

// New creates a new SQLite store
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		check_name TEXT PRIMARY KEY,
		data JSON NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		check_name TEXT NOT NULL,
		title TEXT NOT NULL,
		passed INTEGER NOT NULL,
		timestamp DATETIME NOT NULL,
		report_path TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveSnapshot stores the learned tree for a check, replacing any
// previous snapshot. The tree is serialized as JSON; device, interface
// and neighbor order survive the round trip.
func (s *Store) SaveSnapshot(ctx context.Context, checkName string, tree *domain.FactTree) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (check_name, data, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(check_name) DO UPDATE SET
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`, checkName, string(data))
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot returns the learned tree for a check, or (nil, nil) when
// the check was never learned.
func (s *Store) LoadSnapshot(ctx context.Context, checkName string) (*domain.FactTree, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE check_name = ?`, checkName,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot: %w", err)
	}

	tree := domain.NewFactTree()
	if err := json.Unmarshal([]byte(data), tree); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return tree, nil
}

// RecordRun stores the metadata for one completed run.
func (s *Store) RecordRun(ctx context.Context, record repository.RunRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, check_name, title, passed, timestamp, report_path)
		VALUES (?, ?, ?, ?, ?, ?)
	`, record.ID, record.CheckName, record.Title, boolToInt(record.Passed),
		record.Timestamp.UTC().Format(time.RFC3339), record.ReportPath)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// ListRuns returns all recorded runs ordered by timestamp.
func (s *Store) ListRuns(ctx context.Context) ([]repository.RunRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, check_name, title, passed, timestamp, report_path
		FROM runs
		ORDER BY timestamp
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []repository.RunRecord
	for rows.Next() {
		var (
			rec    repository.RunRecord
			passed int
			ts     string
		)
		if err := rows.Scan(&rec.ID, &rec.CheckName, &rec.Title, &passed, &ts, &rec.ReportPath); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.Passed = passed != 0
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}

	return records, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
