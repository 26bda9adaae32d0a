package repository

import (
	"context"
	"time"

	"ospfwatch/internal/domain"
)

// RunRecord is the metadata kept for every completed run so reports can
// be aggregated later.
type RunRecord struct {
	ID         string    `json:"id"`
	CheckName  string    `json:"check_name"`
	Title      string    `json:"title"`
	Passed     bool      `json:"passed"`
	Timestamp  time.Time `json:"timestamp"`
	ReportPath string    `json:"report_path"`
}

// Store persists learned parameter snapshots and run metadata.
//
// A snapshot is keyed by check name: learning mode overwrites it and
// testing mode loads it as the expected tree. LoadSnapshot returning
// (nil, nil) means the check was never learned.
type Store interface {
	SaveSnapshot(ctx context.Context, checkName string, tree *domain.FactTree) error
	LoadSnapshot(ctx context.Context, checkName string) (*domain.FactTree, error)

	RecordRun(ctx context.Context, record RunRecord) error
	ListRuns(ctx context.Context) ([]RunRecord, error)

	Close() error
}
