package service

import (
	"context"
	"errors"
	"strings"

	"ospfwatch/internal/adapter"
	"ospfwatch/internal/domain"
	"ospfwatch/internal/repository"
)

// fakeProbe returns canned parse results keyed by device name. Devices
// not present in the map simulate total probe failure.
type fakeProbe struct {
	data map[string]*adapter.ProbeData
}

func (f *fakeProbe) Execute(ctx context.Context, command string, targets []string) map[string]*adapter.ProbeResult {
	results := make(map[string]*adapter.ProbeResult)
	for _, name := range targets {
		data, ok := f.data[name]
		if !ok {
			continue
		}
		results[name] = &adapter.ProbeResult{
			DeviceName: name,
			Command:    command,
			Data:       data,
		}
	}
	return results
}

// fakeStore keeps snapshots in memory and can be made to fail.
type fakeStore struct {
	snapshots map[string]*domain.FactTree
	records   []repository.RunRecord
	saveErr   error
	loadErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{snapshots: make(map[string]*domain.FactTree)}
}

func (f *fakeStore) SaveSnapshot(ctx context.Context, checkName string, tree *domain.FactTree) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.snapshots[checkName] = tree
	return nil
}

func (f *fakeStore) LoadSnapshot(ctx context.Context, checkName string) (*domain.FactTree, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.snapshots[checkName], nil
}

func (f *fakeStore) RecordRun(ctx context.Context, record repository.RunRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeStore) ListRuns(ctx context.Context) ([]repository.RunRecord, error) {
	return f.records, nil
}

func (f *fakeStore) Close() error { return nil }

var errDiskFull = errors.New("disk full")

// neighbors builds an interface fact set from id->address pairs.
func neighbors(pairs ...[2]string) *domain.InterfaceFacts {
	iface := domain.NewInterfaceFacts()
	for _, p := range pairs {
		iface.Neighbors.Set(p[0], domain.Attributes{"address": p[1]})
	}
	return iface
}

// device builds device facts from interface name -> facts pairs.
func device(ifaces map[string]*domain.InterfaceFacts, order ...string) *domain.DeviceFacts {
	dev := domain.NewDeviceFacts()
	for _, name := range order {
		dev.SetInterface(name, ifaces[name])
	}
	return dev
}

// countStatus counts results with the given status.
func countStatus(results []domain.Result, status domain.ResultStatus) int {
	n := 0
	for _, r := range results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// failedMessages returns the messages of all failed results.
func failedMessages(results []domain.Result) []string {
	var msgs []string
	for _, r := range results {
		if r.Status == domain.StatusFailed {
			msgs = append(msgs, r.Message)
		}
	}
	return msgs
}

// containsMessage reports whether any result message contains the substring.
func containsMessage(results []domain.Result, substr string) bool {
	for _, r := range results {
		if strings.Contains(r.Message, substr) {
			return true
		}
	}
	return false
}
