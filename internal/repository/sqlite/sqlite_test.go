package sqlite

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"ospfwatch/internal/domain"
	"ospfwatch/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "ospfwatch.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	tree := domain.NewFactTree()
	r1 := domain.NewDeviceFacts()
	gi1 := domain.NewInterfaceFacts()
	gi1.Neighbors.Set("2.2.2.2", domain.Attributes{"address": "10.0.0.2"})
	r1.SetInterface("GigabitEthernet0/1", gi1)
	tree.SetDevice("R1", r1)
	tree.SetDevice("R2", domain.NewDeviceFacts())

	if err := store.SaveSnapshot(ctx, "ospf_neighbors_ip_addresses", tree); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	loaded, err := store.LoadSnapshot(ctx, "ospf_neighbors_ip_addresses")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadSnapshot returned nil for saved check")
	}
	if got := loaded.Devices(); !reflect.DeepEqual(got, []string{"R1", "R2"}) {
		t.Fatalf("device order = %v", got)
	}
	dev, _ := loaded.Device("R1")
	iface, ok := dev.Interface("GigabitEthernet0/1")
	if !ok {
		t.Fatal("interface missing after round trip")
	}
	attrs, _ := iface.Neighbors.Get("2.2.2.2")
	if attrs["address"] != "10.0.0.2" {
		t.Errorf("address = %q", attrs["address"])
	}
}

func TestSnapshotOverwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := domain.NewFactTree()
	first.SetDevice("R1", domain.NewDeviceFacts())
	if err := store.SaveSnapshot(ctx, "check", first); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	second := domain.NewFactTree()
	second.SetDevice("R9", domain.NewDeviceFacts())
	if err := store.SaveSnapshot(ctx, "check", second); err != nil {
		t.Fatalf("SaveSnapshot (overwrite): %v", err)
	}

	loaded, err := store.LoadSnapshot(ctx, "check")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if got := loaded.Devices(); !reflect.DeepEqual(got, []string{"R9"}) {
		t.Errorf("devices after overwrite = %v, want [R9]", got)
	}
}

func TestLoadSnapshotNeverLearned(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.LoadSnapshot(context.Background(), "never_learned")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if loaded != nil {
		t.Errorf("LoadSnapshot = %v, want nil for a check never learned", loaded)
	}
}

func TestRunRecords(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []repository.RunRecord{
		{ID: "b", CheckName: "status", Title: "Status", Passed: false, Timestamp: base.Add(time.Hour), ReportPath: "b.html"},
		{ID: "a", CheckName: "address", Title: "Addresses", Passed: true, Timestamp: base, ReportPath: "a.html"},
	}
	for _, rec := range records {
		if err := store.RecordRun(ctx, rec); err != nil {
			t.Fatalf("RecordRun(%s): %v", rec.ID, err)
		}
	}

	listed, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("ListRuns returned %d records, want 2", len(listed))
	}
	// Ordered by timestamp, not insertion
	if listed[0].ID != "a" || listed[1].ID != "b" {
		t.Errorf("run order = %s, %s; want a, b", listed[0].ID, listed[1].ID)
	}
	if !listed[0].Passed || listed[1].Passed {
		t.Errorf("passed flags = %v, %v", listed[0].Passed, listed[1].Passed)
	}
	if !listed[0].Timestamp.Equal(base) {
		t.Errorf("timestamp = %v, want %v", listed[0].Timestamp, base)
	}
}
