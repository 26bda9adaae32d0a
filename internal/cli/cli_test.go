package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ospfwatch/internal/adapter"
	"ospfwatch/internal/config"
)

func writeTestConfig(t *testing.T) (cfgPath, dir string) {
	t.Helper()
	dir = t.TempDir()
	cfgPath = filepath.Join(dir, "ospfwatch.yaml")

	cfg := config.DefaultConfig()
	cfg.Database.Path = filepath.Join(dir, "state.db")
	cfg.Reports.Dir = filepath.Join(dir, "reports")
	if err := cfg.Save(cfgPath); err != nil {
		t.Fatal(err)
	}
	return cfgPath, dir
}

func TestChecksFor(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    int
		wantErr bool
	}{
		{"all keyword", "all", 2, false},
		{"empty means all", "", 2, false},
		{"single check", "ospf_neighbors_status", 1, false},
		{"unknown", "bgp_neighbors", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := checksFor(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestProbeDevicesDefaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SSH.Username = "netops"
	cfg.SSH.Password = "default-pw"
	cfg.Devices = []config.DeviceConfig{
		{Name: "r1", Host: "10.0.0.1"},
		{Name: "r2", Host: "10.0.0.2", Port: 2222, Username: "other", Password: "override"},
	}

	devices := probeDevices(cfg)
	want := []adapter.Device{
		{Name: "r1", Host: "10.0.0.1", Port: 22, Username: "netops", Password: "default-pw"},
		{Name: "r2", Host: "10.0.0.2", Port: 2222, Username: "other", Password: "override"},
	}
	if len(devices) != len(want) {
		t.Fatalf("len = %d, want %d", len(devices), len(want))
	}
	for i := range want {
		if devices[i] != want[i] {
			t.Errorf("device %d = %+v, want %+v", i, devices[i], want[i])
		}
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	cfgPath, dir := writeTestConfig(t)

	src := filepath.Join(dir, "expected.yaml")
	raw := `r1:
  GigabitEthernet1:
    neighbors:
      10.1.1.2:
        address: 10.1.1.2
`
	if err := os.WriteFile(src, []byte(raw), 0600); err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	args := []string{"ospfwatch", "--config", cfgPath,
		"import", "--check", "ospf_neighbors_ip_addresses", src}
	if err := Run(ctx, args); err != nil {
		t.Fatalf("import: %v", err)
	}

	out := filepath.Join(dir, "exported.json")
	args = []string{"ospfwatch", "--config", cfgPath,
		"export", "--check", "ospf_neighbors_ip_addresses", "--format", "json", "-o", out}
	if err := Run(ctx, args); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"r1", "GigabitEthernet1", "10.1.1.2"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("export missing %q:\n%s", want, data)
		}
	}
}

func TestExportWithoutLearnedParameters(t *testing.T) {
	cfgPath, _ := writeTestConfig(t)

	args := []string{"ospfwatch", "--config", cfgPath,
		"export", "--check", "ospf_neighbors_status"}
	err := Run(context.Background(), args)
	if err == nil || !strings.Contains(err.Error(), "learn") {
		t.Errorf("err = %v, want pointer to learn command", err)
	}
}

func TestImportUnknownCheck(t *testing.T) {
	cfgPath, dir := writeTestConfig(t)
	src := filepath.Join(dir, "x.yaml")
	if err := os.WriteFile(src, []byte("{}\n"), 0600); err != nil {
		t.Fatal(err)
	}

	args := []string{"ospfwatch", "--config", cfgPath,
		"import", "--check", "nope", src}
	if err := Run(context.Background(), args); err == nil {
		t.Error("expected error for unknown check")
	}
}

func TestReportNoRuns(t *testing.T) {
	cfgPath, _ := writeTestConfig(t)

	args := []string{"ospfwatch", "--config", cfgPath, "report"}
	if err := Run(context.Background(), args); err != nil {
		t.Fatalf("report: %v", err)
	}
}
