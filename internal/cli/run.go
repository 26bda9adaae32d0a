package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"ospfwatch/internal/adapter"
	"ospfwatch/internal/config"
	"ospfwatch/internal/domain"
	"ospfwatch/internal/report"
	"ospfwatch/internal/repository"
	"ospfwatch/internal/repository/sqlite"
	"ospfwatch/internal/service"
)

func checkFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "check",
		Usage: "check to run (ospf_neighbors_ip_addresses, ospf_neighbors_status, all)",
		Value: "all",
	}
}

// checksFor resolves a --check value to the checks to run.
func checksFor(name string) ([]domain.Check, error) {
	if name == "" || name == "all" {
		return domain.Checks, nil
	}
	check, ok := domain.CheckByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown check %q", name)
	}
	return []domain.Check{check}, nil
}

// probeDevices builds the probe target list, filling empty per-device
// credentials from the SSH defaults.
func probeDevices(cfg *config.Config) []adapter.Device {
	devices := make([]adapter.Device, 0, len(cfg.Devices))
	for _, d := range cfg.Devices {
		dev := adapter.Device{
			Name:     d.Name,
			Host:     d.Host,
			Port:     d.Port,
			Username: d.Username,
			Password: d.Password,
		}
		if dev.Port == 0 {
			dev.Port = cfg.SSH.Port
		}
		if dev.Username == "" {
			dev.Username = cfg.SSH.Username
		}
		if dev.Password == "" {
			dev.Password = cfg.SSH.Password
		}
		devices = append(devices, dev)
	}
	return devices
}

// filterReachable splits devices into reachable and unreachable sets
// based on an SSH port scan. Unreachable devices are excluded from
// probing but still fail the run.
func filterReachable(ctx context.Context, cfg *config.Config, devices []adapter.Device) (reachable, unreachable []adapter.Device, err error) {
	hosts := make([]string, len(devices))
	for i, d := range devices {
		hosts[i] = d.Host
	}

	scanner := adapter.NewReachabilityScanner(cfg.SSH.Port, cfg.Scan.Timeout.Duration())
	up, err := scanner.Scan(ctx, hosts)
	if err != nil {
		return nil, nil, fmt.Errorf("reachability scan: %w", err)
	}

	for _, d := range devices {
		if up[d.Host] {
			reachable = append(reachable, d)
		} else {
			log.Printf("Device %s (%s) did not answer on port %d", d.Name, d.Host, cfg.SSH.Port)
			unreachable = append(unreachable, d)
		}
	}
	return reachable, unreachable, nil
}

// runChecks is the shared body of the learn and verify commands. Every
// check gets its own collector, report and (in testing mode) run record;
// a failing check never stops the remaining checks.
func runChecks(ctx context.Context, cmd *cli.Command, mode domain.RunMode) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(cfg.Devices) == 0 {
		return fmt.Errorf("no devices configured")
	}

	checks, err := checksFor(cmd.String("check"))
	if err != nil {
		return err
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer store.Close()

	devices := probeDevices(cfg)

	var unreachable []adapter.Device
	if cfg.Scan.Enabled {
		devices, unreachable, err = filterReachable(ctx, cfg, devices)
		if err != nil {
			return err
		}
	}

	probe := adapter.NewSSHProbe(devices, adapter.SSHProbeConfig{
		ConnectionTimeout: cfg.SSH.ConnectionTimeout.Duration(),
		CommandTimeout:    cfg.SSH.CommandTimeout.Duration(),
		MaxConcurrent:     cfg.SSH.MaxConcurrent,
	})

	targets := make([]string, len(devices))
	for i, d := range devices {
		targets[i] = d.Name
	}

	gen := report.NewGenerator(cfg.Reports.Dir)

	failed := false
	for _, check := range checks {
		results := domain.NewCollector()
		for _, d := range unreachable {
			results.Add(domain.StatusFailed,
				fmt.Sprintf("Device %s (%s) is not reachable", d.Name, d.Host))
		}

		runner := service.NewRunner(mode, check, targets, probe, store, results)
		outcome := runner.Run(ctx)

		runID := uuid.NewString()
		now := time.Now()

		reportPath, err := gen.WriteRun(outcome, runID, now)
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		log.Printf("Report written: %s", reportPath)

		if mode == domain.ModeTesting {
			record := repository.RunRecord{
				ID:         runID,
				CheckName:  check.Name,
				Title:      check.Title,
				Passed:     outcome.Overall == domain.StatusPassed,
				Timestamp:  now,
				ReportPath: reportPath,
			}
			if err := store.RecordRun(ctx, record); err != nil {
				return fmt.Errorf("record run: %w", err)
			}
		}

		if outcome.Overall != domain.StatusPassed {
			failed = true
		}
	}

	if mode == domain.ModeTesting {
		records, err := store.ListRuns(ctx)
		if err != nil {
			return fmt.Errorf("list runs: %w", err)
		}
		aggPath, err := gen.WriteAggregate(records)
		if err != nil {
			return fmt.Errorf("write aggregate report: %w", err)
		}
		log.Printf("Aggregate report written: %s", aggPath)
	}

	if failed {
		return fmt.Errorf("one or more checks did not pass")
	}
	return nil
}
