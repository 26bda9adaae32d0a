package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/urfave/cli/v3"

	"ospfwatch/internal/report"
	"ospfwatch/internal/repository/sqlite"
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "List recorded runs and regenerate the aggregate report",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store, err := sqlite.New(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer store.Close()

			records, err := store.ListRuns(ctx)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}
			if len(records) == 0 {
				log.Println("No recorded runs")
				return nil
			}

			for _, r := range records {
				verdict := "FAILED"
				if r.Passed {
					verdict = "PASSED"
				}
				fmt.Printf("%s  %-30s  %s  %s\n",
					r.Timestamp.Format("2006-01-02 15:04:05"), r.CheckName, verdict, r.ReportPath)
			}

			gen := report.NewGenerator(cfg.Reports.Dir)
			path, err := gen.WriteAggregate(records)
			if err != nil {
				return fmt.Errorf("write aggregate report: %w", err)
			}
			log.Printf("Aggregate report written: %s", path)
			return nil
		},
	}
}
