package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"ospfwatch/internal/codec"
	"ospfwatch/internal/domain"
	"ospfwatch/internal/repository/sqlite"
)

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export learned parameters for review or hand editing",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "check",
				Usage:    "check whose parameters to export",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format (json, yaml)",
				Value: "yaml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "output file (stdout when unset)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			check, ok := domain.CheckByName(cmd.String("check"))
			if !ok {
				return fmt.Errorf("unknown check %q", cmd.String("check"))
			}
			coder, ok := codec.ByFormat(cmd.String("format"))
			if !ok {
				return fmt.Errorf("unknown format %q", cmd.String("format"))
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := sqlite.New(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer store.Close()

			tree, err := store.LoadSnapshot(ctx, check.Name)
			if err != nil {
				return fmt.Errorf("load parameters: %w", err)
			}
			if tree.Empty() {
				return fmt.Errorf("no learned parameters for %s, run learn first", check.Name)
			}

			var w io.Writer = os.Stdout
			if out := cmd.String("output"); out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return coder.Export(tree, w)
		},
	}
}

func importCmd() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Load expected parameters from a file",
		ArgsUsage: "<file>",
		Description: `Replace the learned parameters for a check with the contents of a
JSON or YAML file, typically a hand-edited export. The file's entry
order becomes the verification and report order.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "check",
				Usage:    "check whose parameters to replace",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "input format (json, yaml; inferred from extension when unset)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("missing input file argument")
			}

			check, ok := domain.CheckByName(cmd.String("check"))
			if !ok {
				return fmt.Errorf("unknown check %q", cmd.String("check"))
			}

			format := cmd.String("format")
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(path), ".")
			}
			coder, ok := codec.ByFormat(format)
			if !ok {
				return fmt.Errorf("unknown format %q", format)
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			tree, err := coder.Parse(f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			store, err := sqlite.New(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer store.Close()

			if err := store.SaveSnapshot(ctx, check.Name, tree); err != nil {
				return fmt.Errorf("save parameters: %w", err)
			}
			log.Printf("Imported expected parameters for %s from %s", check.Name, path)
			return nil
		},
	}
}
