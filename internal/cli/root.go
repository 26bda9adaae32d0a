// Package cli implements the ospfwatch command line interface.
package cli

import (
	"context"
	"log"

	"github.com/urfave/cli/v3"

	"ospfwatch/internal/config"
)

// Run executes ospfwatch with the given arguments.
func Run(ctx context.Context, args []string) error {
	root := &cli.Command{
		Name:  "ospfwatch",
		Usage: "Capture and verify OSPF neighbor state on IOS-XE devices",
		Description: `ospfwatch records the OSPF neighbor state of a set of devices as
expected parameters (learn), then verifies later observations against
that recorded state (verify). Every run produces an HTML report.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file path (searches standard locations when unset)",
			},
		},
		Commands: []*cli.Command{
			learnCmd(),
			verifyCmd(),
			reportCmd(),
			exportCmd(),
			importCmd(),
		},
	}
	return root.Run(ctx, args)
}

// loadConfig resolves the config for a command invocation. An explicit
// --config path must exist; otherwise the standard search locations are
// tried and defaults apply when nothing is found.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := cmd.String("config"); path != "" {
		cfg, _, err := config.LoadFromPath(path)
		return cfg, err
	}

	cfg, path, err := config.Load()
	if err != nil {
		return nil, err
	}
	if path == "" {
		log.Println("No config file found, using defaults")
	} else {
		log.Printf("Loaded config from %s", path)
	}
	return cfg, nil
}
