package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"ospfwatch/internal/domain"
)

func learnCmd() *cli.Command {
	return &cli.Command{
		Name:  "learn",
		Usage: "Capture current OSPF neighbor state as expected parameters",
		Description: `Connect to every configured device, gather OSPF neighbor facts and
save them as the expected parameters for later verification. Learning
overwrites any previously learned parameters for the selected checks.`,
		Flags: []cli.Flag{checkFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runChecks(ctx, cmd, domain.ModeLearning)
		},
	}
}

func verifyCmd() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Verify current OSPF neighbor state against learned parameters",
		Description: `Gather OSPF neighbor facts from every configured device and compare
them against the learned parameters. Any attribute that drifted from
its expected value fails the check. A check with no learned parameters
fails with a pointer to the learn command.`,
		Flags: []cli.Flag{checkFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runChecks(ctx, cmd, domain.ModeTesting)
		},
	}
}
