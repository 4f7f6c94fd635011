package cmds

import (
	"github.com/urfave/cli/v2"

	"github.com/AlexiaChen/rocker/pkg/orchestrator"
)

func newRmCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "remove a stopped or exited container",
		ArgsUsage: "CONTAINER",
		Action:    rmAction,
	}
}

func rmAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("rm: exactly one container name is required", 1)
	}
	if err := orchestrator.Remove(c.Args().First()); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
