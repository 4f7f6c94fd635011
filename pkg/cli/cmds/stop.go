package cmds

import (
	"github.com/urfave/cli/v2"

	"github.com/AlexiaChen/rocker/pkg/orchestrator"
)

func newStopCommand() *cli.Command {
	return &cli.Command{
		Name:      "stop",
		Usage:     "stop a running container",
		ArgsUsage: "CONTAINER",
		Action:    stopAction,
	}
}

func stopAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("stop: exactly one container name is required", 1)
	}
	if err := orchestrator.Stop(c.Args().First()); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
