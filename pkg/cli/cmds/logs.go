package cmds

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/AlexiaChen/rocker/pkg/orchestrator"
)

func newLogsCommand() *cli.Command {
	return &cli.Command{
		Name:      "logs",
		Usage:     "print a container's captured log",
		ArgsUsage: "CONTAINER",
		Action:    logsAction,
	}
}

func logsAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("logs: exactly one container name is required", 1)
	}
	if err := orchestrator.Logs(c.Args().First(), os.Stdout); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
