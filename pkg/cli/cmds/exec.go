package cmds

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/AlexiaChen/rocker/pkg/orchestrator"
)

func newExecCommand() *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "run a command inside a running container's namespaces",
		ArgsUsage: "CONTAINER COMMAND [ARG...]",
		Action:    execAction,
	}
}

func execAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return cli.Exit("exec: a container name and a command are required", 1)
	}

	name := c.Args().First()
	command := strings.Join(c.Args().Slice()[1:], " ")

	exitCode, err := orchestrator.Exec(name, command)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
	os.Exit(exitCode)
	return nil
}
