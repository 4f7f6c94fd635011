package cmds

import (
	"github.com/urfave/cli/v2"

	"github.com/AlexiaChen/rocker/pkg/orchestrator"
)

func newCommitCommand() *cli.Command {
	return &cli.Command{
		Name:      "commit",
		Usage:     "tar a container's rootfs into an image file",
		ArgsUsage: "CONTAINER IMAGE_NAME",
		Action:    commitAction,
	}
}

func commitAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("commit: container name and image name are required", 1)
	}
	if err := orchestrator.Commit(c.Args().Get(0), c.Args().Get(1)); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
