package cmds

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/AlexiaChen/rocker/pkg/orchestrator"
)

func newRunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "create and start a container",
		ArgsUsage: "COMMAND [ARG...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "image", Usage: "image NAME[:TAG] to launch the rootfs from"},
			&cli.StringFlag{Name: "name", Usage: "container name (defaults to the generated id)"},
			&cli.BoolFlag{Name: "tty", Aliases: []string{"t"}, Usage: "attach stdio interactively"},
			&cli.StringFlag{Name: "memory", Aliases: []string{"m"}, Usage: "memory limit, e.g. a byte count"},
			&cli.StringFlag{Name: "cpushare", Usage: "relative cpu shares"},
			&cli.StringFlag{Name: "cpuset", Usage: "cpuset.cpus value, e.g. \"0,1\""},
			&cli.StringFlag{Name: "volume", Aliases: []string{"v"}, Usage: "volume spec (accepted, not interpreted)"},
			&cli.StringFlag{Name: "network", Usage: "network spec (accepted, not interpreted)"},
			&cli.StringSliceFlag{Name: "port", Aliases: []string{"p"}, Usage: "port mapping, repeatable"},
		},
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("run: a command is required", 1)
	}

	opts := orchestrator.RunOptions{
		Image:       c.String("image"),
		Name:        c.String("name"),
		TTY:         c.Bool("tty"),
		Command:     strings.Join(c.Args().Slice(), " "),
		Memory:      c.String("memory"),
		CPUShare:    c.String("cpushare"),
		CPUSet:      c.String("cpuset"),
		Volume:      c.String("volume"),
		Network:     c.String("network"),
		PortMapping: c.StringSlice("port"),
	}

	exitCode, err := orchestrator.Run(opts)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
	// The exit code on `run` mirrors the child's exit status verbatim,
	// bypassing urfave/cli's generic exit(1)-on-error path.
	os.Exit(exitCode)
	return nil
}
