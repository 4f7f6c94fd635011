// Package cmds assembles the urfave/cli sub-commands that make up the
// rocker CLI: one file per sub-command, wired together by NewApp.
package cmds

import (
	"fmt"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/AlexiaChen/rocker/pkg/version"
)

var debugFlag = &cli.BoolFlag{
	Name:    "debug",
	Usage:   "turn on debug logs",
	EnvVars: []string{"ROCKER_DEBUG"},
}

var logFileFlag = &cli.StringFlag{
	Name:    "log",
	Usage:   "write rocker's own diagnostic log to FILE instead of stderr, rotated at 100MB",
	EnvVars: []string{"ROCKER_LOG_FILE"},
}

// NewApp builds the top-level CLI application with every sub-command
// registered.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = version.Program
	app.Usage = "a minimal Linux container runtime"
	app.Version = fmt.Sprintf("%s (%s)", version.Version, version.GitCommit)
	app.Flags = []cli.Flag{debugFlag, logFileFlag}
	app.Before = func(c *cli.Context) error {
		if c.Bool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		if path := c.String("log"); path != "" {
			logrus.SetOutput(&lumberjack.Logger{
				Filename: path,
				MaxSize:  100,
				MaxAge:   28,
				Compress: true,
			})
		}
		return nil
	}
	app.Commands = []*cli.Command{
		newRunCommand(),
		newPSCommand(),
		newLogsCommand(),
		newStopCommand(),
		newRmCommand(),
		newCommitCommand(),
		newExecCommand(),
		newImagesCommand(),
		newImportCommand(),
	}
	return app
}
