// Command rocker is a minimal Linux container runtime: run, init (internal
// re-exec), ps, logs, stop, rm, commit, exec, images, and import.
package main

import (
	"fmt"
	"os"

	"github.com/docker/docker/pkg/reexec"
	"github.com/sirupsen/logrus"

	"github.com/AlexiaChen/rocker/pkg/cli/cmds"
	_ "github.com/AlexiaChen/rocker/pkg/namespace" // registers the "init" reexec entry point
)

func main() {
	// reexec.Init dispatches to a registered entry point (here, "init")
	// when os.Args[0] matches its registered name, and returns true after
	// running it to completion. This is how the runtime re-enters itself
	// as PID 1 inside the new namespaces.
	if reexec.Init() {
		return
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	app := cmds.NewApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
