package cmds

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/AlexiaChen/rocker/pkg/orchestrator"
)

func newPSCommand() *cli.Command {
	return &cli.Command{
		Name:   "ps",
		Usage:  "list containers",
		Action: psAction,
	}
}

func psAction(c *cli.Context) error {
	records, err := orchestrator.PS()
	if err != nil {
		return cli.Exit(err, 1)
	}

	w := tabwriter.NewWriter(os.Stdout, 4, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPID\tSTATUS\tCOMMAND\tCREATED")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.ID, rec.Name, rec.PID, rec.Status, rec.Command, rec.CreateTime)
	}
	return w.Flush()
}
