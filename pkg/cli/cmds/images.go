package cmds

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/AlexiaChen/rocker/pkg/image"
)

func newImagesCommand() *cli.Command {
	return &cli.Command{
		Name:   "images",
		Usage:  "list imported images",
		Action: imagesAction,
	}
}

func imagesAction(c *cli.Context) error {
	records, err := image.NewStore().ListAll()
	if err != nil {
		return cli.Exit(err, 1)
	}

	w := tabwriter.NewWriter(os.Stdout, 4, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REPOSITORY\tTAG\tIMAGE ID\tCREATED\tSIZE")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			rec.Name, rec.Tag, rec.ID, rec.CreateTime, image.FormatSize(rec.Size))
	}
	return w.Flush()
}
