package cmds

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/AlexiaChen/rocker/pkg/image"
)

func newImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import a tarball as a new image",
		ArgsUsage: "TAR_FILE IMAGE[:TAG]",
		Action:    importAction,
	}
}

func importAction(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("import: a tar file and an image[:tag] are required", 1)
	}

	tarPath := c.Args().Get(0)
	name, tag := splitImageRef(c.Args().Get(1))

	logrus.Debugf("importing from %s", filepath.Base(tarPath))

	rec, err := image.NewStore().Import(tarPath, name, tag)
	if err != nil {
		return cli.Exit(err, 1)
	}

	logrus.Infof("imported %s:%s (%s)", rec.Name, rec.Tag, image.FormatSize(rec.Size))
	fmt.Printf("imported %s:%s (%s)\n", rec.Name, rec.Tag, image.FormatSize(rec.Size))
	return nil
}

func splitImageRef(ref string) (name, tag string) {
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}
