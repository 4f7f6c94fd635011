package orchestrator

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AlexiaChen/rocker/pkg/container"
	"github.com/AlexiaChen/rocker/pkg/image"
)

// PS lists every known container record. Tabular formatting is the CLI
// layer's job.
func PS() ([]*container.Record, error) {
	return container.NewStore().ListAll()
}

// Logs copies a container's log file verbatim to w.
func Logs(name string, w io.Writer) error {
	store := container.NewStore()
	f, err := os.Open(store.LogPath(name))
	if os.IsNotExist(err) {
		return &container.NotFoundError{Name: name}
	} else if err != nil {
		return errors.Wrapf(err, "opening log for %s", name)
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}

// Stop sends SIGTERM to a running container's pid and marks it stopped.
// Stopping an already-stopped container succeeds silently so repeated
// calls (e.g. from a retrying caller) are safe.
func Stop(name string) error {
	store := container.NewStore()
	rec, err := store.Load(name)
	if err != nil {
		return err
	}
	if rec.Status == container.StatusStopped {
		return nil
	}

	pid, err := strconv.Atoi(rec.PID)
	if err != nil {
		return errors.Wrapf(err, "parsing pid for %s", name)
	}
	if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
		return errors.Wrapf(err, "sending SIGTERM to %s (pid %d)", name, pid)
	}

	rec.PID = ""
	rec.Status = container.StatusStopped
	return store.Save(rec)
}

// Remove deletes a container's record. It refuses containers still running:
// removing a live container's metadata out from under it would orphan the
// process with no way to stop, inspect, or reap it afterward.
func Remove(name string) error {
	store := container.NewStore()
	rec, err := store.Load(name)
	if err != nil {
		return err
	}
	if rec.Status == container.StatusRunning {
		return &InvalidStateError{Name: name, Status: string(rec.Status)}
	}
	return store.Delete(name)
}

// Commit tars up a container's rootfs into <imageName>.tar in the current
// directory. The record is loaded to check the container exists and to find
// its rootfs from the record's image name.
func Commit(name, imageName string) error {
	store := container.NewStore()
	rec, err := store.Load(name)
	if err != nil {
		return err
	}

	rootfs := rootfsForImageName(rec.ImageName)
	outFile := imageName + ".tar"

	cmd := exec.Command("tar", "-czf", outFile, "-C", rootfs, ".")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrapf(err, "tar commit failed: %s", string(out))
	}

	logrus.Infof("committed container %s to %s", name, outFile)

	size := int64(0)
	if info, err := os.Stat(outFile); err == nil {
		size = info.Size()
	}
	fmt.Printf("committed %s as %s (%s)\n", name, outFile, image.FormatSize(size))
	return nil
}
