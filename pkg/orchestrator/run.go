// Package orchestrator composes the cgroup manager, metadata store, image
// store, and namespace launcher into the `run` command, plus the remaining
// lifecycle operations (ps, logs, stop, rm, commit, exec).
package orchestrator

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AlexiaChen/rocker/pkg/cgroups"
	"github.com/AlexiaChen/rocker/pkg/container"
	"github.com/AlexiaChen/rocker/pkg/image"
	"github.com/AlexiaChen/rocker/pkg/namespace"
)

// legacyBusyboxRootfs is the fallback rootfs used when run is invoked
// without --image: older callers relied on a ./busybox directory in the
// current working directory, and that path is kept working rather than
// broken outright.
const legacyBusyboxRootfs = "./busybox"

// RunOptions mirrors the parsed CLI flags for `run`. Parsing argv into this
// struct is the CLI layer's job (pkg/cli/cmds), not the orchestrator's.
type RunOptions struct {
	Image       string // "name[:tag]"; empty selects the legacy busybox fallback
	Name        string
	TTY         bool
	Command     string
	Memory      string
	CPUShare    string
	CPUSet      string
	Volume      string
	Network     string
	PortMapping []string
}

// Run resolves the rootfs, spawns the container, persists a Running record
// before any cgroup write (so a crash mid-setup still leaves a record an
// operator can find and clean up), applies cgroup limits, captures logs in
// the background for non-TTY runs, waits for exit, and cleans up
// best-effort.
func Run(opts RunOptions) (int, error) {
	rootfs, imageRef, err := resolveRootfs(opts.Image)
	if err != nil {
		return -1, err
	}

	id := container.GenerateID()
	name := opts.Name
	if name == "" {
		name = id
	}

	launcher := &namespace.Launcher{
		Rootfs:      rootfs,
		Command:     opts.Command,
		ContainerID: id,
		TTY:         opts.TTY,
	}
	proc, err := launcher.Start()
	if err != nil {
		return -1, errors.Wrap(err, "starting container")
	}

	store := container.NewStore()
	rec := &container.Record{
		PID:         strconv.Itoa(proc.PID()),
		ID:          id,
		Name:        name,
		Command:     opts.Command,
		CreateTime:  container.NowUTC(),
		Status:      container.StatusRunning,
		Volume:      opts.Volume,
		Network:     opts.Network,
		PortMapping: opts.PortMapping,
		ImageName:   imageRef,
	}
	if err := store.Save(rec); err != nil {
		return -1, errors.Wrap(err, "persisting container record")
	}

	mgr := cgroups.NewManager(id)
	res := &cgroups.ResourceConfig{
		MemoryLimit: opts.Memory,
		CPUShares:   opts.CPUShare,
		CPUSet:      opts.CPUSet,
	}
	if err := mgr.Set(res); err != nil {
		return -1, errors.Wrap(err, "setting cgroup limits")
	}
	if err := mgr.Apply(proc.PID()); err != nil {
		return -1, errors.Wrap(err, "applying cgroup")
	}

	if !opts.TTY {
		logPath := store.LogPath(name)
		go captureLog(logPath, proc.Stdout, true)
		go captureLog(logPath, proc.Stderr, false)
	}

	exitCode := proc.Wait()

	if err := os.RemoveAll(filepath.Join(rootfs, launcher.PivotDirName())); err != nil {
		logrus.Warnf("cleaning up pivot root scratch dir for %s: %v", id, err)
	}
	if err := mgr.Destroy(); err != nil {
		logrus.Warnf("destroying cgroup for %s: %v", id, err)
	}

	if opts.TTY {
		if err := store.Delete(name); err != nil {
			logrus.Warnf("deleting container record %s: %v", name, err)
		}
	} else if err := store.UpdateStatus(name, container.StatusExited); err != nil {
		logrus.Warnf("marking container %s exited: %v", name, err)
	}

	return exitCode, nil
}

// captureLog copies a container's stdout or stderr to container.log. stdout
// creates (truncating) the file, stderr appends; the two goroutines are
// detached and simply exit on their own once the child closes its pipes,
// so there's nothing for the caller to join on.
func captureLog(path string, r io.Reader, create bool) {
	if r == nil {
		return
	}
	flags := os.O_WRONLY | os.O_CREATE | os.O_APPEND
	if create {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		logrus.Warnf("opening log file %s: %v", path, err)
		return
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		logrus.Debugf("log capture for %s ended: %v", path, err)
	}
}

func resolveRootfs(imageRef string) (rootfs, resolvedImageRef string, err error) {
	if imageRef == "" {
		return legacyBusyboxRootfs, "", nil
	}

	name, tag := splitImageRef(imageRef)
	store := image.NewStore()
	if _, err := store.Load(name, tag); err != nil {
		return "", "", errors.Wrapf(err, "resolving image %s", imageRef)
	}
	return store.RootfsPath(name, tag), name + ":" + image.ResolveTag(tag), nil
}

func splitImageRef(ref string) (name, tag string) {
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return ref, ""
}

// rootfsForImageName resolves a persisted ContainerRecord.ImageName
// ("name:tag", or "" for the legacy fallback) back to its rootfs, used by
// commit.
func rootfsForImageName(imageName string) string {
	if imageName == "" {
		return legacyBusyboxRootfs
	}
	name, tag := splitImageRef(imageName)
	return image.NewStore().RootfsPath(name, tag)
}
