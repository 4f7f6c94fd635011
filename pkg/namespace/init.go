package namespace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/docker/docker/pkg/mount"
	"github.com/opencontainers/runc/libcontainer/system"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// execSearchPath is, in order, where a bare (non-absolute) command name is
// looked up inside the new root.
var execSearchPath = []string{"/bin", "/usr/bin", "/sbin", "/usr/sbin"}

// containerInitMain is the reexec entry point for "init <command>": PID 1
// inside the new namespaces. It never returns on success; execve replaces
// the process.
func containerInitMain() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "init: missing command")
		os.Exit(1)
	}

	logrus.Debugf("container init: running in user namespace = %v", system.RunningInUserNS())

	if err := runContainerInit(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	// runContainerInit only returns on failure; execve replaces us otherwise.
}

func runContainerInit(command string) error {
	pivotDirName := os.Getenv(pivotDirEnv)
	if pivotDirName == "" {
		pivotDirName = defaultPivotDirName
	}

	if err := pivotRoot(pivotDirName); err != nil {
		return errors.Wrap(err, "pivot_root")
	}
	if err := mountProcAndDev(); err != nil {
		return errors.Wrap(err, "mounting /proc and /dev")
	}

	path, args := resolveExecutable(command)
	env := os.Environ()

	logrus.Debugf("execve %s %v", path, args)
	return syscall.Exec(path, args, env)
}

// pivotRoot makes / a private recursive mount (so none of this leaks back
// to the host's mount namespace), recursively bind-mounts the current
// directory onto itself (pivot_root requires the new root be a mount
// point), pivots, chdirs to the new /, and lazily detaches the old root.
func pivotRoot(pivotDirName string) error {
	if err := mount.MakeRPrivate("/"); err != nil {
		return errors.Wrap(err, "making / private")
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "getwd")
	}
	if err := mount.Mount(cwd, cwd, "bind", "rbind"); err != nil {
		return errors.Wrapf(err, "bind mounting %s onto itself", cwd)
	}

	if err := syscall.PivotRoot(".", pivotDirName); err != nil {
		return errors.Wrap(err, "pivot_root syscall")
	}
	if err := os.Chdir("/"); err != nil {
		return errors.Wrap(err, "chdir /")
	}

	oldRoot := filepath.Join("/", pivotDirName)
	if err := syscall.Unmount(oldRoot, syscall.MNT_DETACH); err != nil {
		return errors.Wrapf(err, "lazily unmounting %s", oldRoot)
	}
	return nil
}

// mountProcAndDev gives the container its own /proc (so process listings
// reflect the new PID namespace, not the host's) and a fresh tmpfs /dev.
func mountProcAndDev() error {
	if err := os.MkdirAll("/proc", 0755); err != nil {
		return errors.Wrap(err, "mkdir /proc")
	}
	if err := os.MkdirAll("/dev", 0755); err != nil {
		return errors.Wrap(err, "mkdir /dev")
	}

	if err := mount.Mount("proc", "/proc", "proc", "noexec,nosuid,nodev"); err != nil {
		return errors.Wrap(err, "mounting /proc")
	}
	if err := mount.Mount("tmpfs", "/dev", "tmpfs", "nosuid,strictatime,mode=755"); err != nil {
		return errors.Wrap(err, "mounting tmpfs on /dev")
	}
	return nil
}

// resolveExecutable splits command on spaces and locates the binary: used
// verbatim if absolute, else searched across execSearchPath, else passed
// through bare and left to execve to fail.
func resolveExecutable(command string) (path string, args []string) {
	args = strings.Fields(command)
	if len(args) == 0 {
		return "", args
	}

	name := args[0]
	if filepath.IsAbs(name) {
		return name, args
	}

	for _, dir := range execSearchPath {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, args
		}
	}
	return name, args
}
