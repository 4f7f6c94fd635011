package orchestrator

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/AlexiaChen/rocker/pkg/container"
)

// nsEntryOrder fixes the order namespaces are entered in: pid must precede
// mnt, or the mnt namespace switch leaves /proc still showing the old PID
// namespace's view of processes.
var nsEntryOrder = []string{"ipc", "uts", "net", "pid", "mnt"}

// Exec enters a running container's namespaces and spawns command inside
// them, inheriting stdin/stdout/stderr.
func Exec(name, command string) (int, error) {
	store := container.NewStore()
	rec, err := store.Load(name)
	if err != nil {
		return -1, err
	}

	pid, err := strconv.Atoi(rec.PID)
	if err != nil {
		return -1, errors.Wrapf(err, "parsing pid for %s", name)
	}

	env, err := parseEnviron(pid)
	if err != nil {
		return -1, err
	}

	// setns affects only the calling OS thread; pin this goroutine to one
	// thread for the duration of the namespace switch.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for _, ns := range nsEntryOrder {
		if err := enterNamespace(pid, ns); err != nil {
			return -1, errors.Wrapf(err, "entering %s namespace of %s", ns, name)
		}
	}

	args := strings.Fields(command)
	if len(args) == 0 {
		return -1, errors.New("exec: empty command")
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return -1, errors.Wrap(err, "running exec command")
	}
	return 0, nil
}

func enterNamespace(pid int, nsName string) error {
	path := fmt.Sprintf("/proc/%d/ns/%s", pid, nsName)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return unix.Setns(int(f.Fd()), 0)
}

// parseEnviron reads /proc/<pid>/environ, a NUL-separated KEY=VALUE list,
// so the exec'd command sees the same environment as the container's own
// process instead of whatever the caller happens to be running under.
func parseEnviron(pid int) ([]string, error) {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/environ", pid))
	if err != nil {
		return nil, errors.Wrapf(err, "reading environ for pid %d", pid)
	}

	parts := strings.Split(string(data), "\x00")
	env := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			env = append(env, p)
		}
	}
	return env, nil
}
