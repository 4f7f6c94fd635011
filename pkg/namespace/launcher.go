// Package namespace implements the two-phase self re-exec pattern that turns
// a host process into a namespace-isolated PID 1 inside a new root
// filesystem: Launcher spawns the parent side, containerInitMain (init.go) runs
// as the child after /proc/self/exe re-enters itself as "init <command>".
package namespace

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/docker/docker/pkg/reexec"
	"github.com/pkg/errors"
)

// InitCommandName is the hidden sub-command the runtime re-execs itself as.
const InitCommandName = "init"

// pivotDirEnv carries the per-container pivot_root scratch directory name
// from the parent to the child, so concurrent runs against the same rootfs
// don't collide on a shared ".pivot_root".
const pivotDirEnv = "ROCKER_PIVOT_DIR"

// defaultPivotDirName is used when pivotDirEnv is unset, e.g. if "init" is
// invoked directly without going through Launcher.
const defaultPivotDirName = ".pivot_root"

func init() {
	reexec.Register(InitCommandName, containerInitMain)
}

// Launcher spawns the parent side of a container.
type Launcher struct {
	// Rootfs is the directory that becomes / inside the container.
	Rootfs string
	// Command is the raw command string, split on spaces inside the child.
	Command string
	// ContainerID names this launch's pivot_root scratch directory.
	ContainerID string
	// TTY selects interactive (inherited stdio) vs captured (piped) I/O.
	TTY bool
}

// Process is the running parent-side handle for a launched container.
type Process struct {
	Cmd    *exec.Cmd
	Stdout io.ReadCloser // nil in TTY mode
	Stderr io.ReadCloser // nil in TTY mode

	syncRead  *os.File
	syncWrite *os.File
}

// PivotDirName returns the scratch directory name (relative to Rootfs) used
// as pivot_root's put_old argument for this launch.
func (l *Launcher) PivotDirName() string {
	return defaultPivotDirName + "-" + l.ContainerID
}

// Start ensures the pivot_root scratch directory, wires I/O, and spawns
// /proc/self/exe re-entering itself as "init <command>" with UTS, IPC, PID,
// Mount, and Network namespaces unshared at clone time. The User namespace
// is deliberately not requested: unsharing it strips the capabilities
// (CAP_SYS_ADMIN) the child needs to mount and pivot_root.
func (l *Launcher) Start() (*Process, error) {
	pivotDir := filepath.Join(l.Rootfs, l.PivotDirName())
	if err := os.MkdirAll(pivotDir, 0777); err != nil {
		return nil, errors.Wrapf(err, "creating pivot root scratch dir %s", pivotDir)
	}

	syncRead, syncWrite, err := os.Pipe()
	if err != nil {
		return nil, errors.Wrap(err, "creating sync pipe")
	}

	cmd := reexec.Command(InitCommandName, l.Command)
	cmd.Dir = l.Rootfs
	cmd.Env = append(os.Environ(), pivotDirEnv+"="+l.PivotDirName())
	cmd.ExtraFiles = []*os.File{syncRead}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Cloneflags: syscall.CLONE_NEWUTS | syscall.CLONE_NEWIPC |
			syscall.CLONE_NEWPID | syscall.CLONE_NEWNS | syscall.CLONE_NEWNET,
	}

	proc := &Process{Cmd: cmd, syncRead: syncRead, syncWrite: syncWrite}

	if l.TTY {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		stdout, err := cmd.StdoutPipe()
		if err != nil {
			return nil, errors.Wrap(err, "opening stdout pipe")
		}
		stderr, err := cmd.StderrPipe()
		if err != nil {
			return nil, errors.Wrap(err, "opening stderr pipe")
		}
		proc.Stdout = stdout
		proc.Stderr = stderr
	}

	if err := cmd.Start(); err != nil {
		syncRead.Close()
		syncWrite.Close()
		return nil, errors.Wrap(err, "spawning init")
	}

	// The child inherited the read end via ExtraFiles; the parent has no
	// further use for it.
	syncRead.Close()

	return proc, nil
}

// PID returns the launched process's pid.
func (p *Process) PID() int {
	if p.Cmd.Process == nil {
		return 0
	}
	return p.Cmd.Process.Pid
}

// Wait blocks for the child to exit and returns its exit code.
func (p *Process) Wait() int {
	err := p.Cmd.Wait()
	p.syncWrite.Close()
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		return exitErr.ExitCode()
	}
	return -1
}
