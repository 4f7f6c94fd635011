package cgroups

import "fmt"

// MountPointNotFoundError is returned when no cgroup v1 hierarchy mounts the
// requested controller.
type MountPointNotFoundError struct {
	Subsystem string
}

func (e *MountPointNotFoundError) Error() string {
	return fmt.Sprintf("cgroup mount point not found for subsystem %q", e.Subsystem)
}

// CgroupWriteError wraps a failed write under a cgroup directory with the
// subsystem and path involved, so callers logging the error can tell which
// controller and file failed without parsing the message.
type CgroupWriteError struct {
	Subsystem string
	Path      string
	Cause     error
}

func (e *CgroupWriteError) Error() string {
	return fmt.Sprintf("cgroup %s: write %s: %v", e.Subsystem, e.Path, e.Cause)
}

func (e *CgroupWriteError) Unwrap() error {
	return e.Cause
}
