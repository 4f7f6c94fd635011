package cgroups

import (
	"os"
	"path/filepath"
	"strconv"
)

// Subsystem is one cgroup controller's view of the world: it can write
// limits, register a pid, and tear itself down. cpu, cpuset, and memory all
// satisfy this with the same shape.
type Subsystem interface {
	Name() string
	Set(cgroupRel string, res *ResourceConfig) error
	Apply(cgroupRel string, pid int) error
	Remove(cgroupRel string) error
}

// tasksFileName returns the file a subsystem directory uses to register
// member pids: "tasks" under v1, "cgroup.procs" under the v2 unified
// hierarchy.
func tasksFileName() string {
	if IsCgroupV2() {
		return "cgroup.procs"
	}
	return "tasks"
}

// writeControlFile writes a plain value to a cgroup control file, created if
// absent, mode 0644.
func writeControlFile(subsystemName, path, value string) error {
	if err := os.WriteFile(path, []byte(value), 0644); err != nil {
		return &CgroupWriteError{Subsystem: subsystemName, Path: path, Cause: err}
	}
	return nil
}

// applyPID writes pid into the subsystem's tasks/cgroup.procs file without
// O_TRUNC: the v2 unified hierarchy rejects truncation on these pseudo-files,
// and a silently-failed truncate would otherwise make the write a no-op.
func applyPID(subsystemName, cgroupDir string, pid int) error {
	path := filepath.Join(cgroupDir, tasksFileName())
	f, err := os.OpenFile(path, os.O_WRONLY, 0644)
	if err != nil {
		return &CgroupWriteError{Subsystem: subsystemName, Path: path, Cause: err}
	}
	defer f.Close()

	if _, err := f.WriteString(strconv.Itoa(pid)); err != nil {
		return &CgroupWriteError{Subsystem: subsystemName, Path: path, Cause: err}
	}
	return f.Sync()
}

// removeCgroupDir deletes the subsystem's cgroup directory.
func removeCgroupDir(subsystemName, cgroupDir string) error {
	if err := os.RemoveAll(cgroupDir); err != nil {
		return &CgroupWriteError{Subsystem: subsystemName, Path: cgroupDir, Cause: err}
	}
	return nil
}
