package cgroups

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/moby/sys/mountinfo"
)

// unifiedMountPoint is where the kernel exposes the cgroup v2 unified
// hierarchy.
const unifiedMountPoint = "/sys/fs/cgroup"

var (
	v2Once   sync.Once
	v2Result bool
)

// IsCgroupV2 reports whether the host mounts the unified (v2) cgroup
// hierarchy, detected from /proc/self/mountinfo. The result is cached for
// the life of the process: the host's cgroup mode can't change underneath
// a running rocker invocation.
func IsCgroupV2() bool {
	v2Once.Do(func() {
		infos, err := mountinfo.GetMounts(mountinfo.FSTypeFilter("cgroup2"))
		v2Result = err == nil && len(infos) > 0
	})
	return v2Result
}

// FindMountPoint locates the mount point that exposes the named controller.
//
// On cgroup v2 it always returns the unified hierarchy root: policy
// decisions about whether a controller is actually enabled via
// cgroup.subtree_control are left to the caller.
//
// On cgroup v1 it parses /proc/self/mountinfo for a cgroup-type mount whose
// superblock options list the controller name.
func FindMountPoint(subsystem string) (string, error) {
	if IsCgroupV2() {
		return unifiedMountPoint, nil
	}

	infos, err := mountinfo.GetMounts(mountinfo.FSTypeFilter("cgroup"))
	if err != nil {
		return "", err
	}
	for _, info := range infos {
		for _, opt := range strings.Split(info.VFSOptions, ",") {
			if opt == subsystem {
				return info.Mountpoint, nil
			}
		}
	}
	return "", &MountPointNotFoundError{Subsystem: subsystem}
}

// GetCgroupPath composes the on-disk cgroup directory for a controller and
// relative path, optionally creating it.
func GetCgroupPath(subsystem, cgroupRel string, autoCreate bool) (string, error) {
	mountPoint, err := FindMountPoint(subsystem)
	if err != nil {
		return "", err
	}

	cgroupPath := filepath.Join(mountPoint, cgroupRel)
	if _, err := os.Stat(cgroupPath); err == nil {
		return cgroupPath, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if !autoCreate {
		return cgroupPath, nil
	}
	if err := os.MkdirAll(cgroupPath, 0755); err != nil {
		return "", err
	}
	return cgroupPath, nil
}
