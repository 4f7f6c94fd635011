package cgroups

import "path/filepath"

const memoryControllerName = "memory"

type memorySubsystem struct{}

func (s *memorySubsystem) Name() string { return memoryControllerName }

// Set writes memory.limit_in_bytes on v1 or memory.max on v2. The value is
// passed through verbatim: the kernel file only accepts a byte count, and
// unit strings like "100m" are the caller's responsibility to pre-convert.
func (s *memorySubsystem) Set(cgroupRel string, res *ResourceConfig) error {
	if res.MemoryLimit == "" {
		return nil
	}
	path, err := GetCgroupPath(memoryControllerName, cgroupRel, true)
	if err != nil {
		return err
	}

	fileName := "memory.limit_in_bytes"
	if IsCgroupV2() {
		fileName = "memory.max"
	}
	return writeControlFile(memoryControllerName, filepath.Join(path, fileName), res.MemoryLimit)
}

func (s *memorySubsystem) Apply(cgroupRel string, pid int) error {
	path, err := GetCgroupPath(memoryControllerName, cgroupRel, true)
	if err != nil {
		return err
	}
	return applyPID(memoryControllerName, path, pid)
}

func (s *memorySubsystem) Remove(cgroupRel string) error {
	path, err := GetCgroupPath(memoryControllerName, cgroupRel, false)
	if err != nil {
		return err
	}
	return removeCgroupDir(memoryControllerName, path)
}
