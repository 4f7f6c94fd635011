package cgroups

import "path/filepath"

const cpusetControllerName = "cpuset"

type cpusetSubsystem struct{}

func (s *cpusetSubsystem) Name() string { return cpusetControllerName }

// Set writes cpuset.cpus, which exists under the same name on v1 and on the
// v2 unified hierarchy once the cpuset controller is enabled.
func (s *cpusetSubsystem) Set(cgroupRel string, res *ResourceConfig) error {
	if res.CPUSet == "" {
		return nil
	}
	path, err := GetCgroupPath(cpusetControllerName, cgroupRel, true)
	if err != nil {
		return err
	}
	return writeControlFile(cpusetControllerName, filepath.Join(path, "cpuset.cpus"), res.CPUSet)
}

func (s *cpusetSubsystem) Apply(cgroupRel string, pid int) error {
	path, err := GetCgroupPath(cpusetControllerName, cgroupRel, true)
	if err != nil {
		return err
	}
	return applyPID(cpusetControllerName, path, pid)
}

func (s *cpusetSubsystem) Remove(cgroupRel string) error {
	path, err := GetCgroupPath(cpusetControllerName, cgroupRel, false)
	if err != nil {
		return err
	}
	return removeCgroupDir(cpusetControllerName, path)
}
