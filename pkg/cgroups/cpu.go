package cgroups

import (
	"path/filepath"
	"strconv"
)

const cpuControllerName = "cpu"

type cpuSubsystem struct{}

func (s *cpuSubsystem) Name() string { return cpuControllerName }

// Set writes cpu.shares on v1, or converts to cpu.weight on v2 using
// weight = clamp(1, 10000, shares*100/1024), defaulting to 1024 shares
// (weight 100) when the value doesn't parse.
func (s *cpuSubsystem) Set(cgroupRel string, res *ResourceConfig) error {
	if res.CPUShares == "" {
		return nil
	}

	path, err := GetCgroupPath(cpuControllerName, cgroupRel, true)
	if err != nil {
		return err
	}

	if !IsCgroupV2() {
		return writeControlFile(cpuControllerName, filepath.Join(path, "cpu.shares"), res.CPUShares)
	}

	weight := SharesToWeight(res.CPUShares)
	return writeControlFile(cpuControllerName, filepath.Join(path, "cpu.weight"), strconv.FormatInt(weight, 10))
}

// SharesToWeight converts a v1 cpu.shares value into the v2 cpu.weight
// range [1, 10000]. A malformed shares string defaults to 1024 shares,
// i.e. weight 100.
func SharesToWeight(shares string) int64 {
	n, err := strconv.ParseInt(shares, 10, 64)
	if err != nil {
		n = 1024
	}
	weight := n * 100 / 1024
	if weight < 1 {
		weight = 1
	}
	if weight > 10000 {
		weight = 10000
	}
	return weight
}

func (s *cpuSubsystem) Apply(cgroupRel string, pid int) error {
	path, err := GetCgroupPath(cpuControllerName, cgroupRel, true)
	if err != nil {
		return err
	}
	return applyPID(cpuControllerName, path, pid)
}

func (s *cpuSubsystem) Remove(cgroupRel string) error {
	path, err := GetCgroupPath(cpuControllerName, cgroupRel, false)
	if err != nil {
		return err
	}
	return removeCgroupDir(cpuControllerName, path)
}
