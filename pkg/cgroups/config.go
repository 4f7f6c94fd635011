package cgroups

// ResourceConfig carries the optional limits a container was launched with.
// An absent (empty string) field instructs the corresponding subsystem to
// leave that axis alone on Set.
type ResourceConfig struct {
	MemoryLimit string
	CPUShares   string
	CPUSet      string
}
