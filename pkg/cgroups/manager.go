package cgroups

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	subsystemsOnce sync.Once
	subsystemList  []Subsystem
)

// subsystems returns the process-wide subsystem list, in a fixed order
// (cpu, cpuset, memory). It is built exactly once and is safe for
// concurrent read-only use across goroutines thereafter.
func subsystems() []Subsystem {
	subsystemsOnce.Do(func() {
		subsystemList = []Subsystem{
			&cpuSubsystem{},
			&cpusetSubsystem{},
			&memorySubsystem{},
		}
	})
	return subsystemList
}

// Manager owns a single cgroup relative path (typically the container id)
// and fans Set/Apply/Destroy out across all enabled subsystems.
type Manager struct {
	relPath string
}

// NewManager stores the relative path; no I/O happens until Set/Apply/Destroy.
func NewManager(relPath string) *Manager {
	return &Manager{relPath: relPath}
}

// Set applies res across every subsystem, short-circuiting on the first
// error.
func (m *Manager) Set(res *ResourceConfig) error {
	for _, s := range subsystems() {
		if err := s.Set(m.relPath, res); err != nil {
			return errors.Wrapf(err, "cgroup %s: set via %s", m.relPath, s.Name())
		}
	}
	return nil
}

// Apply registers pid with every subsystem, short-circuiting on the first
// error.
func (m *Manager) Apply(pid int) error {
	for _, s := range subsystems() {
		if err := s.Apply(m.relPath, pid); err != nil {
			return errors.Wrapf(err, "cgroup %s: apply via %s", m.relPath, s.Name())
		}
	}
	return nil
}

// Destroy removes the cgroup directory from every subsystem, short-circuiting
// on the first error. Callers on the run exit path treat Destroy failures as
// non-fatal (logged, not re-raised): a leftover empty cgroup directory isn't
// worth failing an otherwise-successful run over.
func (m *Manager) Destroy() error {
	for _, s := range subsystems() {
		if err := s.Remove(m.relPath); err != nil {
			return errors.Wrapf(err, "cgroup %s: destroy via %s", m.relPath, s.Name())
		}
	}
	return nil
}
