// Package container holds the on-disk container catalog: the ContainerRecord
// type and the MetadataStore that persists it under /var/run/rocker.
package container

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a container record.
type Status string

const (
	StatusRunning Status = "running"
	StatusStopped Status = "stopped"
	StatusExited  Status = "exited"
)

const timeLayout = "2006-01-02 15:04:05"

// Record is the persisted metadata for one container. JSON field names
// match the on-disk config.json format existing deployments already read,
// not Go's default CamelCase.
type Record struct {
	PID         string   `json:"pid"`
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Command     string   `json:"command"`
	CreateTime  string   `json:"createTime"`
	Status      Status   `json:"status"`
	Volume      string   `json:"volume,omitempty"`
	PortMapping []string `json:"portmapping,omitempty"`
	Network     string   `json:"network,omitempty"`
	ImageName   string   `json:"imageName"`
}

// NowUTC formats the current instant the way CreateTime is stored.
func NowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}

// GenerateID derives a 10-digit decimal container id from the nanosecond
// clock. The low digit is perturbed with a byte from a freshly generated
// UUID so that two containers launched in the same nanosecond tick (coarse
// clocks, virtualized hosts) don't collide.
func GenerateID() string {
	tiebreak := int64(uuid.New()[0] % 10)
	n := (time.Now().UnixNano()%10000000000 + tiebreak) % 10000000000
	if n < 0 {
		n = -n
	}
	return fmt.Sprintf("%010d", n)
}
