package orchestrator

import "fmt"

// InvalidStateError is returned when an operation's precondition on a
// container's lifecycle status isn't met (e.g. removing a still-running
// container).
type InvalidStateError struct {
	Name   string
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("container %s: invalid state %q for this operation", e.Name, e.Status)
}
