package adapter

import (
	"context"

	"ospfwatch/internal/domain"
)

// ProbeResult is the outcome of executing one command on one device.
type ProbeResult struct {
	DeviceName string
	Command    string
	// Output is the raw CLI output as returned by the device.
	Output string
	// Data is the parsed, structured form of the output.
	Data *ProbeData
}

// ProbeData is the structured view a parser produces from command output:
// the set of interfaces with active adjacencies and their neighbors.
type ProbeData struct {
	Interfaces *domain.DeviceFacts `json:"interfaces,omitempty"`
}

// Probe executes a command on a set of target devices and returns the
// per-device results keyed by device name. A device absent from the
// returned map failed entirely (unreachable, authentication failure,
// unparseable output); callers degrade that to a result record and move
// on rather than aborting the run.
type Probe interface {
	Execute(ctx context.Context, command string, targets []string) map[string]*ProbeResult
}
