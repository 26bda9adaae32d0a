package domain

import "sync"

// ResultStatus classifies a single verification result.
type ResultStatus string

const (
	StatusPassed  ResultStatus = "passed"
	StatusFailed  ResultStatus = "failed"
	StatusPassx   ResultStatus = "passx"
	StatusAborted ResultStatus = "aborted"
	StatusBlocked ResultStatus = "blocked"
	StatusSkipped ResultStatus = "skipped"
	StatusErrored ResultStatus = "errored"
	StatusInfo    ResultStatus = "info"
)

// Severity ranks statuses for aggregation. Any failing status outranks
// passed, which outranks the informational statuses.
func (s ResultStatus) Severity() int {
	switch s {
	case StatusFailed:
		return 7
	case StatusErrored:
		return 6
	case StatusAborted:
		return 5
	case StatusBlocked:
		return 4
	case StatusPassed:
		return 3
	default:
		// info, skipped, passx
		return 0
	}
}

// Failing reports whether the status counts as a failure of the run.
func (s ResultStatus) Failing() bool {
	switch s {
	case StatusFailed, StatusErrored, StatusAborted, StatusBlocked:
		return true
	}
	return false
}

// Result is one atomic outcome record emitted during a run.
type Result struct {
	Status  ResultStatus `json:"status"`
	Message string       `json:"message"`
}

// Collector accumulates results in call order for the lifetime of one run.
// Appending and reading the aggregate are its only operations; insertion
// order is the canonical order for report rendering, so when fact gathering
// runs concurrently all appends still funnel through the one mutex here.
type Collector struct {
	mu      sync.Mutex
	results []Result
}

// NewCollector creates an empty result collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a result. Results are never removed or reordered.
func (c *Collector) Add(status ResultStatus, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, Result{Status: status, Message: message})
}

// Results returns a copy of the accumulated results in insertion order.
func (c *Collector) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Result, len(c.results))
	copy(out, c.results)
	return out
}

// Overall returns the single aggregate status for the run: the
// highest-severity failing status present, or passed when no result
// failed. An empty collector reports passed as well; a run that performed
// zero checks is treated as vacuously successful.
func (c *Collector) Overall() ResultStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	overall := StatusPassed
	worst := -1
	for _, r := range c.results {
		if r.Status.Failing() && r.Status.Severity() > worst {
			overall = r.Status
			worst = r.Status.Severity()
		}
	}
	return overall
}
