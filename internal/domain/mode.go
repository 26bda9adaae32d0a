package domain

// RunMode selects which branch of a run executes. It is fixed for the
// lifetime of the run.
type RunMode string

const (
	// ModeLearning captures current facts and persists them as ground truth.
	ModeLearning RunMode = "learning"
	// ModeTesting compares current facts against previously learned truth.
	ModeTesting RunMode = "testing"
)
