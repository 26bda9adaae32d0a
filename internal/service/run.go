package service

import (
	"context"
	"fmt"
	"log"

	"ospfwatch/internal/adapter"
	"ospfwatch/internal/domain"
	"ospfwatch/internal/repository"
)

// Outcome is everything a report needs about one completed run.
type Outcome struct {
	Check   domain.Check
	Mode    domain.RunMode
	Overall domain.ResultStatus
	Results []domain.Result
	// Parameters is the expected tree the run verified against, or the
	// freshly learned tree in learning mode. Exposed verbatim for report
	// templating.
	Parameters *domain.FactTree
}

// Runner executes one check in a fixed mode against a fixed target set.
// The mode never changes within a run.
type Runner struct {
	mode    domain.RunMode
	check   domain.Check
	targets []string
	facts   *FactService
	compare *CompareService
	store   repository.Store
	results *domain.Collector
}

// NewRunner wires a runner from its collaborators. All result emission
// from collection and comparison funnels through the one collector so a
// report can be generated uniformly regardless of mode.
func NewRunner(mode domain.RunMode, check domain.Check, targets []string,
	probe adapter.Probe, store repository.Store, results *domain.Collector) *Runner {
	return &Runner{
		mode:    mode,
		check:   check,
		targets: targets,
		facts:   NewFactService(probe, results),
		compare: NewCompareService(results),
		store:   store,
		results: results,
	}
}

// Run executes the check and returns the run outcome.
//
// Learning mode gathers current state and persists it as the expected
// parameters; a persistence failure fails the run. Testing mode loads
// the expected parameters, gathers current state and compares the two;
// a missing snapshot is a hard stop with an actionable message and
// comparison is never attempted.
func (r *Runner) Run(ctx context.Context) *Outcome {
	log.Printf("Running check %s in %s mode", r.check.Name, r.mode)

	var parameters *domain.FactTree

	switch r.mode {
	case domain.ModeLearning:
		observed := r.facts.Collect(ctx, r.check, r.targets)
		if err := r.store.SaveSnapshot(ctx, r.check.Name, observed); err != nil {
			log.Printf("Failed to save learned parameters: %v", err)
			r.results.Add(domain.StatusFailed,
				fmt.Sprintf("Failed to save learned parameters: %v", err))
		} else {
			r.results.Add(domain.StatusPassed,
				"Successfully learned current state and saved to parameters")
		}
		parameters = observed

	case domain.ModeTesting:
		expected, err := r.store.LoadSnapshot(ctx, r.check.Name)
		if err != nil {
			r.results.Add(domain.StatusFailed,
				fmt.Sprintf("Failed to load expected parameters: %v", err))
			break
		}
		if expected.Empty() {
			r.results.Add(domain.StatusFailed,
				"No expected parameters found. Run in learning mode first.")
			break
		}
		parameters = expected

		observed := r.facts.Collect(ctx, r.check, r.targets)
		r.compare.Compare(observed, expected, r.check)

		if r.results.Overall() == domain.StatusPassed {
			r.results.Add(domain.StatusPassed,
				"All expected values on all devices verified successfully")
		}
	}

	overall := r.results.Overall()
	log.Printf("Check %s finished: %s", r.check.Name, overall)

	return &Outcome{
		Check:      r.check,
		Mode:       r.mode,
		Overall:    overall,
		Results:    r.results.Results(),
		Parameters: parameters,
	}
}
