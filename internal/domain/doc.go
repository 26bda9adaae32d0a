// Package domain defines the core domain types for ospfwatch.
//
// This package contains the fundamental entities and value objects for
// OSPF neighbor state capture and verification: fact trees, checks, run
// modes and result accumulation.
//
// # Fact Trees
//
// FactTree is the nested device / interface / neighbor / attribute
// structure every run produces and consumes. All three levels preserve
// insertion order, so a learned tree walks, compares and reports in the
// order it was gathered. Presence is tri-state throughout: a key can be
// absent, present and empty, or populated, and the three mean different
// things to a comparison.
//
// # Checks
//
// Check describes one verifiable aspect of OSPF neighbor state: the
// device command that produces it and the neighbor attributes it cares
// about. The built-in checks cover neighbor IP addresses and neighbor
// adjacency state.
//
// # Runs and Results
//
// RunMode selects between learning (capture current state as expected
// parameters) and testing (compare current state against them).
// Collector accumulates ordered Results during a run; the overall
// verdict is the most severe failing status, or PASSED when nothing
// failed.
//
// # Design Principles
//
// - No database or external dependencies
// - Pure domain logic without infrastructure concerns
// - Deterministic ordering end to end
package domain
