package overlap

// Package overlap aggregates independently authored availability sets over
// the shared weekly grid. It computes per-slot participation counts,
// classifies coverage into bands and lists the slots where everyone is
// available. All functions are pure and total over their documented inputs.
