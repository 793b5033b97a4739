// Package optmodel defines the contract between flowform and a host
// optimization model: variable categories, opaque variable handles, and the
// small set of interfaces a backend implements to receive flow variables.
//
// # Required vs. optional capabilities
//
// A backend only has to implement Model (create one variable at a time).
// Everything else is an optional capability discovered by type assertion,
// in the manner of net/http's optional ResponseWriter interfaces:
//
//	Model      — AddVariable(cat): the required minimum.
//	BlockModel — AddVariableBlock(rows, cols, cat): bulk creation; the
//	             edge-flow builder prefers one block request over E·C
//	             individual round-trips when available.
//	Namer      — SetVariableName: diagnostic names; absence degrades
//	             silently, names carry no semantics.
//	Solver     — Solve(ctx): used by callers after a formulation is built,
//	             never by the formulation core itself.
//
// # Recorder
//
// Recorder is the in-memory reference backend (Model + BlockModel + Namer):
// dense integer handles, per-variable category bookkeeping, and name
// recall. It is what the tests and examples run against, and a reasonable
// starting point for adapters to real solver backends.
//
// Recorder is not safe for concurrent use; one logical owner at a time,
// matching the single-threaded model of the formulation core.
package optmodel
