// SPDX-License-Identifier: MIT
// Package: flowform/flowmodel
//
// path.go — the Path formulation: an empty column pool plus the
// capability-gated AddPath entry point. Path registration itself is
// reserved (column generation starts with no columns and grows them
// incrementally; the growing part is not implemented).

package flowmodel

import "fmt"

// PathState is the Path builder's output: the pool of registered path
// columns. A fresh Path build starts empty; AddPath would grow it.
type PathState struct {
	columns []pathColumn
}

// pathColumn records one registered path and its decision variable.
// Unused until path registration is implemented.
type pathColumn struct {
	vertices []string
}

// Kind identifies the formulation that produced this state.
func (s *PathState) Kind() Kind { return Path }

// Paths returns how many path columns are registered.
func (s *PathState) Paths() int { return len(s.columns) }

// buildPath materializes the Path formulation: an empty column pool.
// Creating no variables up front is the point of the formulation; the
// attachment still counts as built (HasFormulation reports true).
// Complexity: O(1).
func buildPath(_ *Model, _ *GraphModel) (BuilderState, error) {
	return &PathState{}, nil
}

// AddPath registers a path (a vertex sequence) with the attached Path
// formulation.
//
// Steps:
//  1. Require an attached GraphModel (ErrNoGraphAttached).
//  2. Capability gate: the attached Kind must report SupportsPath, else
//     ErrUnsupportedOperation — a capability check, not a type check, so
//     future formulations opt in via the flag.
//  3. Registration itself is reserved: ErrNotImplemented. The intended
//     shape, when implemented: validate the path's edges against the
//     attached graph, append a decision variable for flow on the path,
//     and record the column for column-generation use.
//
// Complexity: O(1).
func (m *Model) AddPath(path []string) error {
	if m.attachment == nil {
		return fmt.Errorf("AddPath: %w", ErrNoGraphAttached)
	}
	if !m.attachment.kind.SupportsPath() {
		return fmt.Errorf("AddPath: formulation %s: %w", m.attachment.kind, ErrUnsupportedOperation)
	}

	_ = path // validated once registration lands

	return fmt.Errorf("AddPath: path registration: %w", ErrNotImplemented)
}
