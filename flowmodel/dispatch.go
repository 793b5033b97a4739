// SPDX-License-Identifier: MIT
// Package: flowform/flowmodel
//
// dispatch.go — the formulation dispatcher: Kind → concrete builder.

package flowmodel

import "fmt"

// builderFunc builds the formulation-specific state for an attached
// GraphModel against the model's host backend. Builders MUST:
//   - Only read the graph, never mutate it.
//   - Return sentinel-wrapped errors; never panic.
//   - Either fully populate their state or fail (no partial output).
type builderFunc func(m *Model, gm *GraphModel) (BuilderState, error)

// formulationBuilders is the capability table: one entry per Kind.
// Registering a new formulation is one builder plus one entry here;
// existing builders stay untouched.
var formulationBuilders = map[Kind]builderFunc{
	EdgeFlow: buildEdgeFlow,
	Path:     buildPath,
}

// BuildFormulation dispatches the attached GraphModel's Kind to its
// registered builder and returns the state the builder produced. It
// stores nothing itself: the attachment manager (SetGraphModel) writes
// the result into the GraphModel.
//
// Calling it again on the same attachment requests fresh variables from
// the host; the state SetGraphModel stored is not replaced.
//
// Errors:
//   - ErrNoGraphAttached when the slot is empty.
//   - ErrUnknownFormulation for a Kind with no table entry.
//   - The builder's own error otherwise.
//
// Complexity: O(1) dispatch + builder cost.
func (m *Model) BuildFormulation() (BuilderState, error) {
	if m.attachment == nil {
		return nil, fmt.Errorf("BuildFormulation: %w", ErrNoGraphAttached)
	}

	gm := m.attachment
	build, ok := formulationBuilders[gm.kind]
	if !ok {
		return nil, fmt.Errorf("BuildFormulation: kind %s: %w", gm.kind, ErrUnknownFormulation)
	}

	return build(m, gm)
}
