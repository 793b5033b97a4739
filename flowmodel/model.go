// SPDX-License-Identifier: MIT
// Package: flowform/flowmodel
//
// model.go — the attachment manager: a Model wraps a host backend and a
// single attachment slot holding at most one GraphModel.
//
// Lifecycle:
//   SetGraph/SetGraphModel — warn-and-replace if occupied, then build.
//   RemoveGraph            — clear; no-op when empty.
//   HasGraph/GraphModel    — slot queries.
//   HasFormulation/CheckFormulation — built-state queries.

package flowmodel

import (
	"fmt"
	"log"

	"github.com/katalvlaran/flowform/optmodel"
)

// WarnFunc receives non-fatal diagnostics (Printf-style).
type WarnFunc func(format string, args ...any)

// ModelOption customizes a Model at wrap time.
type ModelOption func(*Model)

// WithWarnf overrides the warning sink (default: log.Printf).
// Panics on nil to surface programmer error early.
func WithWarnf(fn WarnFunc) ModelOption {
	if fn == nil {
		panic("flowmodel: WithWarnf(nil)")
	}

	return func(m *Model) { m.warnf = fn }
}

// Model wraps a host optimization backend by explicit composition and
// owns the single attachment slot. The slot is a plain field: one logical
// owner per Model; serialize externally for concurrent use.
type Model struct {
	host  optmodel.Model
	warnf WarnFunc

	attachment *GraphModel // nil when no graph is attached
}

// Wrap composes a Model around a host backend.
// Panics on a nil host (programmer error, fail fast).
// Complexity: O(len(opts)).
func Wrap(host optmodel.Model, opts ...ModelOption) *Model {
	if host == nil {
		panic("flowmodel: Wrap(nil host)")
	}

	m := &Model{host: host, warnf: log.Printf}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Host returns the wrapped backend.
func (m *Model) Host() optmodel.Model { return m.host }

// HasGraph reports whether the attachment slot is populated.
// Complexity: O(1).
func (m *Model) HasGraph() bool { return m.attachment != nil }

// GraphModel returns the attached GraphModel, or ErrNoGraphAttached when
// the slot is empty.
// Complexity: O(1).
func (m *Model) GraphModel() (*GraphModel, error) {
	if m.attachment == nil {
		return nil, fmt.Errorf("GraphModel: %w", ErrNoGraphAttached)
	}

	return m.attachment, nil
}

// SetGraph bundles a graph with options (see NewGraphModel defaults) and
// attaches it. The graph must carry attachable metadata; a plain graph is
// rejected with ErrUnsupportedGraphType before any variable is created.
// Complexity: O(len(opts)) + cost of the dispatched build.
func (m *Model) SetGraph(g Graph, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("SetGraph: nil graph: %w", ErrUnsupportedGraphType)
	}

	return m.SetGraphModel(NewGraphModel(g, opts...))
}

// SetGraphModel stores gm in the attachment slot and immediately builds
// its formulation.
//
// Steps:
//  1. Require the attachable-metadata capability (ErrUnsupportedGraphType).
//  2. If the slot is occupied, warn (non-fatal) that it will be replaced.
//  3. Store gm, discarding any prior attachment and clearing any builder
//     state gm carries from an earlier attachment.
//  4. Dispatch the build; on success store the state on gm.
//
// On build failure the slot keeps gm with empty builder state and the
// error propagates: the model is attached but unusable for
// formulation-dependent operations (HasFormulation reports false).
// Complexity: O(1) + cost of the dispatched build.
func (m *Model) SetGraphModel(gm *GraphModel) error {
	if gm == nil {
		panic("flowmodel: SetGraphModel(nil)")
	}
	if _, ok := gm.graph.(MetadataGraph); !ok {
		return fmt.Errorf("SetGraphModel: %w", ErrUnsupportedGraphType)
	}

	if m.attachment != nil {
		m.warnf("flowmodel: model already has a graph attached; replacing it")
	}
	m.attachment = gm
	// Drop any state from a previous attachment of this GraphModel: the
	// slot must never report a formulation this build did not produce.
	gm.state = nil

	st, err := m.BuildFormulation()
	if err != nil {
		return fmt.Errorf("SetGraphModel: %w", err)
	}
	gm.state = st

	return nil
}

// RemoveGraph clears the attachment slot. Removing an absent attachment
// is a no-op, not an error.
// Complexity: O(1).
func (m *Model) RemoveGraph() { m.attachment = nil }

// HasFormulation reports whether a graph is attached AND its builder
// state is populated.
// Complexity: O(1).
func (m *Model) HasFormulation() bool {
	return m.attachment != nil && m.attachment.state != nil
}

// CheckFormulation returns ErrFormulationNotBuilt unless HasFormulation;
// the wrapped message points the caller at SetGraph.
// Complexity: O(1).
func (m *Model) CheckFormulation() error {
	if !m.HasFormulation() {
		return fmt.Errorf("CheckFormulation: %w", ErrFormulationNotBuilt)
	}

	return nil
}
