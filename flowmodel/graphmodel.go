// SPDX-License-Identifier: MIT
// Package: flowform/flowmodel
//
// graphmodel.go — the GraphModel bundle and its functional options.
//
// Contract (strict):
//   • Options are functional (type Option func(*GraphModel)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     runtime code never panics.
//   • Defaults are deterministic: EdgeFlow, eager, Continuous, ["default"].
//   • The builder-state slot is written exactly once, by the attachment
//     manager, after a successful build.

package flowmodel

import "github.com/katalvlaran/flowform/optmodel"

// DefaultCommodity is the single commodity assumed when none are given.
const DefaultCommodity = "default"

// GraphModel bundles a graph with the formulation choice that will be
// built against it. The graph is shared by reference: the caller retains
// ownership and may still mutate it before building, but not safely after.
type GraphModel struct {
	graph       Graph                // shared reference, read-only for builders
	kind        Kind                 // formulation variant to dispatch on
	delayed     bool                 // Path only: enumerate after solving (reserved)
	category    optmodel.VarCategory // decision-variable domain to request
	commodities []string             // ordered commodity labels

	// state is nil until the attachment manager stores a successful
	// build's output; a GraphModel is never partially built.
	state BuilderState
}

// BuilderState is the formulation-specific output of a successful build.
// Concrete states: *EdgeFlowState, *PathState.
type BuilderState interface {
	// Kind identifies the formulation that produced this state.
	Kind() Kind
}

// Option customizes a GraphModel before attachment.
type Option func(*GraphModel)

// WithKind selects the formulation variant. Unknown kinds are accepted
// here and rejected by the dispatcher (ErrUnknownFormulation), keeping
// registration failures observable as errors rather than panics.
func WithKind(k Kind) Option {
	return func(gm *GraphModel) { gm.kind = k }
}

// WithDelayed defers path enumeration until after solving. Meaningful for
// Path formulations only; the semantics are reserved and builders
// currently ignore the flag.
func WithDelayed() Option {
	return func(gm *GraphModel) { gm.delayed = true }
}

// WithFlowCategory sets the decision-variable domain requested from the
// host. Panics on an invalid category (programmer error, fail fast).
func WithFlowCategory(cat optmodel.VarCategory) Option {
	if !cat.Valid() {
		panic("flowmodel: WithFlowCategory(invalid category)")
	}

	return func(gm *GraphModel) { gm.category = cat }
}

// WithCommodities sets the ordered commodity labels, one flow variable set
// per label. Panics on an empty list or a blank label (fail fast); label
// order is preserved and becomes the commodity index order.
func WithCommodities(labels ...string) Option {
	if len(labels) == 0 {
		panic("flowmodel: WithCommodities() needs at least one label")
	}
	for _, l := range labels {
		if l == "" {
			panic("flowmodel: WithCommodities with blank label")
		}
	}

	return func(gm *GraphModel) {
		gm.commodities = append([]string(nil), labels...)
	}
}

// NewGraphModel bundles a graph with formulation settings, applying
// options over deterministic defaults (EdgeFlow, eager, Continuous,
// commodities = [DefaultCommodity]). Panics on a nil graph; the metadata
// capability is checked at attachment, not here.
// Complexity: O(len(opts)).
func NewGraphModel(g Graph, opts ...Option) *GraphModel {
	if g == nil {
		panic("flowmodel: NewGraphModel(nil graph)")
	}

	gm := &GraphModel{
		graph:       g,
		kind:        EdgeFlow,
		category:    optmodel.Continuous,
		commodities: []string{DefaultCommodity},
	}
	for _, opt := range opts {
		opt(gm)
	}

	return gm
}

// Graph returns the shared graph reference.
func (gm *GraphModel) Graph() Graph { return gm.graph }

// Kind returns the formulation variant.
func (gm *GraphModel) Kind() Kind { return gm.kind }

// Delayed reports whether path enumeration is deferred (reserved).
func (gm *GraphModel) Delayed() bool { return gm.delayed }

// FlowCategory returns the decision-variable domain.
func (gm *GraphModel) FlowCategory() optmodel.VarCategory { return gm.category }

// Commodities returns a copy of the ordered commodity labels.
func (gm *GraphModel) Commodities() []string {
	return append([]string(nil), gm.commodities...)
}

// State returns the builder state and whether it is populated. It is
// populated exactly when a build has succeeded for this GraphModel.
func (gm *GraphModel) State() (BuilderState, bool) {
	return gm.state, gm.state != nil
}

// EdgeFlowState returns the state as an *EdgeFlowState, or false when the
// formulation is not a built EdgeFlow.
func (gm *GraphModel) EdgeFlowState() (*EdgeFlowState, bool) {
	st, ok := gm.state.(*EdgeFlowState)

	return st, ok
}
