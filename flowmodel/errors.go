// SPDX-License-Identifier: MIT
// Package: flowform/flowmodel
//
// errors.go — sentinel errors for the formulation core.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context via %w at the call site.
//   • Runtime code MUST NOT panic; validation panics are confined to
//     option constructors (WithX...).

package flowmodel

import "errors"

// ErrNoGraphAttached indicates an operation requiring an attached
// GraphModel was invoked on a model with an empty attachment slot.
// Usage: if errors.Is(err, ErrNoGraphAttached) { /* call SetGraph first */ }.
var ErrNoGraphAttached = errors.New("flowmodel: no graph attached to model")

// ErrFormulationNotBuilt indicates an operation requiring a built
// formulation ran before the builder state was populated — SetGraph (or an
// explicit BuildFormulation) has not succeeded for this attachment.
var ErrFormulationNotBuilt = errors.New("flowmodel: formulation not built; attach a graph with SetGraph first")

// ErrUnsupportedGraphType indicates the supplied graph lacks the
// attachable-metadata capability. This is a static precondition: convert
// the graph with netgraph.WithMetadata before attaching.
var ErrUnsupportedGraphType = errors.New("flowmodel: graph lacks attachable metadata; convert with netgraph.WithMetadata")

// ErrUnknownFormulation indicates the dispatcher received a Kind with no
// registered builder. Extending the registry means adding one builder and
// one table entry.
var ErrUnknownFormulation = errors.New("flowmodel: no builder registered for formulation kind")

// ErrUnsupportedOperation indicates a path-specific operation on a
// formulation whose SupportsPath capability is false. This is a capability
// check, not a type check: future formulations opt in via the flag.
var ErrUnsupportedOperation = errors.New("flowmodel: operation not supported by attached formulation")

// ErrVariableCreationFailed indicates the host model rejected a
// variable-creation request. The build is one-shot: no retries.
var ErrVariableCreationFailed = errors.New("flowmodel: host model rejected variable creation")

// ErrNotImplemented marks reserved behavior: the path-registration
// algorithm (and delayed-enumeration semantics) are deliberately left
// unimplemented.
var ErrNotImplemented = errors.New("flowmodel: not implemented")
