// Package flowmodel attaches a network-flow formulation to a host
// optimization model and builds the formulation's decision variables.
//
// # Architecture
//
// A flowmodel.Model wraps a host backend (any optmodel.Model) by explicit
// composition and carries a single attachment slot holding at most one
// GraphModel. A GraphModel bundles the graph, the formulation Kind, the
// commodity list, the variable category and the delayed flag, plus the
// builder state produced once the formulation is built.
//
// Data flow:
//
//	SetGraph ──▶ attachment slot ──▶ BuildFormulation (dispatch by Kind)
//	                                      │
//	                 EdgeFlow ◀───────────┴───────────▶ Path
//	                 (E×C variable block,              (empty column pool,
//	                  index ↔ edge bijection)           registration reserved)
//
// The dispatcher looks the Kind up in a builder table; registering a new
// formulation is one table entry plus one builder, without touching the
// existing ones. An unknown Kind fails with ErrUnknownFormulation.
//
// # Capability contract
//
// Kind.SupportsPath gates path-specific operations: AddPath on a
// formulation without the capability fails with ErrUnsupportedOperation
// regardless of path content. The Path formulation's registration
// algorithm itself is reserved (ErrNotImplemented), as is the semantics of
// the delayed flag.
//
// # Build atomicity
//
// A GraphModel is never partially built: SetGraph either populates the
// builder state or leaves it empty and returns the error. After a failed
// build the attachment remains (so the caller can inspect it), but
// HasFormulation reports false and CheckFormulation fails; treat such a
// model as unusable for formulation-dependent operations.
//
// # Preconditions
//
// The graph must carry attachable metadata (netgraph.MetaGraph or any
// MetadataGraph); a plain graph is rejected up front with
// ErrUnsupportedGraphType — convert with netgraph.WithMetadata first.
// The graph must not be mutated between building a formulation and using
// its index mappings; edge-position stability is a precondition, not
// something the builders re-verify.
//
// # Concurrency
//
// All operations are synchronous and run to completion or fail
// immediately. The attachment slot is a plain field with no lock: one
// logical owner manipulates a given Model at a time; callers needing
// concurrent access must serialize externally.
//
// # Errors
//
//	ErrNoGraphAttached        - operation requires an attached GraphModel.
//	ErrFormulationNotBuilt    - operation requires a built formulation.
//	ErrUnsupportedGraphType   - graph lacks attachable metadata.
//	ErrUnknownFormulation     - no builder registered for the Kind.
//	ErrUnsupportedOperation   - formulation lacks the path capability.
//	ErrVariableCreationFailed - host rejected variable creation.
//	ErrNotImplemented         - reserved behavior (path registration).
//
// Branch with errors.Is; replacing an existing attachment is a warning
// through the model's warnf hook, not an error.
package flowmodel
