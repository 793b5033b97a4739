// Package netgraph provides the directed graph consumed by the flowform
// formulation builders: a plain DiGraph plus a metadata-capable MetaGraph.
//
// # Design
//
// The formulation core assigns every edge a stable integer position, so the
// graph's contract is stricter than a generic adjacency structure:
//
//   - Edges() returns edges in insertion order, identical across repeated
//     calls on an unmodified graph. Position i in the returned slice is the
//     edge's canonical index.
//   - Parallel edges are rejected (ErrDuplicateEdge): a second edge between
//     the same ordered pair would break the index ↔ edge bijection the
//     builders rely on.
//   - Self-loops are rejected (ErrLoopNotAllowed): a flow variable on a loop
//     carries no routing meaning.
//
// # Plain vs. metadata graphs
//
// DiGraph is the plain structure. MetaGraph wraps a DiGraph and adds
// per-vertex and per-edge metadata maps together with the
// AttachableMetadata marker the flowmodel package requires. A plain DiGraph
// must be converted first:
//
//	mg := netgraph.WithMetadata(plain)
//
// # Concurrency
//
// All DiGraph operations take an internal sync.RWMutex: mutations under the
// write lock, queries under the read lock. MetaGraph guards its metadata
// maps with a second lock. Note that the stability of edge positions is a
// precondition of the formulation builders, not something locks can give
// you: do not mutate a graph between building a formulation and using its
// index mappings.
//
// # Errors
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrDuplicateEdge  - an edge between the ordered pair already exists.
//	ErrLoopNotAllowed - self-loop attempted.
package netgraph
