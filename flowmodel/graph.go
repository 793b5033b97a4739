// SPDX-License-Identifier: MIT
// Package: flowform/flowmodel
//
// graph.go — the graph contract the formulation builders consume.

package flowmodel

import "github.com/katalvlaran/flowform/netgraph"

// Graph is the narrow view of a directed graph the builders read.
//
// Contract:
//   - Edges() is finite, restartable, and returns an identical order across
//     repeated calls on an unmodified graph; position i is the edge's
//     canonical index.
//   - EdgeCount() is O(1) and equals len(Edges()).
//
// Builders only read the graph, never mutate it. Mutating the graph after
// a build desynchronizes the index mappings; stability between build and
// use is the caller's precondition.
type Graph interface {
	Edges() []netgraph.Edge
	EdgeCount() int
}

// MetadataGraph is a Graph carrying the attachable-metadata capability.
// Attachment requires it: SetGraph rejects a plain Graph with
// ErrUnsupportedGraphType before any variable is created.
// netgraph.MetaGraph satisfies it; convert a plain DiGraph with
// netgraph.WithMetadata.
type MetadataGraph interface {
	Graph

	// AttachableMetadata is the capability marker; it has no behavior.
	AttachableMetadata()
}
