// SPDX-License-Identifier: MIT
//
// File: metagraph.go
// Role: Metadata-capable graph: DiGraph topology + per-vertex/per-edge
//       metadata maps, plus the AttachableMetadata capability marker.

package netgraph

import "sync"

// MetaGraph is a DiGraph with attachable per-vertex and per-edge metadata.
// It is the graph type the flowform formulation layer requires; a plain
// DiGraph must be converted first via WithMetadata.
//
// Metadata values are shared, not deep-copied: callers own what they store.
type MetaGraph struct {
	*DiGraph

	muMeta     sync.RWMutex // guards the metadata maps
	vertexMeta map[string]map[string]any
	edgeMeta   map[Edge]map[string]any
}

// NewMetaGraph creates an empty metadata-capable directed graph.
// Complexity: O(1).
func NewMetaGraph() *MetaGraph {
	return WithMetadata(NewDiGraph())
}

// WithMetadata wraps an existing plain DiGraph with metadata capability.
// The topology is shared, not copied: mutations through either handle are
// visible through both.
// Complexity: O(1).
func WithMetadata(g *DiGraph) *MetaGraph {
	if g == nil {
		g = NewDiGraph()
	}

	return &MetaGraph{
		DiGraph:    g,
		vertexMeta: make(map[string]map[string]any),
		edgeMeta:   make(map[Edge]map[string]any),
	}
}

// AttachableMetadata is the capability marker distinguishing a metadata
// graph from a plain one. It has no behavior; consumers type-assert for it.
func (m *MetaGraph) AttachableMetadata() {}

// SetVertexMetadata stores a key/value pair on an existing vertex.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(1). Concurrency: metadata write lock.
func (m *MetaGraph) SetVertexMetadata(id, key string, value any) error {
	if !m.HasVertex(id) {
		return ErrVertexNotFound
	}
	m.muMeta.Lock()
	defer m.muMeta.Unlock()

	if m.vertexMeta[id] == nil {
		m.vertexMeta[id] = make(map[string]any)
	}
	m.vertexMeta[id][key] = value

	return nil
}

// VertexMetadata returns a copy of the metadata map for the vertex.
// The second result is false if the vertex does not exist.
// Complexity: O(len(meta)). Concurrency: metadata read lock.
func (m *MetaGraph) VertexMetadata(id string) (map[string]any, bool) {
	if !m.HasVertex(id) {
		return nil, false
	}
	m.muMeta.RLock()
	defer m.muMeta.RUnlock()

	return copyMeta(m.vertexMeta[id]), true
}

// SetEdgeMetadata stores a key/value pair on an existing edge.
// Returns ErrEdgeNotFound for an unknown edge.
// Complexity: O(1). Concurrency: metadata write lock.
func (m *MetaGraph) SetEdgeMetadata(from, to, key string, value any) error {
	e := Edge{From: from, To: to}
	if !m.HasEdge(from, to) {
		return ErrEdgeNotFound
	}
	m.muMeta.Lock()
	defer m.muMeta.Unlock()

	if m.edgeMeta[e] == nil {
		m.edgeMeta[e] = make(map[string]any)
	}
	m.edgeMeta[e][key] = value

	return nil
}

// EdgeMetadata returns a copy of the metadata map for the edge from→to.
// The second result is false if the edge does not exist.
// Complexity: O(len(meta)). Concurrency: metadata read lock.
func (m *MetaGraph) EdgeMetadata(from, to string) (map[string]any, bool) {
	if !m.HasEdge(from, to) {
		return nil, false
	}
	m.muMeta.RLock()
	defer m.muMeta.RUnlock()

	return copyMeta(m.edgeMeta[Edge{From: from, To: to}]), true
}

// copyMeta shallow-copies a metadata map; nil in → empty map out.
func copyMeta(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}
