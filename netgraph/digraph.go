// SPDX-License-Identifier: MIT
//
// File: digraph.go
// Role: Plain directed graph with insertion-ordered, position-stable edges.
// Determinism:
//   - Edges() and Vertices() return insertion order; position i is the
//     edge's canonical index for the lifetime of the graph.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package netgraph

import "sync"

// Edge is a directed connection between two vertices, identified by its
// ordered (From, To) pair. Edge is a comparable value type so it can key
// maps directly (the formulation builders index by it).
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string
}

// DiGraph is a simple directed graph: no parallel edges, no self-loops.
//
// Edge enumeration order is the insertion order and is stable across
// repeated calls on an unmodified graph; AddEdge returns the position the
// new edge will occupy in Edges().
type DiGraph struct {
	mu sync.RWMutex // guards all fields below

	vertexOrder []string            // insertion order of vertex IDs
	vertexSet   map[string]struct{} // membership index

	edgeOrder []Edge       // insertion order of edges; position == index
	edgeIndex map[Edge]int // edge → position in edgeOrder
}

// NewDiGraph creates an empty directed graph.
// Complexity: O(1).
func NewDiGraph() *DiGraph {
	return &DiGraph{
		vertexSet: make(map[string]struct{}),
		edgeIndex: make(map[Edge]int),
	}
}

// AddVertex inserts a vertex if absent. Inserting an existing vertex is a
// no-op, not an error.
// Complexity: O(1). Concurrency: write lock.
func (g *DiGraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertexSet[id]; !ok {
		g.vertexSet[id] = struct{}{}
		g.vertexOrder = append(g.vertexOrder, id)
	}

	return nil
}

// AddEdge inserts the directed edge from→to, auto-adding missing endpoints,
// and returns the zero-based position the edge occupies in Edges().
//
// Steps:
//  1. Validate endpoints (ErrEmptyVertexID, ErrLoopNotAllowed).
//  2. Ensure both vertices exist.
//  3. Reject a duplicate ordered pair (ErrDuplicateEdge).
//  4. Append to the order slice and record the position.
//
// Complexity: O(1) amortized. Concurrency: write lock.
func (g *DiGraph) AddEdge(from, to string) (int, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	if from == to {
		return 0, ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	e := Edge{From: from, To: to}
	if _, ok := g.edgeIndex[e]; ok {
		return 0, ErrDuplicateEdge
	}

	// Auto-add endpoints, preserving first-seen order.
	for _, id := range [2]string{from, to} {
		if _, ok := g.vertexSet[id]; !ok {
			g.vertexSet[id] = struct{}{}
			g.vertexOrder = append(g.vertexOrder, id)
		}
	}

	pos := len(g.edgeOrder)
	g.edgeOrder = append(g.edgeOrder, e)
	g.edgeIndex[e] = pos

	return pos, nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1). Concurrency: read lock.
func (g *DiGraph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertexSet[id]

	return ok
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1). Concurrency: read lock.
func (g *DiGraph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edgeIndex[Edge{From: from, To: to}]

	return ok
}

// EdgeIndex returns the stable position of the edge from→to, or
// ErrEdgeNotFound if absent.
// Complexity: O(1). Concurrency: read lock.
func (g *DiGraph) EdgeIndex(from, to string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	pos, ok := g.edgeIndex[Edge{From: from, To: to}]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return pos, nil
}

// Edges returns a copy of all edges in insertion order. The order is
// identical across repeated calls on an unmodified graph; position i is the
// edge's canonical index.
// Complexity: O(E). Concurrency: read lock.
func (g *DiGraph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(1). Concurrency: read lock.
func (g *DiGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgeOrder)
}

// Vertices returns a copy of all vertex IDs in insertion order.
// Complexity: O(V). Concurrency: read lock.
func (g *DiGraph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1). Concurrency: read lock.
func (g *DiGraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertexOrder)
}
