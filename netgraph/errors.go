package netgraph

import "errors"

var (
	// ErrEmptyVertexID indicates a vertex or edge endpoint with an empty ID.
	ErrEmptyVertexID = errors.New("netgraph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("netgraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("netgraph: edge not found")

	// ErrDuplicateEdge indicates a second edge between the same ordered pair.
	ErrDuplicateEdge = errors.New("netgraph: edge already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("netgraph: self-loop not allowed")
)
