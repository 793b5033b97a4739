package netgraph_test

import (
	"fmt"

	"github.com/katalvlaran/flowform/netgraph"
)

// ExampleWithMetadata converts a plain digraph into a metadata-capable one
// and annotates an edge.
func ExampleWithMetadata() {
	plain := netgraph.NewDiGraph()
	plain.AddEdge("A", "B")
	plain.AddEdge("B", "C")

	mg := netgraph.WithMetadata(plain)
	_ = mg.SetEdgeMetadata("A", "B", "capacity", 10)

	meta, _ := mg.EdgeMetadata("A", "B")
	fmt.Println("edges:", mg.EdgeCount())
	fmt.Println("A→B capacity:", meta["capacity"])

	// Output:
	// edges: 2
	// A→B capacity: 10
}

// ExampleDiGraph_Edges shows the position-stable enumeration contract.
func ExampleDiGraph_Edges() {
	g := netgraph.NewDiGraph()
	g.AddEdge("S", "A")
	g.AddEdge("A", "T")
	g.AddEdge("S", "T")

	for i, e := range g.Edges() {
		fmt.Printf("%d: %s→%s\n", i, e.From, e.To)
	}

	// Output:
	// 0: S→A
	// 1: A→T
	// 2: S→T
}
