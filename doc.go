// Package flowform attaches a network-flow formulation to a host
// optimization model.
//
// 🚀 What is flowform?
//
//	A small, pure-Go extension layer that binds a directed metadata graph
//	to an optimization model and materializes flow decision variables for it:
//		• Attachment lifecycle: set, replace, query and remove a graph on a model
//		• Pluggable formulations: edge-based flows today, path-based (column
//		  generation) as a registered extension point
//		• Deterministic variable blocks: one variable per (edge, commodity)
//		  pair, with a stable index ↔ edge bijection and diagnostic names
//
// ✨ Why choose flowform?
//
//   - Narrow contracts – the host model and the graph are consumed through
//     tiny interfaces; bring your own backend
//   - Rock-solid guarantees – sentinel errors, errors.Is branching, no panics
//     outside option constructors
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – register a new formulation kind without touching the
//     existing builders
//
// Everything is organized under three subpackages:
//
//	netgraph/  — directed graph with attachable vertex/edge metadata
//	optmodel/  — host-model contract (variables, categories, capabilities)
//	flowmodel/ — formulation kinds, attachment manager, builders & dispatch
//
// Quick ASCII example:
//
//	    A──▶B
//	    ▲   │
//	    │   ▼
//	    D◀──C
//
//	a 4-cycle; an EdgeFlow build over it creates one flow variable per
//	directed edge and commodity, named flow_A_to_B_commodity_default, ...
//
// Dive into each package's doc.go for the full contracts and examples.
//
//	go get github.com/katalvlaran/flowform
package flowform
