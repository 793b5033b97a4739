// SPDX-License-Identifier: MIT
// Package: flowform/flowmodel
//
// edgeflow.go — the EdgeFlow builder: one decision variable per
// (edge, commodity) pair, with a stable index ↔ edge bijection.

package flowmodel

import (
	"fmt"

	"github.com/katalvlaran/flowform/netgraph"
	"github.com/katalvlaran/flowform/optmodel"
)

// EdgeFlowState is the EdgeFlow builder's output: the E×C variable block
// and the bidirectional edge-index mapping.
//
// Invariants at build time:
//   - len(Flows) == E and len(Flows[i]) == C for every i.
//   - EdgeToIndex[IndexToEdge[i]] == i for every i; the mapping is a
//     bijection over the graph's edge set.
//
// Positions are zero-based and stable for the lifetime of the attachment,
// provided the graph is not mutated after the build (caller precondition).
type EdgeFlowState struct {
	// Flows holds the variable handles, indexed (edge position, commodity
	// position).
	Flows [][]optmodel.Variable

	// IndexToEdge maps each zero-based edge position to its edge identity.
	IndexToEdge []netgraph.Edge

	// EdgeToIndex is the exact inverse of IndexToEdge.
	EdgeToIndex map[netgraph.Edge]int

	commodityIndex map[string]int // label → commodity position
}

// Kind identifies the formulation that produced this state.
func (s *EdgeFlowState) Kind() Kind { return EdgeFlow }

// Variable returns the handle for (edge, commodity label).
// The second result is false for an unknown edge or label.
// Complexity: O(1).
func (s *EdgeFlowState) Variable(e netgraph.Edge, commodity string) (optmodel.Variable, bool) {
	i, ok := s.EdgeToIndex[e]
	if !ok {
		return nil, false
	}
	c, ok := s.commodityIndex[commodity]
	if !ok {
		return nil, false
	}

	return s.Flows[i][c], true
}

// FlowVarName is the diagnostic display name assigned to the variable for
// edge e and the given commodity label. Names have no semantic effect.
func FlowVarName(e netgraph.Edge, commodity string) string {
	return "flow_" + e.From + "_to_" + e.To + "_commodity_" + commodity
}

// buildEdgeFlow materializes the EdgeFlow formulation.
//
// Steps:
//  1. Snapshot the edge enumeration; E = len(edges), C = len(commodities).
//  2. Request the E×C variable block: one bulk call when the host
//     implements optmodel.BlockModel, otherwise E·C individual calls with
//     the same (edge, commodity) → variable mapping. Host rejection ⇒
//     ErrVariableCreationFailed (one-shot, no retry).
//  3. Build IndexToEdge from the enumeration positions and its exact
//     inverse EdgeToIndex.
//  4. Name every variable flow_<src>_to_<dst>_commodity_<label> through
//     the optional optmodel.Namer capability; absence of the capability
//     and naming errors degrade silently.
//
// Complexity: O(E·C) time and space.
func buildEdgeFlow(m *Model, gm *GraphModel) (BuilderState, error) {
	// 1) Stable snapshot of the edge order; position i is edge i's index.
	edges := gm.graph.Edges()
	nEdges, nComm := len(edges), len(gm.commodities)

	// 2) Variable block: bulk when supported, element-wise otherwise.
	flows, err := requestBlock(m.host, nEdges, nComm, gm.category)
	if err != nil {
		return nil, err
	}

	// 3) Bidirectional edge-index mapping.
	edgeToIndex := make(map[netgraph.Edge]int, nEdges)
	for i, e := range edges {
		edgeToIndex[e] = i
	}

	// 4) Diagnostic names; degrade silently without the capability.
	if namer, ok := m.host.(optmodel.Namer); ok {
		for i, e := range edges {
			for c, label := range gm.commodities {
				// Naming never fails the build.
				_ = namer.SetVariableName(flows[i][c], FlowVarName(e, label))
			}
		}
	}

	commodityIndex := make(map[string]int, nComm)
	for c, label := range gm.commodities {
		commodityIndex[label] = c
	}

	return &EdgeFlowState{
		Flows:          flows,
		IndexToEdge:    edges,
		EdgeToIndex:    edgeToIndex,
		commodityIndex: commodityIndex,
	}, nil
}

// requestBlock obtains a rows×cols variable block from the host, bulk
// when possible. Any host rejection wraps ErrVariableCreationFailed.
func requestBlock(host optmodel.Model, rows, cols int, cat optmodel.VarCategory) ([][]optmodel.Variable, error) {
	if bulk, ok := host.(optmodel.BlockModel); ok {
		block, err := bulk.AddVariableBlock(rows, cols, cat)
		if err != nil {
			return nil, fmt.Errorf("EdgeFlow: block %dx%d (%s): %v: %w", rows, cols, cat, err, ErrVariableCreationFailed)
		}
		// Shape check: a malformed block would silently corrupt the
		// (edge, commodity) mapping downstream.
		if len(block) != rows {
			return nil, fmt.Errorf("EdgeFlow: host returned %d rows, want %d: %w", len(block), rows, ErrVariableCreationFailed)
		}
		for i := range block {
			if len(block[i]) != cols {
				return nil, fmt.Errorf("EdgeFlow: host returned %d cols in row %d, want %d: %w", len(block[i]), i, cols, ErrVariableCreationFailed)
			}
		}

		return block, nil
	}

	// Fallback: element-wise creation, row-major, same index mapping.
	block := make([][]optmodel.Variable, rows)
	for i := 0; i < rows; i++ {
		row := make([]optmodel.Variable, cols)
		for j := 0; j < cols; j++ {
			v, err := host.AddVariable(cat)
			if err != nil {
				return nil, fmt.Errorf("EdgeFlow: variable (%d,%d) (%s): %v: %w", i, j, cat, err, ErrVariableCreationFailed)
			}
			row[j] = v
		}
		block[i] = row
	}

	return block, nil
}
