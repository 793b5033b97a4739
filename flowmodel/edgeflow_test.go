package flowmodel_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flowform/flowmodel"
	"github.com/katalvlaran/flowform/netgraph"
	"github.com/katalvlaran/flowform/optmodel"
)

// EdgeFlowSuite exercises the EdgeFlow builder against the Recorder
// reference backend and the capability-degraded hosts.
type EdgeFlowSuite struct {
	suite.Suite
}

// buildK4 attaches the complete digraph on 4 vertices (12 edges) and
// returns the recorder and the resulting state.
func (s *EdgeFlowSuite) buildK4(opts ...flowmodel.Option) (*optmodel.Recorder, *flowmodel.EdgeFlowState) {
	rec := optmodel.NewRecorder()
	m := flowmodel.Wrap(rec)
	g := completeMetaGraph(s.T(), "A", "B", "C", "D")

	require.NoError(s.T(), m.SetGraph(g, opts...))

	gm, err := m.GraphModel()
	require.NoError(s.T(), err)
	st, ok := gm.EdgeFlowState()
	require.True(s.T(), ok)

	return rec, st
}

// TestCompleteGraphSingleCommodity: K4, default commodity, Continuous →
// a 12×1 block, a 12-entry bijection, and the canonical variable names.
func (s *EdgeFlowSuite) TestCompleteGraphSingleCommodity() {
	rec, st := s.buildK4()

	require.Len(s.T(), st.Flows, 12)
	require.Len(s.T(), st.IndexToEdge, 12)
	require.Len(s.T(), st.EdgeToIndex, 12)
	require.Equal(s.T(), 12, rec.NumVariables())

	seen := make(map[netgraph.Edge]bool, 12)
	for i, e := range st.IndexToEdge {
		require.Len(s.T(), st.Flows[i], 1)
		require.Equal(s.T(), i, st.EdgeToIndex[e], "bijection broken at %d", i)
		require.False(s.T(), seen[e], "edge %v enumerated twice", e)
		seen[e] = true

		want := "flow_" + e.From + "_to_" + e.To + "_commodity_default"
		require.Equal(s.T(), want, rec.Name(st.Flows[i][0]))

		cat, ok := rec.Category(st.Flows[i][0])
		require.True(s.T(), ok)
		require.Equal(s.T(), optmodel.Continuous, cat)
	}
}

// TestThreeCommodities: K4 with commodities A,B,C → a 12×3 block; the
// variable at (edge 5, commodity "B") carries edge 5's endpoints.
func (s *EdgeFlowSuite) TestThreeCommodities() {
	rec, st := s.buildK4(flowmodel.WithCommodities("A", "B", "C"))

	require.Len(s.T(), st.Flows, 12)
	for i := range st.Flows {
		require.Len(s.T(), st.Flows[i], 3)
	}
	require.Equal(s.T(), 36, rec.NumVariables())

	// Insertion order of completeMetaGraph: A→B,A→C,A→D,B→A,B→C,B→D,...
	e5 := st.IndexToEdge[5]
	require.Equal(s.T(), netgraph.Edge{From: "B", To: "D"}, e5)
	require.Equal(s.T(),
		"flow_"+e5.From+"_to_"+e5.To+"_commodity_B",
		rec.Name(st.Flows[5][1]))
}

// TestVariableLookup covers the (edge, label) convenience accessor.
func (s *EdgeFlowSuite) TestVariableLookup() {
	_, st := s.buildK4(flowmodel.WithCommodities("gas", "oil"))

	v, ok := st.Variable(netgraph.Edge{From: "A", To: "B"}, "oil")
	require.True(s.T(), ok)
	require.Equal(s.T(), st.Flows[0][1], v)

	_, ok = st.Variable(netgraph.Edge{From: "A", To: "A"}, "oil")
	require.False(s.T(), ok)
	_, ok = st.Variable(netgraph.Edge{From: "A", To: "B"}, "water")
	require.False(s.T(), ok)
}

// TestScalarFallbackMatchesBlock verifies a host without bulk creation
// yields the identical (edge, commodity) → variable mapping.
func (s *EdgeFlowSuite) TestScalarFallbackMatchesBlock() {
	rec := optmodel.NewRecorder()
	m := flowmodel.Wrap(scalarHost{rec: rec})
	g := completeMetaGraph(s.T(), "A", "B", "C", "D")

	require.NoError(s.T(), m.SetGraph(g, flowmodel.WithCommodities("A", "B", "C")))

	gm, err := m.GraphModel()
	require.NoError(s.T(), err)
	st, ok := gm.EdgeFlowState()
	require.True(s.T(), ok)

	// Element-wise creation is row-major, so handles stay dense in the
	// same order a block request would produce.
	for i, e := range st.IndexToEdge {
		for c, label := range []string{"A", "B", "C"} {
			require.Equal(s.T(), i*3+c, st.Flows[i][c].Index())
			require.Equal(s.T(),
				"flow_"+e.From+"_to_"+e.To+"_commodity_"+label,
				rec.Name(st.Flows[i][c]))
		}
	}
}

// TestNamelessHostDegradesSilently verifies naming is optional.
func (s *EdgeFlowSuite) TestNamelessHostDegradesSilently() {
	rec := optmodel.NewRecorder()
	m := flowmodel.Wrap(namelessHost{rec: rec})
	g := completeMetaGraph(s.T(), "A", "B")

	require.NoError(s.T(), m.SetGraph(g))
	require.True(s.T(), m.HasFormulation())
	require.Equal(s.T(), 2, rec.NumVariables())

	gm, _ := m.GraphModel()
	st, _ := gm.EdgeFlowState()
	require.Equal(s.T(), "", rec.Name(st.Flows[0][0]))
}

// TestFlowCategoryForwarded verifies the configured domain reaches the host.
func (s *EdgeFlowSuite) TestFlowCategoryForwarded() {
	rec, st := s.buildK4(flowmodel.WithFlowCategory(optmodel.Integer))

	cat, ok := rec.Category(st.Flows[7][0])
	require.True(s.T(), ok)
	require.Equal(s.T(), optmodel.Integer, cat)
}

// TestRejectedCreation verifies the one-shot failure path.
func (s *EdgeFlowSuite) TestRejectedCreation() {
	m := flowmodel.Wrap(rejectingHost{})
	g := completeMetaGraph(s.T(), "A", "B", "C")

	err := m.SetGraph(g)
	require.ErrorIs(s.T(), err, flowmodel.ErrVariableCreationFailed)
	require.False(s.T(), m.HasFormulation())
}

// TestEmptyGraph verifies a graph with no edges builds a 0×C block.
func (s *EdgeFlowSuite) TestEmptyGraph() {
	rec := optmodel.NewRecorder()
	m := flowmodel.Wrap(rec)

	require.NoError(s.T(), m.SetGraph(netgraph.NewMetaGraph()))
	require.True(s.T(), m.HasFormulation())
	require.Equal(s.T(), 0, rec.NumVariables())

	gm, _ := m.GraphModel()
	st, ok := gm.EdgeFlowState()
	require.True(s.T(), ok)
	require.Empty(s.T(), st.Flows)
	require.Empty(s.T(), st.IndexToEdge)
}

// TestFlowVarName pins the diagnostic name format.
func (s *EdgeFlowSuite) TestFlowVarName() {
	e := netgraph.Edge{From: "S", To: "T"}
	require.Equal(s.T(), "flow_S_to_T_commodity_default",
		flowmodel.FlowVarName(e, flowmodel.DefaultCommodity))
}

func TestEdgeFlowSuite(t *testing.T) {
	suite.Run(t, new(EdgeFlowSuite))
}
