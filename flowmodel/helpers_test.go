package flowmodel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flowform/netgraph"
	"github.com/katalvlaran/flowform/optmodel"
)

// completeMetaGraph builds the complete directed graph on the given
// vertices: one edge per ordered pair of distinct IDs, inserted in nested
// loop order (all edges out of ids[0] first, then ids[1], ...).
func completeMetaGraph(t *testing.T, ids ...string) *netgraph.MetaGraph {
	t.Helper()
	g := netgraph.NewMetaGraph()
	for _, u := range ids {
		for _, v := range ids {
			if u == v {
				continue
			}
			_, err := g.AddEdge(u, v)
			require.NoError(t, err)
		}
	}

	return g
}

// scalarHost exposes only element-wise creation and naming: no BlockModel,
// forcing the builder's fallback path. Delegates to a Recorder.
type scalarHost struct{ rec *optmodel.Recorder }

func (h scalarHost) AddVariable(cat optmodel.VarCategory) (optmodel.Variable, error) {
	return h.rec.AddVariable(cat)
}

func (h scalarHost) SetVariableName(v optmodel.Variable, name string) error {
	return h.rec.SetVariableName(v, name)
}

// namelessHost exposes creation but hides the Namer capability.
type namelessHost struct{ rec *optmodel.Recorder }

func (h namelessHost) AddVariable(cat optmodel.VarCategory) (optmodel.Variable, error) {
	return h.rec.AddVariable(cat)
}

func (h namelessHost) AddVariableBlock(rows, cols int, cat optmodel.VarCategory) ([][]optmodel.Variable, error) {
	return h.rec.AddVariableBlock(rows, cols, cat)
}

// errBackendDown is what the rejecting host fails with.
var errBackendDown = errors.New("backend: variable creation refused")

// rejectingHost refuses every creation request.
type rejectingHost struct{}

func (rejectingHost) AddVariable(optmodel.VarCategory) (optmodel.Variable, error) {
	return nil, errBackendDown
}

// warnCounter is a WarnFunc capturing how often it fired.
type warnCounter struct{ calls int }

func (w *warnCounter) warnf(string, ...any) { w.calls++ }
