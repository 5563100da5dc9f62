package sequencegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

func action(name string) model.Action { return model.Action{Name: name} }

func TestSingleEdge(t *testing.T) {
	sg, err := New([]Transition{{From: action("current"), To: action("a")}})
	require.NoError(t, err)
	assert.Equal(t, 2, sg.NrActions())
	assert.Equal(t, 1, sg.NrSequences())

	root, err := sg.RootNode()
	require.NoError(t, err)
	assert.Equal(t, "current", root.Name)

	succ := sg.ToActions(root)
	require.Len(t, succ, 1)
	assert.Equal(t, "a", succ[0].Name)
}

func TestDivergingSequencePreservesInsertionOrder(t *testing.T) {
	sg, err := New([]Transition{
		{From: action("current"), To: action("a")},
		{From: action("current"), To: action("b")},
		{From: action("current"), To: action("c")},
	})
	require.NoError(t, err)

	succ := sg.ToActions(action("current"))
	require.Len(t, succ, 3)
	assert.Equal(t, "a", succ[0].Name)
	assert.Equal(t, "b", succ[1].Name)
	assert.Equal(t, "c", succ[2].Name)
}

func TestConvergingGraph(t *testing.T) {
	sg, err := New([]Transition{
		{From: action("current"), To: action("a")},
		{From: action("current"), To: action("b")},
		{From: action("current"), To: action("c")},
		{From: action("a"), To: action("d")},
		{From: action("b"), To: action("d")},
		{From: action("c"), To: action("d")},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, sg.NrActions())
	assert.Equal(t, 6, sg.NrSequences())
	assert.Equal(t, 3, sg.NrFromActions(action("d")))

	root, err := sg.RootNode()
	require.NoError(t, err)
	assert.Equal(t, "current", root.Name)
}

func TestSelfLoopRejectedAndDuplicateEdgeCollapsed(t *testing.T) {
	sg, err := New([]Transition{
		{From: action("current"), To: action("a")},
		{From: action("a"), To: action("a")},
		{From: action("current"), To: action("a")},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, sg.NrActions())
	assert.Equal(t, 1, sg.NrSequences())
}

func TestCycleRejected(t *testing.T) {
	_, err := New([]Transition{
		{From: action("current"), To: action("a")},
		{From: action("a"), To: action("b")},
		{From: action("b"), To: action("current")},
	})
	require.Error(t, err)
	assert.Equal(t, perrors.CodeCycleDetected, perrors.GetCode(err))
}

func TestMultipleRootsRejected(t *testing.T) {
	_, err := New([]Transition{
		{From: action("current"), To: action("a")},
		{From: action("other-root"), To: action("b")},
	})
	require.Error(t, err)
	assert.Equal(t, perrors.CodeMultipleRoots, perrors.GetCode(err))
}

func TestEmptyRejected(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
	assert.Equal(t, perrors.CodeEmpty, perrors.GetCode(err))
}
