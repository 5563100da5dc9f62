package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

func TestRootNode(t *testing.T) {
	g := New[string]()
	_, err := g.RootNode()
	require.Error(t, err)
	assert.Equal(t, perrors.CodeEmpty, perrors.GetCode(err))

	root := g.AddNode("current")
	leaf := g.AddNode("retreat")
	g.AddEdge(root, leaf)

	got, err := g.RootNode()
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestRootNodeMultipleRoots(t *testing.T) {
	g := New[string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	_ = a
	_ = b

	_, err := g.RootNode()
	require.Error(t, err)
	assert.Equal(t, perrors.CodeMultipleRoots, perrors.GetCode(err))
}

func TestLeafNodesAndDegree(t *testing.T) {
	g := New[string]()
	root := g.AddNode("current")
	left := g.AddNode("seawall")
	right := g.AddNode("retreat")
	g.AddEdge(root, left)
	g.AddEdge(root, right)

	assert.Equal(t, 2, g.OutDegree(root))
	assert.Equal(t, 0, g.InDegree(root))
	leaves := g.LeafNodes()
	assert.ElementsMatch(t, []NodeID{left, right}, leaves)
}

func TestDFSPreorderIsDeterministicAndInsertionOrdered(t *testing.T) {
	g := New[string]()
	root := g.AddNode("current")
	second := g.AddNode("seawall")
	first := g.AddNode("levee")
	// Edges added out of node-ID order - DFS must follow edge insertion
	// order, not arena order.
	g.AddEdge(root, first)
	g.AddEdge(root, second)

	order := g.DFSPreorder(root)
	require.Len(t, order, 3)
	assert.Equal(t, []NodeID{root, first, second}, order)
}

func TestAllPaths(t *testing.T) {
	g := New[string]()
	root := g.AddNode("current")
	mid := g.AddNode("levee")
	leaf1 := g.AddNode("retreat")
	leaf2 := g.AddNode("seawall")
	g.AddEdge(root, mid)
	g.AddEdge(mid, leaf1)
	g.AddEdge(root, leaf2)

	paths := g.AllPaths(root, leaf1)
	require.Len(t, paths, 1)
	assert.Equal(t, []NodeID{root, mid, leaf1}, paths[0])

	none := g.AllPaths(leaf1, leaf2)
	assert.Empty(t, none)
}

func TestDetectCycle(t *testing.T) {
	g := New[string]()
	root := g.AddNode("current")
	mid := g.AddNode("levee")
	g.AddEdge(root, mid)
	assert.False(t, g.DetectCycle(root))

	g.AddEdge(mid, root)
	assert.True(t, g.DetectCycle(root))
}

func TestSetValueDecouplesIdentityFromEquality(t *testing.T) {
	g := New[int]()
	a := g.AddNode(5)
	b := g.AddNode(5)
	assert.NotEqual(t, a, b)
	assert.Equal(t, g.Value(a), g.Value(b))

	g.SetValue(b, 9)
	assert.Equal(t, 5, g.Value(a))
	assert.Equal(t, 9, g.Value(b))
}
