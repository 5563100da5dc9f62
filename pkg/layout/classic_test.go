package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptation-pathways/pathwaymap/pkg/graph"
	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/pathwaymap"
	"github.com/adaptation-pathways/pathwaymap/pkg/sequencegraph"
	"github.com/adaptation-pathways/pathwaymap/pkg/transform"
)

func actWithTippingPoint(name string, tp float64) model.Action {
	return model.Action{
		Name:       name,
		MetricData: map[string]model.MetricValue{"tipping_point": {Value: tp}},
	}
}

func TestClassicHorizontalFollowsTippingPoints(t *testing.T) {
	a := actWithTippingPoint("a", 5)
	b := actWithTippingPoint("b", 10)
	current := actWithTippingPoint("current", 0)

	sg, err := sequencegraph.New([]sequencegraph.Transition{
		{From: current, To: a},
		{From: a, To: b},
	})
	require.NoError(t, err)
	pg, err := transform.SequenceGraphToPathwayGraph(sg)
	require.NoError(t, err)
	pm := transform.PathwayGraphToPathwayMap(pg, "tipping_point")

	tippingPointByAction := TippingPointByAction{"current": 0, "a": 5, "b": 10}
	levelByAction := LevelByActionName{"a": 1, "b": 2}

	result, err := Classic(pm, tippingPointByAction, levelByAction, OverlapSpread{})
	require.NoError(t, err)

	root, err := pm.RootBegin()
	require.NoError(t, err)
	rootEnd := pm.Children(root)[0]
	assert.Equal(t, 0.0, result.Positions[root].X)
	assert.Equal(t, 0.0, result.Positions[rootEnd].X)

	aBegin := pm.Children(rootEnd)[0]
	aEnd := pm.Children(aBegin)[0]
	assert.Equal(t, 5.0, result.Positions[aEnd].X)

	bBegin := pm.Children(aEnd)[0]
	bEnd := pm.Children(bBegin)[0]
	assert.Equal(t, 10.0, result.Positions[bEnd].X)
}

func TestClassicVerticalReservesZeroForRoot(t *testing.T) {
	a := actWithTippingPoint("a", 5)
	current := actWithTippingPoint("current", 0)

	sg, err := sequencegraph.New([]sequencegraph.Transition{{From: current, To: a}})
	require.NoError(t, err)
	pg, err := transform.SequenceGraphToPathwayGraph(sg)
	require.NoError(t, err)
	pm := transform.PathwayGraphToPathwayMap(pg, "tipping_point")

	result, err := Classic(pm, TippingPointByAction{"current": 0, "a": 5}, LevelByActionName{"a": 1}, OverlapSpread{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.YCoordinateByAction["current"])
	assert.NotEqual(t, 0.0, result.YCoordinateByAction["a"])
}

func TestClassicSievesSingleContinuationCombination(t *testing.T) {
	current := actWithTippingPoint("current", 0)
	a := actWithTippingPoint("a", 5)
	combo := model.Action{
		Name:       "a+c",
		MetricData: map[string]model.MetricValue{"tipping_point": {Value: 10}},
		Components: []model.Action{a, actWithTippingPoint("c", 5)},
	}

	sg, err := sequencegraph.New([]sequencegraph.Transition{
		{From: current, To: a},
		{From: a, To: combo},
	})
	require.NoError(t, err)
	pg, err := transform.SequenceGraphToPathwayGraph(sg)
	require.NoError(t, err)
	pm := transform.PathwayGraphToPathwayMap(pg, "tipping_point")

	tippingPointByAction := TippingPointByAction{"current": 0, "a": 5, "a+c": 10}
	levelByAction := LevelByActionName{"a": 1}

	result, err := Classic(pm, tippingPointByAction, levelByAction, OverlapSpread{})
	require.NoError(t, err)

	// "a+c" continues only "a", so it must share a's y-coordinate rather
	// than consume a level of its own.
	comboBegin := beginNodeNamed(pm, "a+c")
	require.NotEqual(t, graph.NodeID(-1), comboBegin)
	assert.Equal(t, result.YCoordinateByAction["a"], result.Positions[comboBegin].Y)
}

func beginNodeNamed(pm *pathwaymap.PathwayMap, name string) graph.NodeID {
	for _, id := range pm.Graph().Nodes() {
		node := pm.Node(id)
		if node.Kind == pathwaymap.KindBegin && node.Action().Name == name {
			return id
		}
	}
	return graph.NodeID(-1)
}
