// Package transform implements the two graph-promotion steps of the
// pipeline: sequence graph -> pathway graph -> pathway map. The first walks
// the sequence graph depth-first, preorder, registering conversions in that
// order; the second visits those conversions in the same registration
// order, so that conversions and begin/end pairs are registered in the same
// order the input actions were declared - the ordering downstream layout
// code depends on.
package transform

import (
	"github.com/adaptation-pathways/pathwaymap/pkg/graph"
	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/pathwaygraph"
	"github.com/adaptation-pathways/pathwaymap/pkg/sequencegraph"
)

// SequenceGraphToPathwayGraph promotes a SequenceGraph to a PathwayGraph:
// every edge from->to becomes an ActionConversion(from, to) node, and
// conversions that follow one another along a path in the sequence graph
// are connected by an edge. The sequence graph's root action's outgoing
// conversions become the pathway graph's root-level conversions.
func SequenceGraphToPathwayGraph(sg *sequencegraph.SequenceGraph) (*pathwaygraph.PathwayGraph, error) {
	root, err := sg.RootNode()
	if err != nil {
		return nil, err
	}

	b := pathwaygraph.NewBuilder()
	visited := make(map[graph.NodeID]bool)

	var visit func(prevConversion graph.NodeID, hasPrev bool, action model.Action)
	visit = func(prevConversion graph.NodeID, hasPrev bool, action model.Action) {
		for _, child := range sg.ToActions(action) {
			convID := b.AddConversion(model.ActionConversion{From: action, To: child})
			if hasPrev {
				b.AddEdge(prevConversion, convID)
			}
			if !visited[convID] {
				visited[convID] = true
				visit(convID, true, child)
			}
		}
	}
	visit(0, false, root)

	return b.Build(), nil
}
