package layout

import (
	"sort"

	"github.com/adaptation-pathways/pathwaymap/pkg/graph"
	"github.com/adaptation-pathways/pathwaymap/pkg/pathwaymap"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

// Default lays a pathway map out for diagnostic visualization: x grows by
// one step per begin/end hop along a DFS from the root, pushed rightward
// (never left) when a node is reached again via a second path. y is the
// mean of a node's already-positioned predecessors, with distribute used
// within each x-group to keep coincident nodes apart.
func Default(pm *pathwaymap.PathwayMap) (PositionByNode, error) {
	root, err := pm.RootBegin()
	if err != nil {
		return nil, err
	}

	xByNode := make(map[graph.NodeID]int)
	assignX(pm, root, 0, xByNode)

	positions := make(PositionByNode, len(xByNode))
	for id, x := range xByNode {
		positions[id] = Position{X: float64(x)}
	}

	if err := assignY(pm, xByNode, positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func assignX(pm *pathwaymap.PathwayMap, id graph.NodeID, x int, xByNode map[graph.NodeID]int) {
	if old, ok := xByNode[id]; ok && old >= x {
		return
	}
	xByNode[id] = x
	for _, child := range pm.Children(id) {
		assignX(pm, child, x+1, xByNode)
	}
}

// assignY processes nodes in ascending x order, grouped by identical x;
// within a group every node's y is the mean of its predecessors' y
// (already assigned, since predecessors always sit at a strictly smaller
// x), after which distribute spreads out any coincident values.
func assignY(pm *pathwaymap.PathwayMap, xByNode map[graph.NodeID]int, positions PositionByNode) error {
	order := make([]graph.NodeID, 0, len(xByNode))
	for id := range xByNode {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool {
		if xByNode[order[i]] != xByNode[order[j]] {
			return xByNode[order[i]] < xByNode[order[j]]
		}
		return order[i] < order[j]
	})

	i := 0
	for i < len(order) {
		j := i
		for j < len(order) && xByNode[order[j]] == xByNode[order[i]] {
			j++
		}
		group := order[i:j]

		ys := make([]float64, len(group))
		for k, id := range group {
			parents := pm.Parents(id)
			if len(parents) == 0 {
				ys[k] = 0
				continue
			}
			sum := 0.0
			for _, p := range parents {
				pos, ok := positions[p]
				if !ok {
					return perrors.New(perrors.CodeInvalidInput,
						"default layout: predecessor of node %v not yet positioned", id)
				}
				sum += pos.Y
			}
			ys[k] = sum / float64(len(parents))
		}

		spread := distribute(ys, 1.0)
		for k, id := range group {
			pos := positions[id]
			pos.Y = spread[k]
			positions[id] = pos
		}

		i = j
	}
	return nil
}
