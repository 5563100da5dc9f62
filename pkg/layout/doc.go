// Package layout assigns 2-D coordinates to pathway-map nodes. Two layouts
// are provided: Default, a quick diagnostic layout that simply pushes nodes
// rightward as the map is walked, and Classic, the metro-style layout driven
// by tipping points and used for production plots. Both compute a
// PositionByNode independently of the graph itself - graphs stay logically
// immutable once built.
package layout

import "github.com/adaptation-pathways/pathwaymap/pkg/graph"

// Position is a node's 2-D coordinate.
type Position struct {
	X float64
	Y float64
}

// PositionByNode maps every laid-out node to its coordinate.
type PositionByNode map[graph.NodeID]Position
