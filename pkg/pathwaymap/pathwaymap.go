// Package pathwaymap builds the third and richest graph view: nodes are
// ActionBegin/ActionEnd pairs, edges are either an action's lifetime
// (begin -> end) or a conversion (end -> begin of the next action, or
// end -> its forked duplicate).
package pathwaymap

import (
	"github.com/adaptation-pathways/pathwaymap/pkg/graph"
	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

// NodeKind distinguishes the two node shapes a pathway map holds.
type NodeKind int

const (
	KindBegin NodeKind = iota
	KindEnd
)

// Node is the tagged union of ActionBegin/ActionEnd stored in the pathway
// map's arena. Node identity (the arena index) is independent of Node
// value equality - the forking rule relies on this to place two distinct
// node identities at the same (Action, TippingPoint).
type Node struct {
	Kind  NodeKind
	Begin model.ActionBegin
	End   model.ActionEnd
}

// Action returns the underlying action regardless of node kind.
func (n Node) Action() model.Action {
	if n.Kind == KindBegin {
		return n.Begin.Action
	}
	return n.End.Action
}

// TippingPoint returns the underlying tipping point regardless of node
// kind.
func (n Node) TippingPoint() float64 {
	if n.Kind == KindBegin {
		return n.Begin.TippingPoint
	}
	return n.End.TippingPoint
}

// PathwayMap is a DAG over Node values, with a single root ActionBegin (the
// "current" action's begin node).
type PathwayMap struct {
	g *graph.RootedGraph[Node]
}

// Builder accumulates a pathway map while a transform walks the pathway
// graph.
type Builder struct {
	g *graph.RootedGraph[Node]
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{g: graph.New[Node]()}
}

// AddBegin adds an ActionBegin node and returns its ID.
func (b *Builder) AddBegin(begin model.ActionBegin) graph.NodeID {
	return b.g.AddNode(Node{Kind: KindBegin, Begin: begin})
}

// AddEnd adds an ActionEnd node and returns its ID.
func (b *Builder) AddEnd(end model.ActionEnd) graph.NodeID {
	return b.g.AddNode(Node{Kind: KindEnd, End: end})
}

// AddLifetimeEdge connects an action's begin node to its end node.
func (b *Builder) AddLifetimeEdge(begin, end graph.NodeID) {
	b.g.AddEdge(begin, end)
}

// AddConversionEdge connects an action's end node to the next action's
// begin node, or to the end node's forked duplicate.
func (b *Builder) AddConversionEdge(end, begin graph.NodeID) {
	b.g.AddEdge(end, begin)
}

// ForkEnd implements the pathway-map forking rule: when an ActionEnd has
// multiple outgoing conversions, a duplicate ActionEnd node carrying the
// same (Action, TippingPoint) serves as the visual fork point. ForkEnd only
// adds the node: the caller connects the original to the returned ID and
// routes the outgoing conversion edges through it instead of the original.
func (b *Builder) ForkEnd(original graph.NodeID) graph.NodeID {
	return b.g.AddNode(b.g.Value(original))
}

// Build finalizes the map being accumulated.
func (b *Builder) Build() *PathwayMap {
	return &PathwayMap{g: b.g}
}

// RootBegin returns the unique ActionBegin node with in-degree 0 - the
// "current" action's begin node.
func (pm *PathwayMap) RootBegin() (graph.NodeID, error) {
	id, err := pm.g.RootNode()
	if err != nil {
		return 0, err
	}
	if pm.g.Value(id).Kind != KindBegin {
		return 0, perrors.New(perrors.CodeEmpty, "pathway map root is not an ActionBegin")
	}
	return id, nil
}

// Node returns the value at id.
func (pm *PathwayMap) Node(id graph.NodeID) Node { return pm.g.Value(id) }

// Children returns the successors of id, in insertion order.
func (pm *PathwayMap) Children(id graph.NodeID) []graph.NodeID { return pm.g.Children(id) }

// Parents returns the predecessors of id, in insertion order.
func (pm *PathwayMap) Parents(id graph.NodeID) []graph.NodeID { return pm.g.Parents(id) }

// NodeCount returns the number of nodes (begins + ends, including forked
// duplicates) in the map.
func (pm *PathwayMap) NodeCount() int { return pm.g.NodeCount() }

// EdgeCount returns the number of edges (lifetimes + conversions) in the
// map.
func (pm *PathwayMap) EdgeCount() int { return pm.g.EdgeCount() }

// Graph exposes the underlying substrate for layout code that walks the
// map directly.
func (pm *PathwayMap) Graph() *graph.RootedGraph[Node] { return pm.g }

// VerifyTippingPoints walks the map in root-to-leaf order and asserts that
// tipping points are non-decreasing along every edge where both endpoints
// carry one (ActionBegin -> ActionEnd within a lifetime, ActionEnd ->
// ActionBegin across a conversion). Returns CodeNonMonotonicTippingPoints
// on the first violation found via DFS preorder.
func (pm *PathwayMap) VerifyTippingPoints() error {
	root, err := pm.RootBegin()
	if err != nil {
		return err
	}
	for _, id := range pm.g.DFSPreorder(root) {
		from := pm.g.Value(id)
		for _, childID := range pm.g.Children(id) {
			to := pm.g.Value(childID)
			if from.TippingPoint() > to.TippingPoint() {
				return perrors.New(
					perrors.CodeNonMonotonicTippingPoints,
					"tipping point decreases from %s (%.4g) to %s (%.4g)",
					from.Action().Name, from.TippingPoint(),
					to.Action().Name, to.TippingPoint(),
				)
			}
		}
	}
	return nil
}
