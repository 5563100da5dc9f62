// Package pathwaygraph builds the second of the three graph views: nodes
// are ActionConversion(from, to) tipping points, and edges are periods of
// time between one conversion and the next along a sequence.
package pathwaygraph

import (
	"github.com/adaptation-pathways/pathwaymap/pkg/graph"
	"github.com/adaptation-pathways/pathwaymap/pkg/model"
)

// PathwayGraph is a DAG over ActionConversion values. Unlike SequenceGraph
// and PathwayMap it does not enforce a single root: the sequence graph's
// root action may have several outgoing edges, each of which becomes an
// independent root-level conversion here (see RootConversions).
type PathwayGraph struct {
	g *graph.RootedGraph[model.ActionConversion]
}

// Builder accumulates nodes and edges while a transform walks the sequence
// graph, then yields the finished PathwayGraph.
type Builder struct {
	g         *graph.RootedGraph[model.ActionConversion]
	idByFromTo map[[2]string]graph.NodeID
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		g:          graph.New[model.ActionConversion](),
		idByFromTo: make(map[[2]string]graph.NodeID),
	}
}

// AddConversion records an ActionConversion node if one for (from, to)
// doesn't already exist, and returns its ID either way.
func (b *Builder) AddConversion(conversion model.ActionConversion) graph.NodeID {
	key := [2]string{conversion.From.Key(), conversion.To.Key()}
	if id, ok := b.idByFromTo[key]; ok {
		return id
	}
	id := b.g.AddNode(conversion)
	b.idByFromTo[key] = id
	return id
}

// AddEdge records that the period after `from` conversion flows into `to`
// conversion.
func (b *Builder) AddEdge(from, to graph.NodeID) {
	b.g.AddEdge(from, to)
}

// Build finalizes the graph being accumulated.
func (b *Builder) Build() *PathwayGraph {
	return &PathwayGraph{g: b.g}
}

// RootConversions returns the conversions with no predecessor - the
// sequence-graph root action's outgoing edges, promoted one level of
// detail.
func (pg *PathwayGraph) RootConversions() []model.ActionConversion {
	ids := pg.g.Roots()
	out := make([]model.ActionConversion, len(ids))
	for i, id := range ids {
		out[i] = pg.g.Value(id)
	}
	return out
}

// NodeCount returns the number of ActionConversion nodes.
func (pg *PathwayGraph) NodeCount() int { return pg.g.NodeCount() }

// EdgeCount returns the number of edges between conversions.
func (pg *PathwayGraph) EdgeCount() int { return pg.g.EdgeCount() }

// LeafConversions returns the conversions with no successor.
func (pg *PathwayGraph) LeafConversions() []model.ActionConversion {
	ids := pg.g.LeafNodes()
	out := make([]model.ActionConversion, len(ids))
	for i, id := range ids {
		out[i] = pg.g.Value(id)
	}
	return out
}

// Graph exposes the underlying substrate for transformation code.
func (pg *PathwayGraph) Graph() *graph.RootedGraph[model.ActionConversion] { return pg.g }
