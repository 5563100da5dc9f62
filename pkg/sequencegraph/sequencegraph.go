// Package sequencegraph builds the first of the three progressively richer
// graph views described by the pipeline: a rooted DAG whose nodes are
// actions and whose edges mean "action X may be followed by action Y".
package sequencegraph

import (
	"github.com/adaptation-pathways/pathwaymap/pkg/graph"
	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

// Transition is one (from, to) edge of the textual sequence input, already
// resolved to concrete Action values (action combinations are resolved to
// their synthesized Action by the ingest layer before reaching here).
type Transition struct {
	From model.Action
	To   model.Action
}

// SequenceGraph is a rooted DAG over Action values. Actions are
// deduplicated by identity (Name, Edition); self-loops are rejected;
// duplicate edges collapse silently. Successor order preserves the order
// in which the first outgoing edge from a node was added.
type SequenceGraph struct {
	g        *graph.RootedGraph[model.Action]
	idByKey  map[string]graph.NodeID
	hasEdge  map[[2]graph.NodeID]bool
	attrs    map[string]any
}

// New builds a SequenceGraph from an ordered list of transitions.
//
// Returns CodeCycleDetected if accepting all transitions would introduce a
// cycle, CodeEmpty if transitions is empty, or CodeMultipleRoots if the
// resulting graph has more than one in-degree-0 action.
func New(transitions []Transition) (*SequenceGraph, error) {
	sg := &SequenceGraph{
		g:       graph.New[model.Action](),
		idByKey: make(map[string]graph.NodeID),
		hasEdge: make(map[[2]graph.NodeID]bool),
		attrs:   make(map[string]any),
	}
	for _, t := range transitions {
		fromID := sg.nodeFor(t.From)
		toID := sg.nodeFor(t.To)
		if fromID == toID {
			continue // self-loops rejected
		}
		key := [2]graph.NodeID{fromID, toID}
		if sg.hasEdge[key] {
			continue // duplicate edges collapsed silently
		}
		sg.hasEdge[key] = true
		sg.g.AddEdge(fromID, toID)
	}
	if sg.g.NodeCount() == 0 {
		return nil, perrors.New(perrors.CodeEmpty, "sequence graph has no actions")
	}
	for _, id := range sg.g.Nodes() {
		if sg.g.DetectCycle(id) {
			return nil, perrors.New(perrors.CodeCycleDetected, "sequence graph contains a cycle")
		}
	}
	if _, err := sg.g.RootNode(); err != nil {
		return nil, err
	}
	return sg, nil
}

// nodeFor returns the NodeID for action, creating one if this is the first
// time the action's identity has been seen.
func (sg *SequenceGraph) nodeFor(a model.Action) graph.NodeID {
	key := a.Key()
	if id, ok := sg.idByKey[key]; ok {
		return id
	}
	id := sg.g.AddNode(a)
	sg.idByKey[key] = id
	return id
}

// RootNode returns the unique action with in-degree 0.
func (sg *SequenceGraph) RootNode() (model.Action, error) {
	id, err := sg.g.RootNode()
	if err != nil {
		return model.Action{}, err
	}
	return sg.g.Value(id), nil
}

// NrActions returns the number of distinct actions in the graph.
func (sg *SequenceGraph) NrActions() int { return sg.g.NodeCount() }

// NrSequences returns the number of edges in the graph (the spec's name for
// edge_count in this graph flavor).
func (sg *SequenceGraph) NrSequences() int { return sg.g.EdgeCount() }

// ToActions returns the successors of a, in insertion order. Returns nil if
// a is not in the graph.
func (sg *SequenceGraph) ToActions(a model.Action) []model.Action {
	id, ok := sg.idByKey[a.Key()]
	if !ok {
		return nil
	}
	return sg.actionsOf(sg.g.Children(id))
}

// FromActions returns the predecessors of a, in insertion order. Returns
// nil if a is not in the graph.
func (sg *SequenceGraph) FromActions(a model.Action) []model.Action {
	id, ok := sg.idByKey[a.Key()]
	if !ok {
		return nil
	}
	return sg.actionsOf(sg.g.Parents(id))
}

// NrToActions returns len(ToActions(a)).
func (sg *SequenceGraph) NrToActions(a model.Action) int {
	id, ok := sg.idByKey[a.Key()]
	if !ok {
		return 0
	}
	return sg.g.OutDegree(id)
}

// NrFromActions returns len(FromActions(a)).
func (sg *SequenceGraph) NrFromActions(a model.Action) int {
	id, ok := sg.idByKey[a.Key()]
	if !ok {
		return 0
	}
	return sg.g.InDegree(id)
}

// LeafActions returns every action with out-degree 0.
func (sg *SequenceGraph) LeafActions() []model.Action {
	return sg.actionsOf(sg.g.LeafNodes())
}

// SetAttribute records a graph-level metadata value.
func (sg *SequenceGraph) SetAttribute(key string, value any) { sg.attrs[key] = value }

// Attribute retrieves a graph-level metadata value.
func (sg *SequenceGraph) Attribute(key string) (any, bool) {
	v, ok := sg.attrs[key]
	return v, ok
}

// Graph exposes the underlying substrate for transformation code that walks
// the graph directly (e.g. pkg/transform's DFS preorder conversion).
func (sg *SequenceGraph) Graph() *graph.RootedGraph[model.Action] { return sg.g }

func (sg *SequenceGraph) actionsOf(ids []graph.NodeID) []model.Action {
	if len(ids) == 0 {
		return nil
	}
	out := make([]model.Action, len(ids))
	for i, id := range ids {
		out[i] = sg.g.Value(id)
	}
	return out
}
