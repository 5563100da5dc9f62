package graph

import (
	"slices"

	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

// NodeID identifies a node within a RootedGraph. Identity is an arena index,
// entirely decoupled from the value stored at that index - two nodes can
// carry equal values (as happens when a pathway map forks an ActionEnd at a
// branching point) while remaining distinct graph entities.
type NodeID int

// invalidNodeID is returned by lookups that fail.
const invalidNodeID NodeID = -1

// RootedGraph is a single-root directed graph over an arena of values of
// type V. Nodes are added in insertion order and that order is preserved by
// Children/Parents/Nodes, so traversals are deterministic.
//
// The zero value is not usable; use New to construct a RootedGraph.
type RootedGraph[V any] struct {
	values   []V
	outgoing [][]NodeID
	incoming [][]NodeID
	root     NodeID
}

// New creates an empty RootedGraph.
func New[V any]() *RootedGraph[V] {
	return &RootedGraph[V]{root: invalidNodeID}
}

// AddNode appends a new node carrying value to the arena and returns its ID.
// The first node ever added becomes the provisional root; every further node
// left without an incoming edge is another node with no parent, at which
// point RootNode reports CodeMultipleRoots.
func (g *RootedGraph[V]) AddNode(value V) NodeID {
	id := NodeID(len(g.values))
	g.values = append(g.values, value)
	g.outgoing = append(g.outgoing, nil)
	g.incoming = append(g.incoming, nil)
	if id == 0 {
		g.root = id
	}
	return id
}

// AddEdge records a directed edge from→to. Both IDs must have been returned
// by AddNode on this graph; behavior is undefined otherwise.
func (g *RootedGraph[V]) AddEdge(from, to NodeID) {
	g.outgoing[from] = append(g.outgoing[from], to)
	g.incoming[to] = append(g.incoming[to], from)
}

// Value returns the value stored at id.
func (g *RootedGraph[V]) Value(id NodeID) V {
	return g.values[id]
}

// SetValue overwrites the value stored at id. Used by transformations that
// duplicate a node's identity while mutating the copy's fields in place
// (the pathway-map forking rule).
func (g *RootedGraph[V]) SetValue(id NodeID, value V) {
	g.values[id] = value
}

// NodeCount returns the number of nodes in the graph.
func (g *RootedGraph[V]) NodeCount() int { return len(g.values) }

// EdgeCount returns the number of edges in the graph.
func (g *RootedGraph[V]) EdgeCount() int {
	count := 0
	for _, out := range g.outgoing {
		count += len(out)
	}
	return count
}

// Nodes returns every node ID in insertion order.
func (g *RootedGraph[V]) Nodes() []NodeID {
	ids := make([]NodeID, len(g.values))
	for i := range ids {
		ids[i] = NodeID(i)
	}
	return ids
}

// Children returns the IDs this node has outgoing edges to, in the order
// the edges were added.
func (g *RootedGraph[V]) Children(id NodeID) []NodeID { return g.outgoing[id] }

// Parents returns the IDs that have outgoing edges to this node, in the
// order the edges were added.
func (g *RootedGraph[V]) Parents(id NodeID) []NodeID { return g.incoming[id] }

// OutDegree returns the number of outgoing edges from id.
func (g *RootedGraph[V]) OutDegree(id NodeID) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to id.
func (g *RootedGraph[V]) InDegree(id NodeID) int { return len(g.incoming[id]) }

// LeafNodes returns the IDs with no outgoing edges, in node-arena order.
func (g *RootedGraph[V]) LeafNodes() []NodeID {
	var leaves []NodeID
	for i, out := range g.outgoing {
		if len(out) == 0 {
			leaves = append(leaves, NodeID(i))
		}
	}
	return leaves
}

// RootNode returns the single node with no incoming edges.
// Returns CodeEmpty if the graph has no nodes, or CodeMultipleRoots if more
// than one node has no incoming edges.
func (g *RootedGraph[V]) RootNode() (NodeID, error) {
	if len(g.values) == 0 {
		return invalidNodeID, perrors.New(perrors.CodeEmpty, "graph has no nodes")
	}
	var roots []NodeID
	for i, in := range g.incoming {
		if len(in) == 0 {
			roots = append(roots, NodeID(i))
		}
	}
	switch len(roots) {
	case 0:
		// Every node has a parent; since AddNode only ever grows the
		// arena, this can only happen on a cyclic graph.
		return invalidNodeID, perrors.New(perrors.CodeCycleDetected, "graph has no root node")
	case 1:
		return roots[0], nil
	default:
		return invalidNodeID, perrors.New(perrors.CodeMultipleRoots, "graph contains %d root nodes", len(roots))
	}
}

// Roots returns every node with in-degree 0, in arena order. Unlike
// RootNode, this never errors - it is used by graph flavors such as the
// pathway graph where several root-level nodes are legitimate (e.g. one
// ActionConversion per outgoing edge of the sequence graph's single root
// action).
func (g *RootedGraph[V]) Roots() []NodeID {
	var roots []NodeID
	for i, in := range g.incoming {
		if len(in) == 0 {
			roots = append(roots, NodeID(i))
		}
	}
	return roots
}

// AllPaths returns every simple directed path from from to to, each as a
// slice of node IDs including both endpoints. Paths are discovered by DFS
// in child-insertion order, so the result order is deterministic.
func (g *RootedGraph[V]) AllPaths(from, to NodeID) [][]NodeID {
	var paths [][]NodeID
	var walk func(current NodeID, path []NodeID, onPath map[NodeID]bool)
	walk = func(current NodeID, path []NodeID, onPath map[NodeID]bool) {
		path = append(path, current)
		if current == to {
			paths = append(paths, slices.Clone(path))
			return
		}
		onPath[current] = true
		for _, child := range g.outgoing[current] {
			if !onPath[child] {
				walk(child, path, onPath)
			}
		}
		delete(onPath, current)
	}
	walk(from, nil, map[NodeID]bool{})
	return paths
}

// DFSPreorder walks the graph depth-first starting at root, visiting each
// reachable node at most once, and returns the nodes in preorder. Children
// are visited in the order their edges were added, making this the
// canonical deterministic traversal order for the whole package.
func (g *RootedGraph[V]) DFSPreorder(root NodeID) []NodeID {
	var order []NodeID
	visited := make([]bool, len(g.values))
	var walk func(id NodeID)
	walk = func(id NodeID) {
		if visited[id] {
			return
		}
		visited[id] = true
		order = append(order, id)
		for _, child := range g.outgoing[id] {
			walk(child)
		}
	}
	walk(root)
	return order
}

// DetectCycle reports whether the graph, considered from root, contains a
// cycle reachable from it. Detection uses classic white/gray/black DFS
// coloring.
func (g *RootedGraph[V]) DetectCycle(root NodeID) bool {
	const (
		white = iota
		gray
		black
	)
	color := make([]int, len(g.values))
	var hasCycle bool
	var dfs func(id NodeID)
	dfs = func(id NodeID) {
		color[id] = gray
		for _, child := range g.outgoing[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
				return
			}
			if hasCycle {
				return
			}
		}
		color[id] = black
	}
	dfs(root)
	return hasCycle
}
