package transform

import (
	"github.com/adaptation-pathways/pathwaymap/pkg/graph"
	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/pathwaygraph"
	"github.com/adaptation-pathways/pathwaymap/pkg/pathwaymap"
)

// TippingPointOf looks up an action's own tipping point: the value of its
// tipping-point metric, or 0 if the action does not carry that metric
// (the root action's conventional baseline).
func TippingPointOf(action model.Action, tippingPointMetric string) float64 {
	if v, ok := action.MetricData[tippingPointMetric]; ok {
		return v.Value
	}
	return 0
}

// PathwayGraphToPathwayMap promotes a PathwayGraph to a PathwayMap.
//
// Each distinct action appearing in the pathway graph gets exactly one
// ActionBegin/ActionEnd pair, connected by a lifetime edge. An
// ActionEnd's TippingPoint is the action's own tipping point
// (TippingPointOf(action)); the ActionBegin that a conversion (from, to)
// leads into inherits its TippingPoint from from's own tipping point - the
// point at which the predecessor action ended and this one began.
//
// Forking rule: when an action's ActionEnd would need more than one
// outgoing conversion edge (the action has more than one distinct
// successor across the pathway graph), a duplicate ActionEnd node is
// created to carry the fan-out; the original keeps its incoming lifetime
// edge and gets a single edge to the duplicate, so the map keeps one root.
func PathwayGraphToPathwayMap(pg *pathwaygraph.PathwayGraph, tippingPointMetric string) *pathwaymap.PathwayMap {
	b := pathwaymap.NewBuilder()

	beginID := make(map[string]graph.NodeID)
	endID := make(map[string]graph.NodeID)

	ensure := func(action model.Action, fromTippingPoint float64, haveFrom bool) {
		key := action.Key()
		if _, ok := endID[key]; ok {
			return
		}
		beginTP := fromTippingPoint
		if !haveFrom {
			beginTP = 0
		}
		begin := b.AddBegin(model.ActionBegin{Action: action, TippingPoint: beginTP})
		end := b.AddEnd(model.ActionEnd{Action: action, TippingPoint: TippingPointOf(action, tippingPointMetric)})
		b.AddLifetimeEdge(begin, end)
		beginID[key] = begin
		endID[key] = end
	}

	g := pg.Graph()
	conversions := g.Nodes()

	// First pass: make sure every action that appears has a begin/end
	// pair, using whichever conversion first mentions it as `to` to seed
	// its begin tipping point.
	for _, id := range conversions {
		c := g.Value(id)
		ensure(c.From, 0, false)
		ensure(c.To, TippingPointOf(c.From, tippingPointMetric), true)
	}

	// Second pass: group conversions by From action, in the order each
	// From key was first seen, to decide whether From's ActionEnd needs to
	// fork before fanning out. Iterating in first-seen order (rather than
	// ranging a map) keeps edge insertion deterministic.
	successorsOf := make(map[string][]model.Action)
	fromKeyOrder := make([]string, 0)
	seenSuccessor := make(map[[2]string]bool)
	for _, id := range conversions {
		c := g.Value(id)
		fromKey := c.From.Key()
		pairKey := [2]string{fromKey, c.To.Key()}
		if seenSuccessor[pairKey] {
			continue
		}
		seenSuccessor[pairKey] = true
		if _, ok := successorsOf[fromKey]; !ok {
			fromKeyOrder = append(fromKeyOrder, fromKey)
		}
		successorsOf[fromKey] = append(successorsOf[fromKey], c.To)
	}

	forkOf := make(map[string]graph.NodeID)
	for _, fromKey := range fromKeyOrder {
		if successors := successorsOf[fromKey]; len(successors) > 1 {
			fork := b.ForkEnd(endID[fromKey])
			b.AddConversionEdge(endID[fromKey], fork)
			forkOf[fromKey] = fork
		}
	}

	for _, fromKey := range fromKeyOrder {
		source := endID[fromKey]
		if fork, ok := forkOf[fromKey]; ok {
			source = fork
		}
		for _, to := range successorsOf[fromKey] {
			b.AddConversionEdge(source, beginID[to.Key()])
		}
	}

	return b.Build()
}
