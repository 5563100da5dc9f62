package layout

import (
	"math"
	"sort"

	"github.com/adaptation-pathways/pathwaymap/pkg/graph"
	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/pathwaymap"
)

// TippingPointByAction gives the horizontal position each action's
// ActionEnd should sit at. Callers usually derive this from the same
// tipping-point metric used to build the pathway map.
type TippingPointByAction map[string]float64

// LevelByActionName orders actions vertically: a lower level sorts higher
// in the stack (a larger y-coordinate). Actions absent from the map sort
// after those present, in the order Classic encounters them.
type LevelByActionName map[string]float64

// OverlapSpread is the per-axis fraction of the coordinate range to use when
// spreading lines/transitions that would otherwise coincide. A zero value
// on either axis disables spreading on that axis.
type OverlapSpread struct {
	Horizontal float64
	Vertical   float64
}

// ClassicResult is what Classic returns: positions plus the y-coordinate
// chosen for each action name, for building a legend/axis.
type ClassicResult struct {
	Positions           PositionByNode
	YCoordinateByAction map[string]float64
}

// Classic lays a pathway map out metro-style: x follows tipping points, y
// stacks one integer level per distinct action (root excluded, reserved for
// y=0), and an optional overlap-spread pass nudges apart lines/transitions
// that would otherwise sit directly on top of one another.
func Classic(
	pm *pathwaymap.PathwayMap,
	tippingPointByAction TippingPointByAction,
	levelByAction LevelByActionName,
	spread OverlapSpread,
) (ClassicResult, error) {
	root, err := pm.RootBegin()
	if err != nil {
		return ClassicResult{}, err
	}

	positions := make(PositionByNode)
	positions[root] = Position{X: tippingPointByAction[pm.Node(root).Action().Name], Y: 0}
	distributeHorizontally(pm, root, tippingPointByAction, positions)

	yByAction := distributeVertically(pm, root, levelByAction, positions)

	if spread.Horizontal > 0 {
		spreadHorizontally(pm, positions, spread.Horizontal)
	}
	if spread.Vertical > 0 {
		spreadVertically(pm, positions, spread.Vertical)
	}

	return ClassicResult{Positions: positions, YCoordinateByAction: yByAction}, nil
}

// distributeHorizontally assigns x = tipping_point_by_action[end.action] to
// every ActionEnd, and x = x(end) to its forked duplicate, if any, and to
// the ActionBegin(s) it converts into.
func distributeHorizontally(
	pm *pathwaymap.PathwayMap,
	beginID graph.NodeID,
	tippingPointByAction TippingPointByAction,
	positions PositionByNode,
) {
	endID := pm.Children(beginID)[0]
	endX := tippingPointByAction[pm.Node(endID).Action().Name]
	positions[endID] = Position{X: endX}

	for _, nextID := range pm.Children(endID) {
		positions[nextID] = Position{X: endX}
		if pm.Node(nextID).Kind == pathwaymap.KindEnd {
			// A forked duplicate of this ActionEnd carries the fan-out.
			for _, nextBeginID := range pm.Children(nextID) {
				positions[nextBeginID] = Position{X: endX}
				distributeHorizontally(pm, nextBeginID, tippingPointByAction, positions)
			}
			continue
		}
		distributeHorizontally(pm, nextID, tippingPointByAction, positions)
	}
}

// distributeVertically assigns one integer y per distinct action name
// (excluding the root, reserved for y=0), ordered by levelByAction when
// given, and positions every begin/end node accordingly. Action
// combinations that continue exactly one existing action share that
// action's y; combinations continuing several receive a level equal to the
// mean of the continued actions' levels before being placed normally.
func distributeVertically(
	pm *pathwaymap.PathwayMap,
	root graph.NodeID,
	levelByAction LevelByActionName,
	positions PositionByNode,
) map[string]float64 {
	rootAction := pm.Node(root).Action()

	type combinationInfo struct {
		sievedTo   string
		hasSieved  bool
		continuers []string
	}
	combinationOf := make(map[string]combinationInfo)

	// namesAll includes the root action's own name, exactly as every
	// other plain action is counted - the y-coordinate range is sized
	// against the total count, then the slot reserved for y=0 and the
	// root's name are dropped together, keeping the two lists the same
	// length.
	var namesAll []string
	seen := make(map[string]bool)
	for _, id := range pm.Graph().Nodes() {
		node := pm.Node(id)
		if node.Kind != pathwaymap.KindBegin {
			continue
		}
		action := node.Action()
		if !action.IsCombination() {
			if !seen[action.Name] {
				seen[action.Name] = true
				namesAll = append(namesAll, action.Name)
			}
			continue
		}
		if action.Name == rootAction.Name {
			continue
		}

		continued := continuedActionNames(action, pm)
		if len(continued) == 1 {
			combinationOf[action.Name] = combinationInfo{sievedTo: continued[0], hasSieved: true}
			continue
		}
		if len(continued) > 1 {
			combinationOf[action.Name] = combinationInfo{continuers: continued}
		}
		if !seen[action.Name] {
			seen[action.Name] = true
			namesAll = append(namesAll, action.Name)
		}
	}

	k := len(namesAll)
	top := int(math.Floor(float64(k) / 2))
	bottom := -int(math.Floor(float64(k-1) / 2))
	levels := make([]float64, 0, k)
	for y := top; y >= bottom; y-- {
		if y == 0 {
			continue
		}
		levels = append(levels, float64(y))
	}

	for name, info := range combinationOf {
		if len(info.continuers) == 0 {
			continue
		}
		sum := 0.0
		for _, continuer := range info.continuers {
			sum += levelByAction[continuer]
		}
		levelByAction[name] = sum / float64(len(info.continuers))
	}

	var names []string
	for _, name := range namesAll {
		if name != rootAction.Name {
			names = append(names, name)
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		li, iok := levelByAction[names[i]]
		lj, jok := levelByAction[names[j]]
		if iok != jok {
			return iok
		}
		return li < lj
	})

	yByAction := make(map[string]float64, k+1)
	for i, name := range names {
		yByAction[name] = levels[i]
	}
	yByAction[rootAction.Name] = 0

	for _, id := range pm.Graph().Nodes() {
		node := pm.Node(id)
		if node.Kind != pathwaymap.KindBegin || node.Action().Name == rootAction.Name {
			continue
		}
		action := node.Action()
		lookupName := action.Name
		if info, ok := combinationOf[action.Name]; ok && info.hasSieved {
			lookupName = info.sievedTo
		}
		y := yByAction[lookupName]
		pos := positions[id]
		pos.Y = y
		positions[id] = pos

		endID := pm.Children(id)[0]
		endPos := positions[endID]
		endPos.Y = y
		positions[endID] = endPos

		for _, forkID := range pm.Children(endID) {
			if pm.Node(forkID).Kind == pathwaymap.KindEnd {
				forkPos := positions[forkID]
				forkPos.Y = y
				positions[forkID] = forkPos
			}
		}
	}

	rootEndID := pm.Children(root)[0]
	rootEndPos := positions[rootEndID]
	rootEndPos.Y = 0
	positions[rootEndID] = rootEndPos
	rootPos := positions[root]
	rootPos.Y = 0
	positions[root] = rootPos

	return yByAction
}

// continuedActionNames returns the distinct plain-action names among
// combo's components that already appear as a non-combination action
// elsewhere in the map.
func continuedActionNames(combo model.Action, pm *pathwaymap.PathwayMap) []string {
	plain := make(map[string]bool)
	for _, id := range pm.Graph().Nodes() {
		node := pm.Node(id)
		if node.Kind == pathwaymap.KindBegin && !node.Action().IsCombination() {
			plain[node.Action().Name] = true
		}
	}
	var names []string
	seen := make(map[string]bool)
	for _, component := range combo.Components {
		if plain[component.Name] && !seen[component.Name] {
			seen[component.Name] = true
			names = append(names, component.Name)
		}
	}
	return names
}

// spreadHorizontally nudges apart ActionEnd -> ActionBegin transitions that
// share an x-coordinate, grouping by overlap of the y-range they span and,
// within a group, by the distinct action a transition belongs to (sections
// of a shared route stay aligned).
func spreadHorizontally(pm *pathwaymap.PathwayMap, positions PositionByNode, spreadFraction float64) {
	type transition struct {
		end, begin graph.NodeID
	}
	byX := make(map[float64][]transition)
	minX, maxX := math.Inf(1), math.Inf(-1)

	for _, id := range pm.Graph().Nodes() {
		node := pm.Node(id)
		if node.Kind != pathwaymap.KindEnd {
			continue
		}
		children := pm.Children(id)
		if len(children) == 0 {
			continue
		}
		x := positions[id].X
		for _, b := range children {
			byX[x] = append(byX[x], transition{end: id, begin: b})
		}
		minX = math.Min(minX, x)
	}
	for _, id := range pm.Graph().Nodes() {
		if pm.Node(id).Kind == pathwaymap.KindEnd && len(pm.Children(id)) == 0 {
			maxX = math.Max(maxX, positions[id].X)
		}
	}
	if math.IsInf(minX, 1) {
		return
	}
	rangeX := maxX - minX

	for x, transitions := range byX {
		regions := make([]Region, len(transitions))
		for i, t := range transitions {
			lo, hi := positions[t.end].Y, positions[t.begin].Y
			if lo > hi {
				lo, hi = hi, lo
			}
			regions[i] = Region{Low: lo, High: hi}
		}
		for _, group := range groupOverlappingRegions(regions) {
			byAction := make(map[string][]transition)
			var actionOrder []string
			for _, idx := range group {
				t := transitions[idx]
				name := pm.Node(t.end).Action().Name
				if _, ok := byAction[name]; !ok {
					actionOrder = append(actionOrder, name)
				}
				byAction[name] = append(byAction[name], t)
			}
			coords := distribute(repeat(x, len(actionOrder)), spreadFraction*rangeX)
			for i, name := range actionOrder {
				for _, t := range byAction[name] {
					endPos := positions[t.end]
					endPos.X = coords[i]
					positions[t.end] = endPos
					beginPos := positions[t.begin]
					beginPos.X = coords[i]
					positions[t.begin] = beginPos
				}
			}
		}
	}
}

// spreadVertically nudges apart action lines (begin/end pairs) that share a
// y-coordinate, grouping by overlap of the x-range they span and, within a
// group, by action identity.
func spreadVertically(pm *pathwaymap.PathwayMap, positions PositionByNode, spreadFraction float64) {
	type section struct {
		begin, end graph.NodeID
	}
	byY := make(map[float64][]section)
	minY, maxY := math.Inf(1), math.Inf(-1)

	for _, id := range pm.Graph().Nodes() {
		node := pm.Node(id)
		if node.Kind != pathwaymap.KindBegin {
			continue
		}
		children := pm.Children(id)
		if len(children) == 0 {
			continue
		}
		endID := children[0]
		y := positions[id].Y
		byY[y] = append(byY[y], section{begin: id, end: endID})
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	if math.IsInf(minY, 1) {
		return
	}
	rangeY := maxY - minY

	for y, sections := range byY {
		regions := make([]Region, len(sections))
		for i, s := range sections {
			regions[i] = Region{Low: positions[s.begin].X, High: positions[s.end].X}
		}
		for _, group := range groupOverlappingRegions(regions) {
			byAction := make(map[string][]section)
			var actionOrder []string
			for _, idx := range group {
				s := sections[idx]
				name := pm.Node(s.begin).Action().Name
				if _, ok := byAction[name]; !ok {
					actionOrder = append(actionOrder, name)
				}
				byAction[name] = append(byAction[name], s)
			}
			coords := distribute(repeat(y, len(actionOrder)), spreadFraction*rangeY)
			for i, name := range actionOrder {
				for _, s := range byAction[name] {
					beginPos := positions[s.begin]
					beginPos.Y = coords[i]
					positions[s.begin] = beginPos
					endPos := positions[s.end]
					endPos.Y = coords[i]
					positions[s.end] = endPos
				}
			}
		}
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
