package layout

import "github.com/adaptation-pathways/pathwaymap/pkg/pathwaymap"

// ActionLevelByFirstOccurrence derives a default LevelByActionName from the
// order actions are first reached across every root-to-leaf path in pm:
// actions in an earlier path get a lower level than actions in a later
// path, and within a path, earlier actions get a lower level than later
// ones - the first factor dominates the second. Callers that don't have a
// domain-specific stacking order can pass this result straight to Classic.
func ActionLevelByFirstOccurrence(pm *pathwaymap.PathwayMap) (LevelByActionName, error) {
	root, err := pm.RootBegin()
	if err != nil {
		return nil, err
	}

	// No path is longer than the node count, so using it as the per-path
	// stride keeps the path index dominant over the position in a path.
	stride := pm.NodeCount()
	levelByAction := make(LevelByActionName)
	pathIdx := 0
	for _, leaf := range pm.Graph().LeafNodes() {
		for _, path := range pm.Graph().AllPaths(root, leaf) {
			for beginIdx := 0; beginIdx < len(path); beginIdx++ {
				node := pm.Node(path[beginIdx])
				if node.Kind != pathwaymap.KindBegin {
					continue
				}
				name := node.Action().Name
				level := float64(stride*pathIdx + beginIdx)
				if existing, ok := levelByAction[name]; !ok || level < existing {
					levelByAction[name] = level
				}
			}
			pathIdx++
		}
	}
	return levelByAction, nil
}
