package plotexport

import (
	"encoding/json"
	"sort"

	"github.com/adaptation-pathways/pathwaymap/pkg/layout"
	"github.com/adaptation-pathways/pathwaymap/pkg/pathwaymap"
)

// Options carries the plot-level decorations a back-end would apply: title,
// axis label, and the legend/overshoot toggles spec.md's plot commands
// expose as flags.
type Options struct {
	Title      string
	XLabel     string
	ShowLegend bool
	Overshoot  bool
}

type jsonNode struct {
	ID      int     `json:"id"`
	Kind    string  `json:"kind"`
	Action  string  `json:"action"`
	Edition int     `json:"edition,omitempty"`
	Color   string  `json:"color,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

type jsonEdge struct {
	From int    `json:"from"`
	To   int    `json:"to"`
	Kind string `json:"kind"`
}

type jsonLegendEntry struct {
	Action string  `json:"action"`
	Color  string  `json:"color,omitempty"`
	Y      float64 `json:"y"`
}

type jsonOutput struct {
	Title      string            `json:"title,omitempty"`
	XLabel     string            `json:"x_label,omitempty"`
	ShowLegend bool              `json:"show_legend"`
	Overshoot  bool              `json:"overshoot"`
	Nodes      []jsonNode        `json:"nodes"`
	Edges      []jsonEdge        `json:"edges"`
	Legend     []jsonLegendEntry `json:"legend,omitempty"`
}

// RenderClassicJSON serializes a Classic layout result to the JSON document
// an external plotting back-end reads to draw strokes: every node's
// position and style, every lifetime/conversion edge, and (if requested) a
// legend of the non-root actions ordered by vertical level.
func RenderClassicJSON(pm *pathwaymap.PathwayMap, result layout.ClassicResult, opts Options) ([]byte, error) {
	out := jsonOutput{
		Title:      opts.Title,
		XLabel:     opts.XLabel,
		ShowLegend: opts.ShowLegend,
		Overshoot:  opts.Overshoot,
	}

	colorByName := make(map[string]string)
	for _, id := range pm.Graph().Nodes() {
		node := pm.Node(id)
		pos := result.Positions[id]
		action := node.Action()
		if action.Design.Color != "" {
			colorByName[action.Name] = action.Design.Color
		}
		out.Nodes = append(out.Nodes, jsonNode{
			ID:      int(id),
			Kind:    kindLabel(node),
			Action:  action.Name,
			Edition: action.Edition,
			Color:   action.Design.Color,
			X:       pos.X,
			Y:       pos.Y,
		})
		for _, childID := range pm.Children(id) {
			out.Edges = append(out.Edges, jsonEdge{From: int(id), To: int(childID), Kind: edgeKind(node)})
		}
	}

	if opts.ShowLegend {
		rootName := ""
		if root, err := pm.RootBegin(); err == nil {
			rootName = pm.Node(root).Action().Name
		}
		names := make([]string, 0, len(result.YCoordinateByAction))
		for name := range result.YCoordinateByAction {
			if name != rootName {
				names = append(names, name)
			}
		}
		sort.Slice(names, func(i, j int) bool {
			return result.YCoordinateByAction[names[i]] < result.YCoordinateByAction[names[j]]
		})
		for _, name := range names {
			out.Legend = append(out.Legend, jsonLegendEntry{
				Action: name,
				Color:  colorByName[name],
				Y:      result.YCoordinateByAction[name],
			})
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

func kindLabel(node pathwaymap.Node) string {
	if node.Kind == pathwaymap.KindBegin {
		return "begin"
	}
	return "end"
}

func edgeKind(node pathwaymap.Node) string {
	if node.Kind == pathwaymap.KindBegin {
		return "lifetime"
	}
	return "conversion"
}
