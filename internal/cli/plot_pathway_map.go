package cli

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adaptation-pathways/pathwaymap/pkg/ingest"
	"github.com/adaptation-pathways/pathwaymap/pkg/layout"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
	"github.com/adaptation-pathways/pathwaymap/pkg/plotexport"
	"github.com/adaptation-pathways/pathwaymap/pkg/sequencegraph"
	"github.com/adaptation-pathways/pathwaymap/pkg/transform"
)

const tippingPointMetric = "tipping_point"

type plotPathwayMapOpts struct {
	title      string
	xLabel     string
	showLegend bool
	overshoot  bool
	spreadRaw  string
}

// plotPathwayMapCommand renders a pathway map from the artifacts
// generate-pathway-input produces into a JSON layout, the input <basename>
// resolving to "<basename>.sequences.txt" (required) plus the optional
// "<basename>.xpositions.txt" and "<basename>.styles.txt" side files.
func (c *CLI) plotPathwayMapCommand() *cobra.Command {
	opts := plotPathwayMapOpts{}

	cmd := &cobra.Command{
		Use:   "plot-pathway-map <basename> <plot_output>",
		Short: "Lay out a pathway map and export it as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlotPathwayMap(args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "plot title")
	cmd.Flags().StringVar(&opts.xLabel, "x_label", "", "x-axis label")
	cmd.Flags().BoolVar(&opts.showLegend, "show_legend", false, "include an action-color legend")
	cmd.Flags().BoolVar(&opts.overshoot, "overshoot", false, "extend lines past their final tipping point")
	cmd.Flags().StringVar(&opts.spreadRaw, "spread", "", "overlap spread as <h> or <h>,<v>")

	return cmd
}

func (c *CLI) runPlotPathwayMap(basename, plotOutput string, opts *plotPathwayMapOpts) error {
	spread, err := parseSpread(opts.spreadRaw)
	if err != nil {
		return err
	}

	sequencesPath := basename + ".sequences.txt"
	c.Logger.Infof("Reading sequences from %s", sequencesPath)
	transitions, err := readSequences(sequencesPath)
	if err != nil {
		return err
	}

	xpositionsPath := basename + ".xpositions.txt"
	xpositionByKey, hasXPositions, err := readXPositions(xpositionsPath)
	if err != nil {
		return err
	}
	if hasXPositions {
		c.Logger.Infof("Merging tipping points from %s", xpositionsPath)
		transitions = ingest.MergeTransitionTippingPoints(transitions, xpositionByKey, tippingPointMetric)
	}

	stylesPath := basename + ".styles.txt"
	if colorByName, ok, err := readStyles(stylesPath); err != nil {
		return err
	} else if ok {
		c.Logger.Infof("Merging action styles from %s", stylesPath)
		transitions = mergeTransitionStyles(transitions, colorByName)
	}

	sg, err := sequencegraph.New(transitions)
	if err != nil {
		return err
	}
	pg, err := transform.SequenceGraphToPathwayGraph(sg)
	if err != nil {
		return err
	}
	pm := transform.PathwayGraphToPathwayMap(pg, tippingPointMetric)
	if err := pm.VerifyTippingPoints(); err != nil {
		return err
	}

	tippingPointByAction := layout.TippingPointByAction{}
	if hasXPositions {
		byName, err := ingest.TippingPointByActionName(xpositionByKey)
		if err != nil {
			return err
		}
		tippingPointByAction = byName
	}

	levelByAction, err := layout.ActionLevelByFirstOccurrence(pm)
	if err != nil {
		return err
	}

	result, err := layout.Classic(pm, tippingPointByAction, levelByAction, spread)
	if err != nil {
		return err
	}

	data, err := plotexport.RenderClassicJSON(pm, result, plotexport.Options{
		Title:      opts.title,
		XLabel:     opts.xLabel,
		ShowLegend: opts.showLegend,
		Overshoot:  opts.overshoot,
	})
	if err != nil {
		return err
	}

	if err := writeFileAtomically(plotOutput, data); err != nil {
		return err
	}
	c.Logger.Infof("Wrote %s", plotOutput)
	return nil
}

func parseSpread(raw string) (layout.OverlapSpread, error) {
	if raw == "" {
		return layout.OverlapSpread{}, nil
	}
	parts := strings.Split(raw, ",")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return layout.OverlapSpread{}, perrors.Wrap(perrors.CodeMalformedLine, err, "invalid --spread %q", raw)
		}
		return layout.OverlapSpread{Horizontal: v, Vertical: v}, nil
	case 2:
		h, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return layout.OverlapSpread{}, perrors.Wrap(perrors.CodeMalformedLine, err, "invalid --spread %q", raw)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return layout.OverlapSpread{}, perrors.Wrap(perrors.CodeMalformedLine, err, "invalid --spread %q", raw)
		}
		return layout.OverlapSpread{Horizontal: h, Vertical: v}, nil
	default:
		return layout.OverlapSpread{}, perrors.New(perrors.CodeMalformedLine, "invalid --spread %q", raw)
	}
}

func readSequences(path string) ([]sequencegraph.Transition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perrors.Wrap(perrors.CodeReadFailure, err, "opening %s", path)
	}
	defer f.Close()
	return ingest.ParseSequences(f)
}

// readXPositions returns ok=false (no error) when the optional side file is
// simply absent.
func readXPositions(path string) (map[string]float64, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, perrors.Wrap(perrors.CodeReadFailure, err, "opening %s", path)
	}
	defer f.Close()
	byKey, err := ingest.ParseXPositions(f)
	if err != nil {
		return nil, false, err
	}
	return byKey, true, nil
}

// readStyles returns ok=false (no error) when the optional side file is
// simply absent.
func readStyles(path string) (map[string]string, bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, perrors.Wrap(perrors.CodeReadFailure, err, "opening %s", path)
	}
	defer f.Close()
	colorByName, err := ingest.ParseActionStyles(f)
	if err != nil {
		return nil, false, err
	}
	return colorByName, true, nil
}

// mergeTransitionStyles applies colorByName onto every transition endpoint,
// mirroring ingest.MergeStyles but operating on transition pairs rather than
// a flat action slice.
func mergeTransitionStyles(transitions []sequencegraph.Transition, colorByName map[string]string) []sequencegraph.Transition {
	out := make([]sequencegraph.Transition, len(transitions))
	for i, t := range transitions {
		from, to := t.From, t.To
		if color, ok := colorByName[from.Name]; ok {
			from.Design.Color = color
		}
		if color, ok := colorByName[to.Name]; ok {
			to.Design.Color = color
		}
		out[i] = sequencegraph.Transition{From: from, To: to}
	}
	return out
}

// writeFileAtomically stages data to a temporary file alongside path and
// renames it into place, matching pkg/pathwayinput's writer policy so no
// partial plot artifact is ever left behind.
func writeFileAtomically(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return perrors.Wrap(perrors.CodeWriteFailure, err, "create temp for %s", path)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	w := bufio.NewWriter(tmp)
	if _, err := w.Write(data); err != nil {
		tmp.Close()
		return perrors.Wrap(perrors.CodeWriteFailure, err, "write %s", path)
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return perrors.Wrap(perrors.CodeWriteFailure, err, "flush %s", path)
	}
	if err := tmp.Close(); err != nil {
		return perrors.Wrap(perrors.CodeWriteFailure, err, "close temp for %s", path)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return perrors.Wrap(perrors.CodeWriteFailure, err, "rename into %s", path)
	}
	return nil
}
