package ingest

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
	"github.com/adaptation-pathways/pathwaymap/pkg/sequencegraph"
)

// rootKey is the fixed key the pathway-input generator writes for the
// implicit predecessor action (spec.md's "current" root convention).
const rootKey = "current"

// ParseXPositions reads an xpositions.txt artifact (pkg/pathwayinput's
// output format): one "key xposition" pair per line, key either rootKey or
// an instance key of the form "name[idx]".
func ParseXPositions(r io.Reader) (map[string]float64, error) {
	byKey := make(map[string]float64)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}
		fields := splitFields(line)
		if len(fields) != 2 {
			return nil, perrors.New(perrors.CodeMalformedLine, "expected 2 fields, got %d: %q", len(fields), line)
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, perrors.Wrap(perrors.CodeMalformedLine, err, "invalid xposition %q", fields[1])
		}
		byKey[fields[0]] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, perrors.Wrap(perrors.CodeReadFailure, err, "reading xpositions")
	}
	return byKey, nil
}

// TippingPointByActionName collapses an xpositions-by-key map down to one
// value per plain action name (stripping any "[idx]" instance suffix),
// keeping the first value encountered per name in map-iteration order -
// the granularity layout.Classic's TippingPointByAction consumes, since
// Classic draws one horizontal line per action name regardless of how many
// instances that action has in the underlying map.
func TippingPointByActionName(xpositionByKey map[string]float64) (map[string]float64, error) {
	byName := make(map[string]float64, len(xpositionByKey))
	for key, value := range xpositionByKey {
		name, _, _, err := parseActionRefParts(key)
		if err != nil {
			return nil, err
		}
		if _, seen := byName[name]; !seen {
			byName[name] = value
		}
	}
	return byName, nil
}

// instanceKey renders the xpositions.txt/sequences.txt key an ingested
// action corresponds to, mirroring pkg/pathwayinput's instanceKey: the root
// action keys as rootKey; every other action keys as "name[edition]".
func instanceKey(action model.Action) string {
	if action.Name == rootKey {
		return rootKey
	}
	return strings.ReplaceAll(action.Name, " ", "") + "[" + strconv.Itoa(action.Edition) + "]"
}

// MergeTransitionTippingPoints sets metric on every transition endpoint's
// MetricData to the value xpositionByKey records for that action's
// instance key, leaving actions with no matching entry untouched. This is
// how a plotted pathway map recovers the tipping points the pathway-input
// generator computed, since the textual sequence format itself carries no
// metric data.
func MergeTransitionTippingPoints(
	transitions []sequencegraph.Transition,
	xpositionByKey map[string]float64,
	metric string,
) []sequencegraph.Transition {
	apply := func(a model.Action) model.Action {
		value, ok := xpositionByKey[instanceKey(a)]
		if !ok {
			return a
		}
		metrics := make(map[string]model.MetricValue, len(a.MetricData)+1)
		for k, v := range a.MetricData {
			metrics[k] = v
		}
		metrics[metric] = model.MetricValue{Value: value}
		a.MetricData = metrics
		return a
	}

	out := make([]sequencegraph.Transition, len(transitions))
	for i, t := range transitions {
		out[i] = sequencegraph.Transition{From: apply(t.From), To: apply(t.To)}
	}
	return out
}
