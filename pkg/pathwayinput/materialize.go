package pathwayinput

import "github.com/adaptation-pathways/pathwaymap/pkg/model"

// Instance is a materialized occurrence of an action within some sequence,
// plus the key and calendar position the text artifacts reference it by.
type Instance struct {
	model.ActionInstance
	Key       string
	XPosition float64
}

// XPositionEntry is one line of xpositions.txt.
type XPositionEntry struct {
	Key       string
	XPosition float64
}

// SequencePair is one line of sequences.txt: a transition from one instance
// key to another (From is RootKey for the first action of a sequence).
type SequencePair struct {
	From string
	To   string
}

// Result bundles everything Materialize produces.
type Result struct {
	Instances  []Instance
	XPositions []XPositionEntry
	Sequences  []SequencePair
}

// Materialize walks every sequence that survived generation, evaluation,
// and filtering (Filter.IsValid && !Filter.FilteredOut) and produces one
// ActionInstance per distinct (action, precondition) occurrence, the
// deduplicated set of (key, xposition) pairs, and the deduplicated set of
// (from_key, to_key) transitions a renderer needs to draw the map.
//
// tippingPointMetric names the metric whose cumulative sum over a
// sequence's prefix gives each instance's tipping-point value. scenario may
// be nil; when non-nil and it carries a time series for the tipping-point
// metric, each value is mapped onto the scenario's calendar via
// interpolateTime instead of used as a raw offset from endCurrentSystem.
func Materialize(
	sequences []model.Sequence,
	tippingPointMetric string,
	endCurrentSystem float64,
	scenario *model.Scenario,
) (Result, error) {
	var result Result
	counter := newInstanceCounter()
	materialized := make(map[string]bool)

	xpositions := newOrderedSet[XPositionEntry]()
	seqPairs := newOrderedSet[SequencePair]()

	anyEligible := false
	for _, seq := range sequences {
		if !seq.Filter.IsValid || seq.Filter.FilteredOut || len(seq.Actions) == 0 {
			continue
		}
		anyEligible = true

		keys := make([]string, len(seq.Actions))
		cumulative := 0.0
		for i, action := range seq.Actions {
			precondition := seq.Actions[:i]
			instanceIndex := counter.indexOf(action, precondition)
			key := instanceKey(action, instanceIndex)
			keys[i] = key

			if mv, ok := action.MetricData[tippingPointMetric]; ok {
				cumulative += mv.Value
			}

			seenKey := action.Key() + "#" + key
			if !materialized[seenKey] {
				materialized[seenKey] = true
				xposition, err := computeXPosition(cumulative, endCurrentSystem, scenario, tippingPointMetric)
				if err != nil {
					return Result{}, err
				}
				result.Instances = append(result.Instances, Instance{
					ActionInstance: model.ActionInstance{
						Action:        action,
						InstanceIndex: instanceIndex,
						TippingPoint:  cumulative,
						MetricData:    evaluatePrefix(seq.Actions[:i+1]),
					},
					Key:       key,
					XPosition: xposition,
				})
				xpositions.add(XPositionEntry{Key: key, XPosition: xposition})
			}
		}

		seqPairs.add(SequencePair{From: RootKey, To: keys[0]})
		for i := 0; i < len(keys)-1; i++ {
			seqPairs.add(SequencePair{From: keys[i], To: keys[i+1]})
		}
	}

	if anyEligible {
		rootXPosition, err := computeXPosition(0, endCurrentSystem, scenario, tippingPointMetric)
		if err != nil {
			return Result{}, err
		}
		xpositions.add(XPositionEntry{Key: RootKey, XPosition: rootXPosition})
	}

	result.XPositions = xpositions.values
	result.Sequences = seqPairs.values
	return result, nil
}

// computeXPosition maps a cumulative tipping-point value onto the output
// axis: the scenario's calendar, when one carries a time series for
// metric, otherwise a raw offset from endCurrentSystem.
func computeXPosition(value, endCurrentSystem float64, scenario *model.Scenario, metric string) (float64, error) {
	if scenario != nil {
		if series, ok := scenario.TimeSeries(metric); ok {
			return interpolateTime(series, value+endCurrentSystem)
		}
	}
	return value + endCurrentSystem, nil
}

// evaluatePrefix sums every metric actions[len-1] (the instance's own
// action) carries, over the whole prefix - the same aggregation rule
// SequenceEvaluator applies to Performance, given here per-instance so a
// materialized record carries its own rolled-up metrics.
func evaluatePrefix(actions []model.Action) map[string]model.MetricValue {
	if len(actions) == 0 {
		return nil
	}
	last := actions[len(actions)-1]
	out := make(map[string]model.MetricValue, len(last.MetricData))
	for metric := range last.MetricData {
		sum := 0.0
		isEstimate := false
		for _, action := range actions {
			if mv, ok := action.MetricData[metric]; ok {
				sum += mv.Value
				isEstimate = isEstimate || mv.IsEstimate
			}
		}
		out[metric] = model.MetricValue{Value: sum, IsEstimate: isEstimate}
	}
	return out
}
