package generator

import "github.com/adaptation-pathways/pathwaymap/pkg/model"

// truncationLength returns the minimum prefix length k such that the
// cumulative tipping-point metric over actions[0:k] reaches planningEnd, or
// len(actions) if no prefix does. Actions missing the tipping-point metric
// contribute nothing to the running sum but are not otherwise penalized -
// determine_number_needed_actions treats a missing value as skipped, not a
// failure.
func truncationLength(actions []model.Action, tippingPointMetric string, planningEnd float64) int {
	cumulative := 0.0
	for i, action := range actions {
		if mv, ok := action.MetricData[tippingPointMetric]; ok {
			cumulative += mv.Value
		}
		if cumulative >= planningEnd {
			return i + 1
		}
	}
	return len(actions)
}

// evaluateCriterion aggregates every metric carried by actions[0] across the
// whole of actions: the sum of each action's value for that metric, marked
// an estimate if any contributing value was.
//
// actions' MetricValue.Value is always numeric by construction (the data
// model carries no non-numeric variant), so the mixed-type failure the
// evaluator's source algorithm guards against - EvalTypeMismatch - cannot
// occur here; the code is structurally type-safe rather than needing a
// runtime check.
func evaluateCriterion(actions []model.Action) map[string]model.MetricValue {
	if len(actions) == 0 {
		return nil
	}
	result := make(map[string]model.MetricValue, len(actions[0].MetricData))
	for metric := range actions[0].MetricData {
		sum := 0.0
		isEstimate := false
		for _, action := range actions {
			if mv, ok := action.MetricData[metric]; ok {
				sum += mv.Value
				isEstimate = isEstimate || mv.IsEstimate
			}
		}
		result[metric] = model.MetricValue{Value: sum, IsEstimate: isEstimate}
	}
	return result
}

// Evaluate truncates each still-valid sequence to the tipping-point-
// determined prefix, aggregates its performance metrics over that prefix,
// and marks later sequences identical (by actions and performance) to an
// earlier one as invalid. Sequences already marked invalid by generation are
// left untouched.
func Evaluate(sequences []model.Sequence, tippingPointMetric string, planningEnd float64) {
	seen := make([]model.Sequence, 0, len(sequences))
	for i := range sequences {
		seq := &sequences[i]
		if !seq.Filter.IsValid {
			continue
		}

		k := truncationLength(seq.Actions, tippingPointMetric, planningEnd)
		seq.Actions = seq.Actions[:k]
		seq.Performance = evaluateCriterion(seq.Actions)

		duplicate := false
		for _, other := range seen {
			if seq.EqualByActionsAndPerformance(other) {
				duplicate = true
				break
			}
		}
		if duplicate {
			seq.Filter.IsValid = false
			seq.Filter.Reasoning = "Part of Sequence used. Identical to other Sequence."
			continue
		}
		seen = append(seen, *seq)
	}
}
