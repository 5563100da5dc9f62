package model

// SequenceFilter records a Sequence's disposition as it passes through
// evaluation and filtering: whether it is still a candidate (IsValid),
// whether it has been excluded from the output shortlist (FilteredOut),
// and why.
type SequenceFilter struct {
	IsValid      bool
	FilteredOut  bool
	Reasoning    string
}

// Sequence is an ordered list of actions forming a candidate plan, plus the
// metrics aggregated over it once evaluated.
//
// Actions and Performance are mutated in place by SequenceEvaluator
// (truncating Actions to the tipping-point-determined prefix and setting
// Performance) and by SequenceFilter (setting Filter.FilteredOut /
// Filter.Reasoning) - per the spec's single-threaded, in-place mutation
// model, a Sequence is never shared across goroutines.
type Sequence struct {
	Actions     []Action
	Performance map[string]MetricValue
	Filter      SequenceFilter
}

// Clone returns a deep-enough copy of s: a new Actions slice and a new
// Performance map, safe to mutate independently of s.
func (s Sequence) Clone() Sequence {
	actions := make([]Action, len(s.Actions))
	copy(actions, s.Actions)
	performance := make(map[string]MetricValue, len(s.Performance))
	for k, v := range s.Performance {
		performance[k] = v
	}
	return Sequence{Actions: actions, Performance: performance, Filter: s.Filter}
}

// EqualByActionsAndPerformance reports whether s and other carry the same
// action list (by identity, in order) and the same aggregated performance
// values - the equality SequenceEvaluator uses to mark duplicate sequences
// invalid.
func (s Sequence) EqualByActionsAndPerformance(other Sequence) bool {
	if len(s.Actions) != len(other.Actions) {
		return false
	}
	for i := range s.Actions {
		if !s.Actions[i].Equal(other.Actions[i]) {
			return false
		}
	}
	if len(s.Performance) != len(other.Performance) {
		return false
	}
	for metric, value := range s.Performance {
		otherValue, ok := other.Performance[metric]
		if !ok || otherValue != value {
			return false
		}
	}
	return true
}
