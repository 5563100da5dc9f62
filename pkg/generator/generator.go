package generator

import (
	"iter"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
)

// Generate lazily yields one model.Sequence per permutation of actions
// (lengths 1..constraints.MaxSequenceLength) that satisfies every
// dependency in constraints.Dependencies. Enumeration is not pruned by the
// dependencies - every permutation is generated and then tested, per the
// enumerate-and-test contract - so this stays lazy/streaming even though
// the dependency check itself is cheap.
//
// Yielded sequences carry Filter.IsValid = true and no Performance yet;
// Evaluate populates Performance and may flip IsValid on duplicate
// detection.
func Generate(actions []model.Action, constraints model.GenerationConstraints) iter.Seq[model.Sequence] {
	return func(yield func(model.Sequence) bool) {
		for perm := range Permutations(actions, constraints.MaxSequenceLength) {
			if !SatisfiesAll(perm, constraints.Dependencies) {
				continue
			}
			seq := model.Sequence{
				Actions: perm,
				Filter:  model.SequenceFilter{IsValid: true},
			}
			if !yield(seq) {
				return
			}
		}
	}
}

// GenerateAll materializes Generate's output into a slice. Intended for
// small action sets (tests, small CLIs); large inputs should range over
// Generate directly to stay within the lazy/streaming contract.
func GenerateAll(actions []model.Action, constraints model.GenerationConstraints) []model.Sequence {
	var out []model.Sequence
	for seq := range Generate(actions, constraints) {
		out = append(out, seq)
	}
	return out
}
