package generator

import (
	"math/rand/v2"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
)

// Sampler draws exactly n indices, without replacement, from [0, len)
// uniformly at random. Filter accepts a Sampler so callers can inject a
// deterministic stand-in in tests instead of depending on process entropy.
type Sampler func(length, n int) []int

// NewSeededSampler returns a Sampler backed by a PCG generator seeded
// deterministically from seed, shuffling the full index range and taking
// the first n - a uniform draw without replacement.
func NewSeededSampler(seed uint64) Sampler {
	return func(length, n int) []int {
		rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
		indices := make([]int, length)
		for i := range indices {
			indices[i] = i
		}
		rng.Shuffle(length, func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })
		if n > length {
			n = length
		}
		return indices[:n]
	}
}

// Filter marks every still-valid sequence failing any MetricFilter as
// filtered_out, then - if more than shortlistCap sequences still pass -
// draws shortlistCap of them via sampler and marks the rest filtered_out for
// exceeding the shortlist limit. shortlistCap <= 0 disables the cap.
func Filter(sequences []model.Sequence, filters []model.MetricFilter, shortlistCap int, sampler Sampler) {
	var survivorIdx []int
	for i := range sequences {
		seq := &sequences[i]
		if !seq.Filter.IsValid {
			continue
		}
		if !passesFilters(*seq, filters) {
			seq.Filter.FilteredOut = true
			seq.Filter.Reasoning = "Does not meet conditions"
			continue
		}
		survivorIdx = append(survivorIdx, i)
	}

	if shortlistCap <= 0 || len(survivorIdx) <= shortlistCap {
		return
	}

	keep := make(map[int]bool, shortlistCap)
	for _, pos := range sampler(len(survivorIdx), shortlistCap) {
		keep[survivorIdx[pos]] = true
	}
	for _, idx := range survivorIdx {
		if !keep[idx] {
			sequences[idx].Filter.FilteredOut = true
			sequences[idx].Filter.Reasoning = "Exceeded shortlist limit"
		}
	}
}

func passesFilters(seq model.Sequence, filters []model.MetricFilter) bool {
	for _, filter := range filters {
		value, ok := seq.Performance[filter.Metric]
		if !ok {
			return false
		}
		if !filter.Relation.Compare(value.Value, filter.Threshold) {
			return false
		}
	}
	return true
}
