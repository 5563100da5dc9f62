// Package generator enumerates admissible action orderings under a
// constraint algebra, evaluates them against aggregated metrics, and
// filters them down to a bounded shortlist.
package generator

import (
	"iter"
	"slices"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
)

// Factorial returns n! for n >= 0. The result overflows a 64-bit int for
// n > 20.
func Factorial(n int) int {
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result
}

// CountPermutations returns Σ_{k=1..maxLength} n!/(n-k)!, the exact number
// of permutations Permutations will yield for n actions.
func CountPermutations(n, maxLength int) int {
	if maxLength > n {
		maxLength = n
	}
	total := 0
	term := 1
	for k := 1; k <= maxLength; k++ {
		term *= n - k + 1
		total += term
	}
	return total
}

// Permutations lazily yields every permutation of length 1..maxLength over
// actions, recursively extending shorter permutations into longer ones
// (the adaptation of Heap's-algorithm-style enumeration to partial
// permutations of varying length: rather than permuting a fixed-size
// array, each recursive call both emits the current partial permutation
// and extends it by one more as-yet-unused action). Iteration stops early
// if the consumer's yield returns false.
//
// Each yielded slice is a fresh allocation, safe for the consumer to retain
// without it being mutated by further iteration.
func Permutations(actions []model.Action, maxLength int) iter.Seq[[]model.Action] {
	n := len(actions)
	if maxLength > n {
		maxLength = n
	}
	return func(yield func([]model.Action) bool) {
		if n == 0 || maxLength == 0 {
			return
		}
		used := make([]bool, n)
		current := make([]model.Action, 0, maxLength)

		var recurse func() bool
		recurse = func() bool {
			if len(current) > 0 {
				if !yield(slices.Clone(current)) {
					return false
				}
			}
			if len(current) == maxLength {
				return true
			}
			for i := 0; i < n; i++ {
				if used[i] {
					continue
				}
				used[i] = true
				current = append(current, actions[i])
				if !recurse() {
					return false
				}
				current = current[:len(current)-1]
				used[i] = false
			}
			return true
		}
		recurse()
	}
}
