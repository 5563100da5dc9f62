package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
)

func actions(names ...string) []model.Action {
	out := make([]model.Action, len(names))
	for i, name := range names {
		out[i] = model.Action{Name: name}
	}
	return out
}

func TestCountPermutationsMatchesFormula(t *testing.T) {
	// n=3, maxLength=2: 3 (k=1) + 6 (k=2) = 9.
	assert.Equal(t, 9, CountPermutations(3, 2))
	assert.Equal(t, 3, CountPermutations(3, 1))
	assert.Equal(t, 0, CountPermutations(3, 0))
}

func TestPermutationsYieldsExactCount(t *testing.T) {
	a := actions("a", "b", "c")
	count := 0
	for range Permutations(a, 2) {
		count++
	}
	assert.Equal(t, CountPermutations(3, 2), count)
}

func TestPermutationsLengthOneIsEachActionAlone(t *testing.T) {
	a := actions("a", "b")
	var got [][]string
	for perm := range Permutations(a, 1) {
		var names []string
		for _, act := range perm {
			names = append(names, act.Name)
		}
		got = append(got, names)
	}
	require.Len(t, got, 2)
	assert.Contains(t, got, []string{"a"})
	assert.Contains(t, got, []string{"b"})
}

func TestPermutationsStopsEarlyWhenYieldReturnsFalse(t *testing.T) {
	a := actions("a", "b", "c")
	count := 0
	for range Permutations(a, 3) {
		count++
		if count == 5 {
			break
		}
	}
	assert.Equal(t, 5, count)
}

func TestPermutationsClampsMaxLengthToActionCount(t *testing.T) {
	a := actions("a", "b")
	longest := 0
	for perm := range Permutations(a, 10) {
		if len(perm) > longest {
			longest = len(perm)
		}
	}
	assert.Equal(t, 2, longest)
}
