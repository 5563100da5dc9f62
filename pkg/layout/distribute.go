package layout

import "sort"

// Region is an inclusive [Low, High] span along one axis, used by the
// overlap-spread step to find sections sharing a line (same y) or a
// transition (same x).
type Region struct {
	Low  float64
	High float64
}

// distribute nudges coordinates apart so that consecutive values (once
// sorted ascending) differ by at least minDistance, adding the needed
// slack evenly to both ends of the range, and returns the result in the
// same order as the input. Values already minDistance apart pass through
// unchanged.
func distribute(coordinates []float64, minDistance float64) []float64 {
	n := len(coordinates)
	if n == 0 {
		return nil
	}

	sortIdx := make([]int, n)
	for i := range sortIdx {
		sortIdx[i] = i
	}
	sort.SliceStable(sortIdx, func(i, j int) bool {
		return coordinates[sortIdx[i]] < coordinates[sortIdx[j]]
	})
	sorted := make([]float64, n)
	for i, idx := range sortIdx {
		sorted[i] = coordinates[idx]
	}

	var result []float64
	if n <= 1 {
		result = sorted
	} else {
		var gaps []float64
		for i := 0; i < n-1; i++ {
			gap := sorted[i+1] - sorted[i]
			if gap < minDistance {
				gaps = append(gaps, gap)
			}
		}
		if len(gaps) == 0 {
			result = sorted
		} else {
			sum := 0.0
			for _, g := range gaps {
				sum += g
			}
			distanceToAdd := float64(len(gaps))*minDistance - sum
			offset := -0.5 * distanceToAdd

			result = make([]float64, 0, n)
			for i := 0; i < n-1; i++ {
				lhs, rhs := sorted[i], sorted[i+1]
				gap := rhs - lhs
				shifted := lhs + offset
				if gap < minDistance {
					offset += minDistance - gap
				}
				result = append(result, shifted)
			}
			result = append(result, sorted[n-1]+offset)
		}
	}

	unsorted := make([]float64, n)
	for i, idx := range sortIdx {
		unsorted[idx] = result[i]
	}
	return unsorted
}

// groupOverlappingRegions sorts regions by lower bound and sweeps them into
// maximal groups that share at least one point, returning each group's
// member indices into the input slice in sorted order.
func groupOverlappingRegions(regions []Region) [][]int {
	if len(regions) == 0 {
		return nil
	}
	order := make([]int, len(regions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return regions[order[i]].Low < regions[order[j]].Low
	})

	var groups [][]int
	group := []int{order[0]}
	groupMax := regions[order[0]].High
	for _, idx := range order[1:] {
		region := regions[idx]
		if region.Low <= groupMax {
			group = append(group, idx)
		} else {
			groups = append(groups, group)
			group = []int{idx}
		}
		groupMax = max(groupMax, region.High)
	}
	groups = append(groups, group)
	return groups
}
