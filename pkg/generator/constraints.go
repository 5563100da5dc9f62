package generator

import "github.com/adaptation-pathways/pathwaymap/pkg/model"

// indexOf returns the position of action in perm, or -1 if absent.
func indexOf(perm []model.Action, action model.Action) int {
	for i, candidate := range perm {
		if candidate.Equal(action) {
			return i
		}
	}
	return -1
}

// Satisfies reports whether perm satisfies dep's predicate. A dependency
// whose Action does not appear in perm passes vacuously for every
// positional relation, per the constraint algebra.
//
// BLOCKS and AFTER carry the identical predicate here - both require a's
// index to exceed every present member of Others - mirroring an equivalence
// found in the system this was adapted from rather than a deliberate Go-side
// design choice.
func Satisfies(perm []model.Action, dep model.ActionDependency) bool {
	aIndex := indexOf(perm, dep.Action)

	switch dep.Relation {
	case model.StartsWith:
		return len(perm) > 0 && perm[0].Equal(dep.Action)
	case model.DoesntStartWith:
		return len(perm) == 0 || !perm[0].Equal(dep.Action)
	case model.EndsWith:
		return len(perm) > 0 && perm[len(perm)-1].Equal(dep.Action)
	case model.DoesntEndWith:
		return len(perm) == 0 || !perm[len(perm)-1].Equal(dep.Action)
	case model.Contains:
		return aIndex >= 0
	case model.DoesntContain:
		return aIndex < 0
	}

	if aIndex < 0 {
		return true
	}
	for _, other := range dep.Others {
		bIndex := indexOf(perm, other)
		if bIndex < 0 {
			continue
		}
		switch dep.Relation {
		case model.Blocks, model.After:
			if aIndex <= bIndex {
				return false
			}
		case model.DirectlyAfter:
			if aIndex != bIndex+1 {
				return false
			}
		case model.Before:
			if aIndex >= bIndex {
				return false
			}
		case model.DirectlyBefore:
			if aIndex != bIndex-1 {
				return false
			}
		}
	}
	return true
}

// SatisfiesAll reports whether perm satisfies every dependency.
func SatisfiesAll(perm []model.Action, dependencies []model.ActionDependency) bool {
	for _, dep := range dependencies {
		if !Satisfies(perm, dep) {
			return false
		}
	}
	return true
}
