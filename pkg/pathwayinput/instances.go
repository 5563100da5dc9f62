package pathwayinput

import (
	"strconv"
	"strings"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
)

// preconditionsEqual reports whether two action prefixes are the same
// occurrence of a precondition: equal length, equal actions by identity, in
// order.
func preconditionsEqual(a, b []model.Action) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// instanceCounter assigns a stable instance index to each (action,
// precondition) occurrence across every sequence it sees: two occurrences
// of the same action reached via the same precondition collapse to one
// instance; a new precondition gets the next index.
type instanceCounter struct {
	preconditionsByAction map[string][][]model.Action
}

func newInstanceCounter() *instanceCounter {
	return &instanceCounter{preconditionsByAction: make(map[string][][]model.Action)}
}

// indexOf returns the instance index for action reached via precondition,
// appending a new entry if this precondition has not been seen before for
// this action.
func (c *instanceCounter) indexOf(action model.Action, precondition []model.Action) int {
	key := action.Key()
	preconditions := c.preconditionsByAction[key]
	for i, p := range preconditions {
		if preconditionsEqual(p, precondition) {
			return i
		}
	}
	c.preconditionsByAction[key] = append(preconditions, append([]model.Action{}, precondition...))
	return len(preconditions)
}

// nameWithoutSpaces strips the spaces from an action name, per the key
// format action.name_without_spaces + "[" + instance_index + "]".
func nameWithoutSpaces(name string) string {
	return strings.ReplaceAll(name, " ", "")
}

// instanceKey renders the xpositions.txt / sequences.txt key for a
// materialized occurrence of action at instanceIndex.
func instanceKey(action model.Action, instanceIndex int) string {
	return nameWithoutSpaces(action.Name) + "[" + strconv.Itoa(instanceIndex) + "]"
}
