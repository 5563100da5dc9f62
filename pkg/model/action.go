// Package model defines the data types shared by every stage of the
// adaptation-pathways pipeline: actions, metrics, scenarios, sequences, and
// the pathway-map node types derived from them.
package model

import "strconv"

// ActionDesign is the styling record carried by an Action: how it should be
// drawn once layout hands coordinates to a renderer.
type ActionDesign struct {
	Color string
	Icon  string
}

// Action is a long-lived intervention. Identity is (Name, Edition): two
// Action values are equal iff both fields match, regardless of Design or
// MetricData - those are payload, not identity.
//
// Components is nil for a plain action. When non-nil (len >= 2) the value
// represents an ActionCombination: a composite action whose effect is the
// joint application of its ordered component actions. Component order is
// part of the combination's definition even though it plays no role in
// Action identity.
type Action struct {
	Name       string
	Edition    int
	Design     ActionDesign
	MetricData map[string]MetricValue
	Components []Action
}

// Equal reports whether a and b share the same (Name, Edition) identity.
func (a Action) Equal(b Action) bool {
	return a.Name == b.Name && a.Edition == b.Edition
}

// IsCombination reports whether a represents an ActionCombination.
func (a Action) IsCombination() bool {
	return len(a.Components) >= 2
}

// Key returns a stable string suitable for use as a map key, for the common
// case of deduplicating actions by identity without a full struct compare.
func (a Action) Key() string {
	return actionKey(a.Name, a.Edition)
}

func actionKey(name string, edition int) string {
	if edition == 0 {
		return name
	}
	return name + "#" + strconv.Itoa(edition)
}
