// Package pathwayinput turns a filtered list of sequences into the
// materialized records a plotting front-end consumes: one ActionInstance
// per distinct (action, precondition) occurrence, its tipping-point
// position on a scenario's calendar (or a raw metric axis, absent a
// scenario), and the two text artifacts - xpositions.txt and sequences.txt
// - that a downstream renderer reads directly.
package pathwayinput

// RootKey is the key used for the implicit root action ("current") that
// precedes every sequence - never a key a generated Action can collide
// with, since Sequence.Actions never contains the root itself.
const RootKey = "current"
