// Package ingest parses the textual sequence and action-style formats
// spec.md §6 defines into model.Action values and sequencegraph.Transition
// edges, resolving action-combination syntax and validating it against the
// ambiguity/duplication rules the grammar carries.
package ingest
