// Package graph provides a generic rooted-graph substrate used to model
// sequence graphs, pathway graphs, and pathway maps.
//
// Node identity is decoupled from node value: every node is an integer index
// into an arena, so two nodes can carry equal values (as happens when a
// pathway map forks an ActionEnd at a branch point) while remaining distinct
// graph entities. Adjacency is recorded in insertion order so traversals are
// deterministic and reproduce the order actions/conversions were added in.
package graph
