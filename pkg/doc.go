// Package pkg provides the core libraries for adaptation-pathway map
// generation and layout.
//
// # Overview
//
// pathwaymap explores candidate sequences of adaptation actions under
// dependency and performance constraints, then lays the surviving pathways
// out as a metro-style map — one horizontal line per action, x following
// when it tips into the next action, y stacking actions that coexist. The
// pkg directory contains reusable Go libraries organized into four main
// areas:
//
//  1. Domain model ([model])
//  2. Graph substrate and transforms ([graph], [sequencegraph], [pathwaygraph], [pathwaymap])
//  3. Generation and layout ([generator], [layout])
//  4. Textual I/O ([ingest], [pathwayinput], [plotexport])
//
// # Architecture
//
// The typical data flow through pathwaymap:
//
//	Action set + constraints (TOML run config)
//	         ↓
//	    [generator] package (permute, evaluate, filter)
//	         ↓
//	    [pathwayinput] package (materialize, interpolate, write text artifacts)
//	         ↓
//	    [ingest] package (re-read sequences.txt / xpositions.txt / styles.txt)
//	         ↓
//	    [sequencegraph] → [pathwaygraph] → [pathwaymap] (promote to a map)
//	         ↓
//	    [layout] package (classic metro layout)
//	         ↓
//	    [plotexport] package (JSON for an external stroke renderer)
//
// # Main Packages
//
// ## Domain model
//
// [model] - Action, ActionCombination, Metric, MetricValue, MetricEstimate,
// Scenario, and the sequence/number comparison enums that the constraint
// algebra and metric filters are built from.
//
// ## Graph substrate and transforms
//
// [graph] - A generic, arena-indexed rooted graph used as the substrate
// under every domain-specific graph type in this module.
//
// [sequencegraph] - Builds and validates a SequenceGraph from the raw
// from/to action pairs a candidate sequence or a textual sequences.txt
// describes.
//
// [pathwaygraph] - Promotes a SequenceGraph into a PathwayGraph: each
// from/to edge becomes an ActionConversion node, and conversions that
// follow one another along a sequence are linked.
//
// [pathwaymap] - Promotes a PathwayGraph into a PathwayMap: every action
// becomes an ActionBegin/ActionEnd pair, and an ActionEnd with several
// successors gets a duplicate that carries the fan-out, so every
// root-to-leaf walk reads as one continuous pathway.
//
// ## Generation and layout
//
// [generator] - Enumerates candidate action sequences (bounded
// permutations), evaluates them against a tipping-point metric and
// planning horizon, and filters survivors down to a seeded-random
// shortlist.
//
// [layout] - Default and classic layout engines. Classic positions every
// node by tipping point (x) and a level-ordered stack (y), with an
// overlap-spread pass for lines/transitions that would otherwise coincide;
// Default places nodes by step count from the root (x) and the mean of
// their predecessors (y).
//
// ## Textual I/O
//
// [ingest] - Parsers for the textual interchange formats: sequences,
// action styles, x-positions (tipping points), shared field-splitting and
// comment-stripping helpers.
//
// [pathwayinput] - Materializes evaluated/filtered sequences into the two
// pathway-input text artifacts (xpositions.txt, sequences.txt), scenario
// metric interpolation, and the TOML run-configuration format the
// generate-pathway-input command reads.
//
// [plotexport] - Serializes a computed layout to JSON for an external
// stroke-rendering back-end; this module never rasterizes pixels itself.
//
// # Common Workflows
//
// Generate candidate sequences from a TOML run configuration:
//
//	cfg, _ := pathwayinput.ReadRunConfig(f)
//	sequences := generator.GenerateAll(cfg.Actions(), constraints)
//	generator.Evaluate(sequences, cfg.TippingPointMetric, cfg.PlanningEnd)
//
// Promote ingested sequences into a laid-out map:
//
//	transitions, _ := ingest.ParseSequences(r)
//	sg, _ := sequencegraph.New(transitions)
//	pg, _ := transform.SequenceGraphToPathwayGraph(sg)
//	pm := transform.PathwayGraphToPathwayMap(pg, "tipping_point")
//	result, _ := layout.Classic(pm, tippingPointByAction, levelByAction, spread)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/layout/...              # Specific package
//
// [model]: https://pkg.go.dev/github.com/adaptation-pathways/pathwaymap/pkg/model
// [graph]: https://pkg.go.dev/github.com/adaptation-pathways/pathwaymap/pkg/graph
// [sequencegraph]: https://pkg.go.dev/github.com/adaptation-pathways/pathwaymap/pkg/sequencegraph
// [pathwaygraph]: https://pkg.go.dev/github.com/adaptation-pathways/pathwaymap/pkg/pathwaygraph
// [pathwaymap]: https://pkg.go.dev/github.com/adaptation-pathways/pathwaymap/pkg/pathwaymap
// [generator]: https://pkg.go.dev/github.com/adaptation-pathways/pathwaymap/pkg/generator
// [layout]: https://pkg.go.dev/github.com/adaptation-pathways/pathwaymap/pkg/layout
// [ingest]: https://pkg.go.dev/github.com/adaptation-pathways/pathwaymap/pkg/ingest
// [pathwayinput]: https://pkg.go.dev/github.com/adaptation-pathways/pathwaymap/pkg/pathwayinput
// [plotexport]: https://pkg.go.dev/github.com/adaptation-pathways/pathwaymap/pkg/plotexport
package pkg
