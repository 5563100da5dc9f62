package ingest

import (
	"bufio"
	"io"
	"strings"

	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
	"github.com/adaptation-pathways/pathwaymap/pkg/sequencegraph"
)

// ParseSequences reads the textual sequence format (spec.md §6) from r and
// returns the transitions it describes, ready for sequencegraph.New.
//
// Each non-blank, non-comment line must split into exactly two fields -
// MalformedLine otherwise. Action-combination syntax is resolved against a
// registry shared across the whole input, so a combination's components
// need only be spelled out the first time its name is mentioned;
// inconsistent re-mentions fail with AmbiguousCombination, and a
// combination naming the same component twice fails with
// DuplicateCombinationComponent.
func ParseSequences(r io.Reader) ([]sequencegraph.Transition, error) {
	registry := newActionRegistry()
	var transitions []sequencegraph.Transition

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}

		fields := splitFields(line)
		if len(fields) != 2 {
			return nil, perrors.New(perrors.CodeMalformedLine, "expected 2 fields, got %d: %q", len(fields), line)
		}

		from, err := registry.resolve(fields[0])
		if err != nil {
			return nil, err
		}
		to, err := registry.resolve(fields[1])
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, sequencegraph.Transition{From: from, To: to})
	}
	if err := scanner.Err(); err != nil {
		return nil, perrors.Wrap(perrors.CodeReadFailure, err, "reading sequences")
	}
	return transitions, nil
}
