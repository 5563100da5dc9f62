package ingest

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

// colorPattern accepts hex RGBA (#RRGGBBAA) or RGB (#RRGGBB).
var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ParseActionStyles reads the textual action-style format (spec.md §6) from
// r: one "name color" pair per line, color a hex RGBA or RGB literal.
// Returns the color keyed by action name, for merging onto Action.Design.
func ParseActionStyles(r io.Reader) (map[string]string, error) {
	colorByName := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := splitFields(line)
		// '#' opens a trailing comment except at the start of the color
		// field, where it is the hex prefix.
		for i := 2; i < len(fields); i++ {
			if strings.HasPrefix(fields[i], "#") {
				fields = fields[:i]
				break
			}
		}
		if len(fields) != 2 {
			return nil, perrors.New(perrors.CodeMalformedLine, "expected 2 fields, got %d: %q", len(fields), line)
		}
		name, color := fields[0], fields[1]
		if !colorPattern.MatchString(color) {
			return nil, perrors.New(perrors.CodeBadColor, "invalid color %q for action %q", color, name)
		}
		colorByName[name] = color
	}
	if err := scanner.Err(); err != nil {
		return nil, perrors.Wrap(perrors.CodeReadFailure, err, "reading action styles")
	}
	return colorByName, nil
}

// MergeStyles applies colorByName onto actions (matched by name, not
// edition - styling is a per-action-family concern) and returns a new
// slice with Design.Color set for every match. Actions without a recorded
// style pass through unchanged.
func MergeStyles(actions []model.Action, colorByName map[string]string) []model.Action {
	out := make([]model.Action, len(actions))
	for i, action := range actions {
		if color, ok := colorByName[action.Name]; ok {
			action.Design.Color = color
		}
		out[i] = action
	}
	return out
}
